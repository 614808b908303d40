package animal

import (
	"context"
	"io"
)

// Upload là file part "imageData" của multipart request
type Upload struct {
	Filename string
	Content  io.Reader
}

type Service interface {
	Create(ctx context.Context, req AnimalRequest, image *Upload) (*AnimalDTO, error)
	GetByID(ctx context.Context, id int64) (*AnimalDTO, error)
	List(ctx context.Context) ([]AnimalDTO, error)
	ListByAvailability(ctx context.Context, isAvailable bool) ([]AnimalDTO, error)
	Update(ctx context.Context, id int64, req AnimalRequest, image *Upload) (*AnimalDTO, error)
	Delete(ctx context.Context, id int64) error

	// Export writes every animal as an .xlsx workbook
	Export(ctx context.Context, w io.Writer) error
}

// ImageSaver lưu ảnh upload, trả về public URL (storage.MinIOImageStore)
type ImageSaver interface {
	SaveImage(ctx context.Context, r io.Reader, filename string) (string, error)
}

// ImageRemover xóa ảnh cũ, không trả lỗi và không block caller
// (storage.BackgroundDeleter, bọc MinIO hoặc queue enqueuer)
type ImageRemover interface {
	DeleteImage(ctx context.Context, url string)
}
