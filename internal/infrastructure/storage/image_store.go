package storage

import (
	"context"
	"errors"
	"io"
	"strings"
)

var (
	ErrInvalidImage  = errors.New("uploaded file is not a supported image")
	ErrImageTooLarge = errors.New("uploaded image exceeds the size limit")
)

const defaultExtension = "jpeg"

// ImageStore lưu ảnh và trả về public URL
type ImageStore interface {
	// SaveImage streams r to the blob store under a fresh unique name and
	// returns the public URL of the stored object.
	SaveImage(ctx context.Context, r io.Reader, filename string) (string, error)

	// DeleteImage is best effort: failures are logged, never returned.
	DeleteImage(ctx context.Context, url string)
}

// ExtensionFromFilename returns the lowercased text after the last dot,
// or "jpeg" when there is none.
func ExtensionFromFilename(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return defaultExtension
	}

	ext := strings.ToLower(filename[idx+1:])
	// "dir.v2/photo" - dấu chấm nằm trong path, không phải extension
	if strings.ContainsAny(ext, `/\`) {
		return defaultExtension
	}
	return ext
}
