package storage

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

type ImageProcessor struct {
	MaxDim int // px, 0 = không resize
}

func NewImageProcessor(maxDim int) *ImageProcessor {
	return &ImageProcessor{MaxDim: maxDim}
}

// Normalize kiểm tra file là ảnh hợp lệ và shrink tại chỗ nếu lớn hơn MaxDim
func (p *ImageProcessor) Normalize(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	cfg, _, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if p.MaxDim <= 0 || (cfg.Width <= p.MaxDim && cfg.Height <= p.MaxDim) {
		return nil
	}

	// imaging chỉ encode được jpeg/png/gif/tiff/bmp, format khác giữ nguyên
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return nil
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	resized := imaging.Fit(img, p.MaxDim, p.MaxDim, imaging.Lanczos)
	if err := imaging.Save(resized, path, imaging.JPEGQuality(90)); err != nil {
		return fmt.Errorf("save resized image: %w", err)
	}
	return nil
}
