//go:build !gocv
// +build !gocv

package imageio

import (
	"context"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/infrastructure/vision"
)

// GoCVCodec заглушка кодека на OpenCV.
type GoCVCodec struct{}

// NewGoCVCodec возвращает ошибку, если сборка без тега gocv.
func NewGoCVCodec() (*GoCVCodec, error) {
	return nil, vision.ErrGoCVDisabled
}

// Load возвращает ошибку, если сборка без тега gocv.
func (c *GoCVCodec) Load(ctx context.Context, path string) (*entity.PixelImage, error) {
	_ = ctx
	_ = path
	return nil, vision.ErrGoCVDisabled
}

// Decode возвращает ошибку, если сборка без тега gocv.
func (c *GoCVCodec) Decode(ctx context.Context, data []byte) (*entity.PixelImage, error) {
	_ = ctx
	_ = data
	return nil, vision.ErrGoCVDisabled
}

// Save возвращает ошибку, если сборка без тега gocv.
func (c *GoCVCodec) Save(ctx context.Context, path string, img *entity.PixelImage) error {
	_ = ctx
	_ = path
	_ = img
	return vision.ErrGoCVDisabled
}
