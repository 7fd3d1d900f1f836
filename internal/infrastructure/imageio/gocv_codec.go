//go:build gocv
// +build gocv

package imageio

import (
	"context"
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
	"mammo-regions/internal/infrastructure/vision"
)

// GoCVCodec чтение и запись снимков через OpenCV.
type GoCVCodec struct{}

// NewGoCVCodec создаёт кодек на OpenCV.
func NewGoCVCodec() (*GoCVCodec, error) {
	return &GoCVCodec{}, nil
}

// Load читает снимок сразу в оттенках серого.
func (c *GoCVCodec) Load(ctx context.Context, path string) (*entity.PixelImage, error) {
	_ = ctx
	mat := gocv.IMRead(path, gocv.IMReadGrayScale)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("could not open or find the image %s", path)
	}
	return vision.FromMat(mat)
}

// Decode разбирает снимок из памяти.
func (c *GoCVCodec) Decode(ctx context.Context, data []byte) (*entity.PixelImage, error) {
	_ = ctx
	mat, err := gocv.IMDecode(data, gocv.IMReadGrayScale)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, errors.New("failed to decode image")
	}
	return vision.FromMat(mat)
}

// Save записывает изображение, формат по расширению.
func (c *GoCVCodec) Save(ctx context.Context, path string, img *entity.PixelImage) error {
	_ = ctx
	mat, err := vision.ToMat(img)
	if err != nil {
		return err
	}
	defer mat.Close()
	if !gocv.IMWrite(path, mat) {
		return fmt.Errorf("imwrite %s failed", path)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.ImageCodec = (*GoCVCodec)(nil)
