package imageio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spakin/netpbm"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

// NativeCodec чтение и запись снимков без OpenCV.
// Поддерживает форматы imaging (png, jpeg, tiff, bmp, gif) и netpbm (pgm, pnm), в котором поставляется MIAS.
type NativeCodec struct{}

// NewNativeCodec создаёт кодек на чистом Go.
func NewNativeCodec() *NativeCodec {
	return &NativeCodec{}
}

// Load читает снимок и переводит его в оттенки серого.
func (c *NativeCodec) Load(ctx context.Context, path string) (*entity.PixelImage, error) {
	_ = ctx
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return ToPixelImage(img), nil
}

// Decode разбирает снимок из памяти.
func (c *NativeCodec) Decode(ctx context.Context, data []byte) (*entity.PixelImage, error) {
	_ = ctx
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return ToPixelImage(img), nil
}

// Save записывает изображение; .pgm пишется в netpbm, остальное через imaging.
func (c *NativeCodec) Save(ctx context.Context, path string, img *entity.PixelImage) error {
	_ = ctx
	gray := ToGray(img)

	if strings.EqualFold(filepath.Ext(path), ".pgm") {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := netpbm.Encode(f, gray, &netpbm.EncodeOptions{Format: netpbm.PGM, MaxValue: 255}); err != nil {
			f.Close()
			return fmt.Errorf("encode pgm %s: %w", path, err)
		}
		return f.Close()
	}

	if err := imaging.Save(gray, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// ToPixelImage переводит произвольное изображение в 8-битное полутоновое.
func ToPixelImage(img image.Image) *entity.PixelImage {
	b := img.Bounds()
	out := entity.NewPixelImage(b.Dy(), b.Dx())

	if g, ok := img.(*image.Gray); ok {
		for r := 0; r < out.Rows; r++ {
			start := g.PixOffset(b.Min.X, b.Min.Y+r)
			copy(out.Pix[r*out.Cols:(r+1)*out.Cols], g.Pix[start:start+out.Cols])
		}
		return out
	}

	// Grayscale даёт NRGBA с равными каналами, берём красный.
	nrgba := imaging.Grayscale(img)
	for r := 0; r < out.Rows; r++ {
		for c := 0; c < out.Cols; c++ {
			out.Pix[r*out.Cols+c] = nrgba.Pix[r*nrgba.Stride+c*4]
		}
	}
	return out
}

// ToGray оборачивает PixelImage в *image.Gray без копирования.
func ToGray(img *entity.PixelImage) *image.Gray {
	return &image.Gray{
		Pix:    img.Pix,
		Stride: img.Cols,
		Rect:   image.Rect(0, 0, img.Cols, img.Rows),
	}
}

// Проверка реализации интерфейса
var _ port.ImageCodec = (*NativeCodec)(nil)
