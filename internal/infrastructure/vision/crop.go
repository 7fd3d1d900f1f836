package vision

import (
	"fmt"

	"mammo-regions/internal/domain/entity"
)

// FlipY переводит координату Y из разметки (начало внизу слева) в систему снимка (начало вверху слева).
func FlipY(y, imageHeight int) int {
	return imageHeight - y
}

// Crop вырезает квадрат со стороной 2r+1 вокруг центра области.
//
// imageHeight используется для переворота оси Y; при 0 берётся высота снимка.
// radiusOverride > 0 заменяет радиус из разметки.
// Прямоугольник обязан целиком лежать внутри снимка, иначе ErrOutOfBounds.
func Crop(img *entity.PixelImage, region entity.RegionDescriptor, imageHeight, radiusOverride int) (*entity.PixelImage, error) {
	if img == nil {
		return nil, fmt.Errorf("crop %s: nil image: %w", region.Name, entity.ErrInvalidArgument)
	}

	radius := region.Radius
	if radiusOverride > 0 {
		radius = radiusOverride
	}
	if radius < 0 {
		return nil, fmt.Errorf("crop %s: negative radius %d: %w", region.Name, radius, entity.ErrInvalidArgument)
	}
	if imageHeight <= 0 {
		imageHeight = img.Rows
	}

	// Проверки до любой арифметики с координатами: огромные значения из подписи
	// или CSV не должны переполнять int.
	if radius > (img.Rows-1)/2 || radius > (img.Cols-1)/2 {
		return nil, fmt.Errorf("crop %s: radius %d does not fit image %dx%d: %w",
			region.Name, radius, img.Cols, img.Rows, entity.ErrOutOfBounds)
	}
	cx := region.CenterX
	if cx < radius || cx > img.Cols-1-radius {
		return nil, fmt.Errorf("crop %s: center x=%d with radius %d exceeds image %dx%d: %w",
			region.Name, cx, radius, img.Cols, img.Rows, entity.ErrOutOfBounds)
	}
	// cy = imageHeight - y должен лежать в [radius, Rows-1-radius]
	if region.CenterY < imageHeight-(img.Rows-1-radius) || region.CenterY > imageHeight-radius {
		return nil, fmt.Errorf("crop %s: center y=%d with radius %d exceeds image %dx%d: %w",
			region.Name, region.CenterY, radius, img.Cols, img.Rows, entity.ErrOutOfBounds)
	}
	cy := FlipY(region.CenterY, imageHeight)

	top := cy - radius
	left := cx - radius
	size := 2*radius + 1

	out := entity.NewPixelImage(size, size)
	for r := 0; r < size; r++ {
		src := (top+r)*img.Cols + left
		copy(out.Pix[r*size:(r+1)*size], img.Pix[src:src+size])
	}
	return out, nil
}
