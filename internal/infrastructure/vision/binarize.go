package vision

import (
	"fmt"

	"mammo-regions/internal/domain/entity"
)

const foreground = 255

// Binarize строит маску: 255 там, где яркость не ниже квантиля p, иначе 0.
// Возвращает маску и использованный порог.
func Binarize(img *entity.PixelImage, p float64) (*entity.PixelImage, uint8, error) {
	threshold, err := Quantile(img.Samples(), p)
	if err != nil {
		return nil, 0, fmt.Errorf("binarize: %w", err)
	}

	mask := entity.NewPixelImage(img.Rows, img.Cols)
	for i, v := range img.Pix {
		if v >= threshold {
			mask.Pix[i] = foreground
		}
	}
	return mask, threshold, nil
}
