package vision

import "mammo-regions/internal/domain/entity"

// RemapContrast кубическое растяжение контраста: out = floor(v^3 / M^2), M равно максимуму всего изображения.
// При M == 0 результат целиком нулевой.
func RemapContrast(img *entity.PixelImage) *entity.PixelImage {
	out := entity.NewPixelImage(img.Rows, img.Cols)
	m := int(img.Max())
	if m == 0 {
		return out
	}

	// Таблица на 256 значений: M вычислен один раз до прохода.
	var lut [256]uint8
	m2 := m * m
	for v := 0; v < 256; v++ {
		x := v * v * v / m2
		if x > 255 {
			x = 255
		}
		lut[v] = uint8(x)
	}
	for i, v := range img.Pix {
		out.Pix[i] = lut[v]
	}
	return out
}
