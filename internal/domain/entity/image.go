package entity

import "fmt"

// PixelImage 8-битное полутоновое изображение, строки хранятся подряд (row-major).
type PixelImage struct {
	Rows int
	Cols int
	Pix  []uint8
}

// NewPixelImage создаёт чёрное изображение rows×cols.
func NewPixelImage(rows, cols int) *PixelImage {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &PixelImage{
		Rows: rows,
		Cols: cols,
		Pix:  make([]uint8, rows*cols),
	}
}

// PixelImageFromRows собирает изображение из двумерного среза; все строки обязаны быть одной длины.
func PixelImageFromRows(rows [][]uint8) (*PixelImage, error) {
	if len(rows) == 0 {
		return NewPixelImage(0, 0), nil
	}
	cols := len(rows[0])
	img := NewPixelImage(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", r, len(row), cols, ErrInvalidArgument)
		}
		copy(img.Pix[r*cols:], row)
	}
	return img, nil
}

// At возвращает значение пикселя (row, col).
func (p *PixelImage) At(row, col int) uint8 {
	return p.Pix[row*p.Cols+col]
}

// Set записывает значение пикселя (row, col).
func (p *PixelImage) Set(row, col int, v uint8) {
	p.Pix[row*p.Cols+col] = v
}

// Empty true для изображения без пикселей.
func (p *PixelImage) Empty() bool {
	return p == nil || p.Rows == 0 || p.Cols == 0
}

// Max возвращает максимальную яркость изображения.
func (p *PixelImage) Max() uint8 {
	var m uint8
	for _, v := range p.Pix {
		if v > m {
			m = v
		}
	}
	return m
}

// Samples возвращает плоскую последовательность яркостей (без копирования).
func (p *PixelImage) Samples() []uint8 {
	return p.Pix
}
