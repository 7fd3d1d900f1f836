package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

var (
	selectedColor = color.NRGBA{R: 255, G: 64, B: 64, A: 255}
	boundsColor   = color.NRGBA{G: 255, A: 255}
)

// OverlayRenderer подсвечивает выбранную область поверх вырезки.
type OverlayRenderer struct {
	Scale int // во сколько раз увеличить картинку; вырезки MIAS маленькие
}

// NewOverlayRenderer создаёт рендерер с увеличением scale (минимум 1).
func NewOverlayRenderer(scale int) *OverlayRenderer {
	if scale < 1 {
		scale = 1
	}
	return &OverlayRenderer{Scale: scale}
}

// Render рисует вырезку в цвете, пиксели области красным, рамку зелёным.
func (o *OverlayRenderer) Render(crop *entity.PixelImage, result *entity.SelectionResult) (*image.NRGBA, error) {
	if crop.Empty() {
		return nil, errors.New("empty crop")
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, crop.Cols, crop.Rows))
	draw.Draw(canvas, canvas.Bounds(), ToGray(crop), image.Point{}, draw.Src)

	if b, ok := result.Bounds(); ok {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			canvas.SetNRGBA(c, b.MinRow, boundsColor)
			canvas.SetNRGBA(c, b.MaxRow, boundsColor)
		}
		for r := b.MinRow; r <= b.MaxRow; r++ {
			canvas.SetNRGBA(b.MinCol, r, boundsColor)
			canvas.SetNRGBA(b.MaxCol, r, boundsColor)
		}
		for _, p := range result.Points {
			canvas.SetNRGBA(p.Col, p.Row, selectedColor)
		}
	}

	if o.Scale == 1 {
		return canvas, nil
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, crop.Cols*o.Scale, crop.Rows*o.Scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return scaled, nil
}

// Highlight возвращает подсвеченную вырезку в PNG.
func (o *OverlayRenderer) Highlight(crop *entity.PixelImage, result *entity.SelectionResult) ([]byte, error) {
	img, err := o.Render(crop, result)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Проверка реализации интерфейса
var _ port.Highlighter = (*OverlayRenderer)(nil)
