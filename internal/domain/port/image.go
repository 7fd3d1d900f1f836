package port

import (
	"context"

	"mammo-regions/internal/domain/entity"
)

// ImageCodec загружает и сохраняет полутоновые снимки.
type ImageCodec interface {
	// Load читает снимок с диска и переводит его в оттенки серого
	Load(ctx context.Context, path string) (*entity.PixelImage, error)

	// Decode разбирает снимок из памяти (png, pgm, tiff, ...)
	Decode(ctx context.Context, data []byte) (*entity.PixelImage, error)

	// Save сохраняет изображение, формат определяется расширением файла
	Save(ctx context.Context, path string, img *entity.PixelImage) error
}

// Highlighter рисует выбранную область поверх вырезки и возвращает PNG.
type Highlighter interface {
	Highlight(crop *entity.PixelImage, result *entity.SelectionResult) ([]byte, error)
}

// PreFilter шумоподавление вырезанной области перед контрастированием.
type PreFilter interface {
	Apply(img *entity.PixelImage) (*entity.PixelImage, error)
}

// Labeler размечает 8-связные компоненты бинарной маски.
// Метки 1..K идут в порядке первого появления при построчном обходе.
type Labeler interface {
	Label(mask *entity.PixelImage) (*entity.LabelImage, error)
}
