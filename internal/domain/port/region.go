package port

import (
	"context"

	"mammo-regions/internal/domain/entity"
)

// RegionFinder ищет подозрительную область вокруг центра из разметки.
type RegionFinder interface {
	// Find вырезает область из снимка и выбирает в ней компоненту
	Find(ctx context.Context, img *entity.PixelImage, region entity.RegionDescriptor) (*entity.SelectionResult, error)

	// Crop только вырезает область, без анализа
	Crop(img *entity.PixelImage, region entity.RegionDescriptor) (*entity.PixelImage, error)

	// Analyze выбирает компоненту в вырезке, полученной от Crop
	Analyze(ctx context.Context, crop *entity.PixelImage, region entity.RegionDescriptor) (*entity.SelectionResult, error)
}

// SupervisionSource источник записей разметки.
type SupervisionSource interface {
	// Read возвращает корректные записи и ошибки по отбракованным строкам
	Read(ctx context.Context, path string) ([]entity.RegionDescriptor, []error)
}

// CoordinateSink сохраняет координаты выбранной области.
type CoordinateSink interface {
	Write(ctx context.Context, path string, result *entity.SelectionResult) error
}
