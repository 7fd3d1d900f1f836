package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

// Layout расположение входных снимков и выходных файлов.
// Пустой каталог означает, что соответствующий файл не пишется.
type Layout struct {
	ImagesDir      string // исходные снимки
	ImageExt       string // расширение исходных снимков, например ".png"
	CoordinatesDir string // координаты области, <name>.csv
	CropDir        string // вырезанные области
	CropExt        string // формат вырезки, ".png" или ".pgm"
	OverlayDir     string // подсветка выбранной области, <name>.png
}

// RegionOutput результат поиска области на одном снимке.
type RegionOutput struct {
	Result      *entity.SelectionResult
	Crop        *entity.PixelImage
	Highlighted []byte
}

// RegionService загрузка снимков, запуск конвейера и сохранение результатов.
type RegionService struct {
	codec       port.ImageCodec
	finder      port.RegionFinder
	coordinates port.CoordinateSink
	highlighter port.Highlighter
	layout      Layout
	log         logrus.FieldLogger
}

// NewRegionService создаёт сервис поиска областей.
func NewRegionService(
	codec port.ImageCodec,
	finder port.RegionFinder,
	coordinates port.CoordinateSink,
	highlighter port.Highlighter,
	layout Layout,
	log logrus.FieldLogger,
) *RegionService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if layout.CropExt == "" {
		layout.CropExt = ".png"
	}
	if layout.ImageExt == "" {
		layout.ImageExt = ".png"
	}
	return &RegionService{
		codec:       codec,
		finder:      finder,
		coordinates: coordinates,
		highlighter: highlighter,
		layout:      layout,
		log:         log,
	}
}

// Find вырезает область один раз, выбирает в ней компоненту и, если есть highlighter, рисует подсветку.
func (s *RegionService) Find(ctx context.Context, img *entity.PixelImage, region entity.RegionDescriptor) (*RegionOutput, error) {
	if s.finder == nil {
		return nil, errors.New("finder is not configured")
	}

	crop, err := s.finder.Crop(img, region)
	if err != nil {
		return nil, err
	}
	result, err := s.finder.Analyze(ctx, crop, region)
	if err != nil {
		return nil, err
	}

	out := &RegionOutput{Result: result, Crop: crop}
	if s.highlighter != nil {
		highlighted, err := s.highlighter.Highlight(crop, result)
		if err != nil {
			s.log.WithError(err).WithField("region", region.Name).Warn("highlight failed")
		} else {
			out.Highlighted = highlighted
		}
	}
	return out, nil
}

// FindInImage разбирает снимок из памяти и ищет в нём область.
func (s *RegionService) FindInImage(ctx context.Context, data []byte, region entity.RegionDescriptor) (*RegionOutput, error) {
	if s.codec == nil {
		return nil, errors.New("image codec is not configured")
	}
	img, err := s.codec.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return s.Find(ctx, img, region)
}

// ProcessOne обрабатывает одну запись разметки: загрузка, поиск, сохранение файлов.
// outputName задаёт базовое имя выходных файлов.
func (s *RegionService) ProcessOne(ctx context.Context, region entity.RegionDescriptor, outputName string) entity.RegionReport {
	report := entity.RegionReport{Region: region}
	log := s.log.WithField("region", region.Name)
	log.WithField("descriptor", region.String()).Info("processing")

	img, err := s.load(ctx, region)
	if err != nil {
		report.Err = err
		return report
	}

	out, err := s.Find(ctx, img, region)
	if err != nil {
		report.Err = err
		return report
	}
	report.Result = out.Result

	if s.layout.CropDir != "" {
		path := filepath.Join(s.layout.CropDir, outputName+s.layout.CropExt)
		if err := s.codec.Save(ctx, path, out.Crop); err != nil {
			report.Err = fmt.Errorf("save crop: %w", err)
			return report
		}
		report.CropPath = path
	}

	if s.layout.CoordinatesDir != "" {
		path := filepath.Join(s.layout.CoordinatesDir, outputName+".csv")
		if err := s.coordinates.Write(ctx, path, out.Result); err != nil {
			report.Err = fmt.Errorf("save coordinates: %w", err)
			return report
		}
		report.CoordinatesPath = path
	}

	if s.layout.OverlayDir != "" && out.Highlighted != nil {
		path := filepath.Join(s.layout.OverlayDir, outputName+".png")
		if err := os.WriteFile(path, out.Highlighted, 0o644); err != nil {
			report.Err = fmt.Errorf("save overlay: %w", err)
			return report
		}
		report.OverlayPath = path
	}

	log.WithFields(logrus.Fields{
		"state":     out.Result.State,
		"criterion": out.Result.Criterion,
		"threshold": out.Result.Threshold,
		"pixels":    len(out.Result.Points),
	}).Info("region exported")

	return report
}

// CropOne только вырезает область и сохраняет её в CropDir.
func (s *RegionService) CropOne(ctx context.Context, region entity.RegionDescriptor, outputName string) entity.RegionReport {
	report := entity.RegionReport{Region: region}
	if s.layout.CropDir == "" {
		report.Err = errors.New("crop output directory is not configured")
		return report
	}
	s.log.WithField("descriptor", region.String()).Info("cropping")

	img, err := s.load(ctx, region)
	if err != nil {
		report.Err = err
		return report
	}
	crop, err := s.finder.Crop(img, region)
	if err != nil {
		report.Err = err
		return report
	}

	path := filepath.Join(s.layout.CropDir, outputName+s.layout.CropExt)
	if err := s.codec.Save(ctx, path, crop); err != nil {
		report.Err = fmt.Errorf("save crop: %w", err)
		return report
	}
	report.CropPath = path
	return report
}

func (s *RegionService) load(ctx context.Context, region entity.RegionDescriptor) (*entity.PixelImage, error) {
	if s.codec == nil {
		return nil, errors.New("image codec is not configured")
	}
	path := filepath.Join(s.layout.ImagesDir, region.Name+s.layout.ImageExt)
	img, err := s.codec.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not open or find the image: %w", err)
	}
	return img, nil
}
