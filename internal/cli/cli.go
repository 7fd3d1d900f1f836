// Package cli общие флаги и сборка зависимостей для пакетных утилит.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"mammo-regions/config"
	app "mammo-regions/internal/application"
	"mammo-regions/internal/container"
	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/infrastructure/storage"
	"mammo-regions/internal/logger"
)

// BindPathFlags регистрирует флаги путей (-S -I -O -P и их длинные имена) поверх значений из cfg.
func BindPathFlags(fs *flag.FlagSet, cfg *config.Config) {
	stringFlag(fs, &cfg.SupervisionCSV, "S", "supervision-csv", "path for supervision csv file")
	stringFlag(fs, &cfg.ImagesDir, "I", "images-dir", "path for original image files")
	stringFlag(fs, &cfg.OutputDir, "O", "output-dir", "directory for output data files")
	stringFlag(fs, &cfg.PNGOutputDir, "P", "png-output-dir", "directory for output png files")
	fs.StringVar(&cfg.ImageExt, "ext", cfg.ImageExt, "extension of original image files")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of images processed in parallel")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "image backend: native or gocv")
}

func stringFlag(fs *flag.FlagSet, p *string, short, long, usage string) {
	fs.StringVar(p, short, *p, usage)
	fs.StringVar(p, long, *p, usage+" (same as -"+short+")")
}

// Setup логгер и контейнер по конфигурации.
func Setup(cfg *config.Config, layout app.Layout, out io.Writer) (*logrus.Logger, *container.Container, error) {
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, out)
	if err != nil {
		return nil, nil, err
	}

	for _, dir := range []string{layout.CoordinatesDir, layout.CropDir, layout.OverlayDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	c, err := container.New(storage.NewMemoryUserRepository(), container.Options{
		Backend: cfg.Backend,
		Params:  cfg.Pipeline,
		Layout:  layout,
		Log:     log,
	})
	if err != nil {
		return nil, nil, err
	}
	return log, c, nil
}

// ReadSupervision читает разметку; ошибки отдельных строк только логируются.
func ReadSupervision(ctx context.Context, c *container.Container, path string, log logrus.FieldLogger) ([]entity.RegionDescriptor, error) {
	if path == "" {
		return nil, fmt.Errorf("supervision csv is not set (-S or SUPERVISION_CSV)")
	}

	regions, errs := c.Supervision.Read(ctx, path)
	if len(regions) == 0 && len(errs) > 0 {
		return nil, fmt.Errorf("could not open supervision csv file: %w", errs[0])
	}
	for _, err := range errs {
		log.WithError(err).Warn("supervision row skipped")
	}
	log.WithFields(logrus.Fields{"path": path, "regions": len(regions)}).Info("supervision loaded")
	return regions, nil
}

// ExitCode 0, если все записи обработаны, иначе 1.
func ExitCode(reports []entity.RegionReport) int {
	if app.Summarize(reports).Failed > 0 {
		return 1
	}
	return 0
}
