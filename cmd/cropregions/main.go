package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mammo-regions/config"
	app "mammo-regions/internal/application"
	"mammo-regions/internal/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fs := flag.NewFlagSet("cropregions", flag.ExitOnError)
	cli.BindPathFlags(fs, cfg)
	fs.IntVar(&cfg.CropRadius, "radius", cfg.CropRadius, "crop radius replacing the supervision radius, 0 keeps it")
	ext := fs.String("crop-ext", ".pgm", "format of cropped files")
	_ = fs.Parse(os.Args[1:])

	// Вырезки одного размера для всего набора
	cfg.Pipeline.RadiusOverride = cfg.CropRadius

	layout := app.Layout{
		ImagesDir: cfg.ImagesDir,
		ImageExt:  cfg.ImageExt,
		CropDir:   cfg.PNGOutputDir,
		CropExt:   *ext,
	}
	logger, c, err := cli.Setup(cfg, layout, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to set up: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	regions, err := cli.ReadSupervision(ctx, c, cfg.SupervisionCSV, logger)
	if err != nil {
		logger.WithError(err).Error("read supervision")
		os.Exit(1)
	}

	reports := c.RegionService.CropAll(ctx, regions, cfg.Workers)
	stop()
	os.Exit(cli.ExitCode(reports))
}
