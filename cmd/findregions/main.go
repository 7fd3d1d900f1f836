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
	"mammo-regions/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fs := flag.NewFlagSet("findregions", flag.ExitOnError)
	cli.BindPathFlags(fs, cfg)
	fs.StringVar(&cfg.OverlayDir, "overlay-dir", cfg.OverlayDir, "directory for highlighted selections (optional)")
	mode := fs.String("mode", string(cfg.Pipeline.Mode), "pipeline mode: select or threshold")
	_ = fs.Parse(os.Args[1:])

	cfg.Pipeline.Mode = vision.Mode(*mode)
	if err := cfg.Pipeline.Validate(); err != nil {
		log.Fatalf("Invalid pipeline config: %v", err)
	}

	layout := app.Layout{
		ImagesDir:      cfg.ImagesDir,
		ImageExt:       cfg.ImageExt,
		CoordinatesDir: cfg.OutputDir,
		CropDir:        cfg.PNGOutputDir,
		CropExt:        ".png",
		OverlayDir:     cfg.OverlayDir,
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

	reports := c.RegionService.ProcessAll(ctx, regions, cfg.Workers)
	stop()
	os.Exit(cli.ExitCode(reports))
}
