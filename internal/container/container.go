package container

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"mammo-regions/config"
	app "mammo-regions/internal/application"
	"mammo-regions/internal/domain/port"
	"mammo-regions/internal/infrastructure/imageio"
	"mammo-regions/internal/infrastructure/storage"
	"mammo-regions/internal/infrastructure/vision"
)

// overlayScale увеличение картинки с подсветкой
const overlayScale = 4

type Container struct {
	UserService   *app.UserService
	RegionService *app.RegionService
	Supervision   port.SupervisionSource
}

// Options что собирать: бэкенд, параметры конвейера и раскладка файлов.
type Options struct {
	Backend string // config.BackendNative или config.BackendGoCV
	Params  vision.Params
	Layout  app.Layout
	Log     logrus.FieldLogger
}

func New(userRepo port.UserRepository, opts Options) (*Container, error) {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}

	b, err := newBackend(opts.Backend, opts.Params)
	if err != nil {
		return nil, err
	}

	finder, err := vision.NewFinder(opts.Params, b.prefilter, b.labeler, opts.Log)
	if err != nil {
		return nil, fmt.Errorf("build finder: %w", err)
	}

	userService := app.NewUserService(userRepo)
	regionService := app.NewRegionService(
		b.codec,
		finder,
		storage.NewCoordinateWriter(),
		imageio.NewOverlayRenderer(overlayScale),
		opts.Layout,
		opts.Log,
	)

	return &Container{
		UserService:   userService,
		RegionService: regionService,
		Supervision:   storage.NewSupervisionReader(),
	}, nil
}

// backend реализации портов для выбранного бэкенда.
type backend struct {
	codec     port.ImageCodec
	prefilter port.PreFilter
	labeler   port.Labeler
}

func newBackend(name string, params vision.Params) (backend, error) {
	switch name {
	case "", config.BackendNative:
		return backend{
			codec:     imageio.NewNativeCodec(),
			prefilter: vision.NewNativePreFilter(params),
			labeler:   vision.NativeLabeler{},
		}, nil
	case config.BackendGoCV:
		codec, err := imageio.NewGoCVCodec()
		if err != nil {
			return backend{}, fmt.Errorf("gocv codec: %w", err)
		}
		prefilter, err := vision.NewGoCVPreFilter(params)
		if err != nil {
			return backend{}, fmt.Errorf("gocv prefilter: %w", err)
		}
		labeler, err := vision.NewGoCVLabeler()
		if err != nil {
			return backend{}, fmt.Errorf("gocv labeler: %w", err)
		}
		return backend{codec: codec, prefilter: prefilter, labeler: labeler}, nil
	default:
		return backend{}, fmt.Errorf("unknown backend %q", name)
	}
}
