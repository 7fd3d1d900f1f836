package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"mammo-regions/internal/infrastructure/vision"
)

const (
	BackendNative = "native"
	BackendGoCV   = "gocv"
)

type Config struct {
	SupervisionCSV string
	ImagesDir      string
	ImageExt       string
	OutputDir      string // координаты областей
	PNGOutputDir   string // вырезки
	OverlayDir     string
	ImageHeight    int
	CropRadius     int // радиус для утилиты вырезки
	Backend        string
	Workers        int
	LogLevel       string
	LogFormat      string
	TelegramToken  string

	Pipeline vision.Params
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	return FromEnv(os.LookupEnv)
}

// FromEnv собирает конфигурацию из переменных, которые отдаёт lookup.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	r := envReader{lookup: lookup}

	cfg := &Config{
		SupervisionCSV: r.strVal("SUPERVISION_CSV", ""),
		ImagesDir:      r.strVal("IMAGES_DIR", "."),
		ImageExt:       r.strVal("IMAGE_EXT", ".png"),
		OutputDir:      r.strVal("OUTPUT_DIR", ""),
		PNGOutputDir:   r.strVal("PNG_OUTPUT_DIR", ""),
		OverlayDir:     r.strVal("OVERLAY_DIR", ""),
		ImageHeight:    r.intVal("IMAGE_HEIGHT", 1024),
		CropRadius:     r.intVal("CROP_RADIUS", 70),
		Backend:        strings.ToLower(r.strVal("BACKEND", BackendNative)),
		Workers:        r.intVal("WORKERS", 4),
		LogLevel:       r.strVal("LOG_LEVEL", "info"),
		LogFormat:      r.strVal("LOG_FORMAT", "text"),
		TelegramToken:  r.strVal("TELEGRAM_TOKEN", ""),
	}

	p := vision.DefaultParams()
	p.Mode = vision.Mode(strings.ToLower(r.strVal("MODE", string(p.Mode))))
	p.ImageHeight = cfg.ImageHeight
	p.MedianKernel = r.intVal("MEDIAN_KERNEL", p.MedianKernel)
	p.BoxKernel = r.intVal("BOX_KERNEL", p.BoxKernel)
	p.SelectQuantile = r.floatVal("SELECT_QUANTILE", p.SelectQuantile)
	p.ThresholdQuantile = r.floatVal("THRESHOLD_QUANTILE", p.ThresholdQuantile)
	p.MinComponentPixels = r.intVal("MIN_COMPONENT_PIXELS", p.MinComponentPixels)
	p.MinArea = r.intVal("MIN_AREA", p.MinArea)
	p.MaxArea = r.intVal("MAX_AREA", p.MaxArea)
	p.MinMeanIntensity = r.floatVal("MIN_MEAN_INTENSITY", p.MinMeanIntensity)
	cfg.Pipeline = p

	if r.err != nil {
		return nil, r.err
	}
	if cfg.Backend != BackendNative && cfg.Backend != BackendGoCV {
		return nil, fmt.Errorf("BACKEND: unknown backend %q", cfg.Backend)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline config: %w", err)
	}

	return cfg, nil
}

// envReader запоминает первую ошибку разбора.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) strVal(key, def string) string {
	v, ok := r.lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func (r *envReader) intVal(key string, def int) int {
	v := r.strVal(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
	return n
}

func (r *envReader) floatVal(key string, def float64) float64 {
	v := r.strVal(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
	return f
}
