package cli

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"mammo-regions/config"
	app "mammo-regions/internal/application"
	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/infrastructure/vision"
)

func testConfig() *config.Config {
	return &config.Config{
		ImagesDir: "images",
		ImageExt:  ".png",
		Backend:   config.BackendNative,
		Workers:   2,
		LogLevel:  "error",
		LogFormat: "text",
		Pipeline:  vision.DefaultParams(),
	}
}

func TestBindPathFlags(t *testing.T) {
	cfg := testConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	BindPathFlags(fs, cfg)

	require.NoError(t, fs.Parse([]string{"-S", "sup.csv", "--png-output-dir", "pngs", "-workers", "8"}))
	require.Equal(t, "sup.csv", cfg.SupervisionCSV)
	require.Equal(t, "pngs", cfg.PNGOutputDir)
	require.Equal(t, "images", cfg.ImagesDir)
	require.Equal(t, 8, cfg.Workers)
}

func TestSetupAndReadSupervision(t *testing.T) {
	root := t.TempDir()
	layout := app.Layout{CoordinatesDir: filepath.Join(root, "out", "coords")}

	log, c, err := Setup(testConfig(), layout, io.Discard)
	require.NoError(t, err)
	require.DirExists(t, layout.CoordinatesDir)

	path := filepath.Join(root, "sup.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,class,x,y,r\nmdb001,CIRC,535,425,197\nmdb003,NORM,,,\n"), 0o644))

	regions, err := ReadSupervision(context.Background(), c, path, log)
	require.NoError(t, err)
	require.Len(t, regions, 1)

	_, err = ReadSupervision(context.Background(), c, filepath.Join(root, "absent.csv"), log)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadSupervision(context.Background(), c, "", logrus.New())
	require.Error(t, err)
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 0, ExitCode([]entity.RegionReport{{Result: &entity.SelectionResult{}}}))
	require.Equal(t, 1, ExitCode([]entity.RegionReport{{}, {Err: errors.New("boom")}}))
}
