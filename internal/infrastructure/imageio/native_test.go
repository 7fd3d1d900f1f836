package imageio

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mammo-regions/internal/domain/entity"
)

func sampleImage() *entity.PixelImage {
	img := entity.NewPixelImage(6, 9)
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 4)
	}
	return img
}

func TestNativeCodec_SaveAndLoad(t *testing.T) {
	codec := NewNativeCodec()
	ctx := context.Background()
	dir := t.TempDir()

	for _, name := range []string{"crop.png", "crop.pgm"} {
		path := filepath.Join(dir, name)
		require.NoError(t, codec.Save(ctx, path, sampleImage()))

		loaded, err := codec.Load(ctx, path)
		require.NoError(t, err, name)
		require.Equal(t, sampleImage(), loaded, name)
	}
}

func TestNativeCodec_PGMHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdb001.pgm")
	require.NoError(t, NewNativeCodec().Save(context.Background(), path, sampleImage()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "P5", string(data[:2]))
}

func TestNativeCodec_Decode(t *testing.T) {
	codec := NewNativeCodec()
	path := filepath.Join(t.TempDir(), "crop.png")
	require.NoError(t, codec.Save(context.Background(), path, sampleImage()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	img, err := codec.Decode(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, 6, img.Rows)
	require.Equal(t, 9, img.Cols)

	_, err = codec.Decode(context.Background(), nil)
	require.Error(t, err)
	_, err = codec.Decode(context.Background(), []byte("not an image"))
	require.Error(t, err)
}

func TestNativeCodec_LoadMissing(t *testing.T) {
	_, err := NewNativeCodec().Load(context.Background(), filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
}

func TestToPixelImage_Color(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	img := ToPixelImage(src)
	require.Equal(t, []uint8{100, 255}, img.Pix)
}

func TestToPixelImage_GraySubImage(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range g.Pix {
		g.Pix[i] = uint8(i)
	}
	sub := g.SubImage(image.Rect(1, 1, 3, 3))

	img := ToPixelImage(sub)
	require.Equal(t, []uint8{5, 6, 9, 10}, img.Pix)
}
