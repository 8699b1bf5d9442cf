package view

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xoverlay/internal/geometry"
)

func writePNG(t *testing.T, w, h int, fill color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
	return path
}

func TestLoad(t *testing.T) {
	path := writePNG(t, 64, 32, color.NRGBA{R: 255, A: 255})

	img, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, geometry.Size{W: 64, H: 32}, img.Size())
	assert.Equal(t, "test.png", img.Title)
	assert.NotEmpty(t, img.ID)
}

func TestLoadDistinctSessionIDs(t *testing.T) {
	path := writePNG(t, 8, 8, color.NRGBA{G: 255, A: 255})

	a, err := Load(path)
	require.NoError(t, err)
	b, err := Load(path)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestRotateTransposesDimensions(t *testing.T) {
	path := writePNG(t, 40, 20, color.NRGBA{B: 255, A: 255})
	img, err := Load(path)
	require.NoError(t, err)

	img.Rotate(1)
	assert.Equal(t, geometry.Size{W: 20, H: 40}, img.Size())

	img.Rotate(-1)
	assert.Equal(t, geometry.Size{W: 40, H: 20}, img.Size())
}

func TestRotatePixelPlacement(t *testing.T) {
	// 2x1 image: red at (0,0), green at (1,0). Clockwise it becomes 1x2 with
	// red at (0,0) and green at (0,1).
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	dst := rotate90CW(src)
	assert.Equal(t, 1, dst.Rect.Dx())
	assert.Equal(t, 2, dst.Rect.Dy())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, dst.RGBAAt(0, 1))
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	path := writePNG(t, 3, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img, err := Load(path)
	require.NoError(t, err)

	before := append([]byte(nil), img.src.Pix...)
	img.Rotate(4)

	assert.Equal(t, geometry.Size{W: 3, H: 5}, img.Size())
	assert.Equal(t, before, img.src.Pix)
}

func TestRenderLetterboxes(t *testing.T) {
	path := writePNG(t, 100, 100, color.NRGBA{R: 255, A: 255})
	img, err := Load(path)
	require.NoError(t, err)

	bg := color.NRGBA{R: 0, G: 0, B: 0}
	frame := img.Render(geometry.Size{W: 200, H: 100}, 1.0, bg)
	require.Len(t, frame, 200*100*4)

	// Left edge is background, center is the image (BGRX order).
	left := frame[(50*200+5)*4:]
	assert.Equal(t, byte(0), left[2], "letterbox stays background")

	center := frame[(50*200+100)*4:]
	assert.Equal(t, byte(255), center[2], "image red lands in R byte")
	assert.Equal(t, byte(0), center[0], "image red has no blue")
}

func TestRenderOpacityBlends(t *testing.T) {
	path := writePNG(t, 10, 10, color.NRGBA{R: 255, A: 255})
	img, err := Load(path)
	require.NoError(t, err)

	frame := img.Render(geometry.Size{W: 10, H: 10}, 0.5, color.NRGBA{})
	center := frame[(5*10+5)*4:]
	// Half red over black: R near 127.
	assert.InDelta(t, 127, int(center[2]), 2)
}

func TestClampOpacity(t *testing.T) {
	assert.Equal(t, MinOpacity, ClampOpacity(0))
	assert.Equal(t, MaxOpacity, ClampOpacity(2))
	assert.Equal(t, 0.5, ClampOpacity(0.5))
}
