// Package view is the image collaborator of the geometry controller: it
// decodes image files, applies 90-degree rotations and renders the scaled,
// opacity-blended frame the X layer paints into the content area.
package view

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"

	"xoverlay/internal/geometry"
)

const (
	MinOpacity     = 0.1
	MaxOpacity     = 1.0
	DefaultOpacity = 1.0
)

// ClampOpacity keeps an opacity inside the slider range of the viewer.
func ClampOpacity(v float64) float64 {
	if v < MinOpacity {
		return MinOpacity
	}
	if v > MaxOpacity {
		return MaxOpacity
	}
	return v
}

// Image is a loaded image plus its viewer identity. Rotation permutes the
// stored pixels so repeated quarter turns accumulate no resampling loss.
type Image struct {
	// ID is the session ID of this load, fresh per file open.
	ID    string
	Path  string
	Title string

	src *image.RGBA
}

// Load decodes an image file. Zero or negative pixel dimensions and
// undecodable files are rejected here so they never reach the geometry
// controller.
func Load(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoded, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("decode %s: bad dimensions %dx%d (%s)", path, bounds.Dx(), bounds.Dy(), format)
	}

	src := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(src, src.Bounds(), decoded, bounds.Min, draw.Src)

	return &Image{
		ID:    uuid.NewString(),
		Path:  path,
		Title: filepath.Base(path),
		src:   src,
	}, nil
}

func (img *Image) Size() geometry.Size {
	return geometry.Size{W: img.src.Rect.Dx(), H: img.src.Rect.Dy()}
}

// Rotate applies quarter turns to the pixel data, positive clockwise.
func (img *Image) Rotate(quarterTurns int) {
	turns := ((quarterTurns % 4) + 4) % 4
	for i := 0; i < turns; i++ {
		img.src = rotate90CW(img.src)
	}
}

func rotate90CW(src *image.RGBA) *image.RGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// (x, y) lands at (h-1-y, x) under a clockwise quarter turn.
			si := src.PixOffset(x, y)
			di := dst.PixOffset(h-1-y, x)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}
