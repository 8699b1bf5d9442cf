package view

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"xoverlay/internal/geometry"
)

// Render produces the BGRX frame for the content area: the image scaled to
// fit while preserving its ratio, centered, and alpha-blended against the
// background at the given opacity. The returned buffer is content.W *
// content.H * 4 bytes in the ZPixmap byte order PutImage expects at depth 24.
func (img *Image) Render(content geometry.Size, opacity float64, bg color.NRGBA) []byte {
	opacity = ClampOpacity(opacity)

	canvas := image.NewRGBA(image.Rect(0, 0, content.W, content.H))
	fill(canvas, bg)

	fitted, _ := geometry.FitSize(img.Size(), content)
	if fitted.W > 0 && fitted.H > 0 {
		x := (content.W - fitted.W) / 2
		y := (content.H - fitted.H) / 2
		target := image.Rect(x, y, x+fitted.W, y+fitted.H)

		scaled := image.NewRGBA(image.Rect(0, 0, fitted.W, fitted.H))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img.src, img.src.Bounds(), xdraw.Src, nil)

		blendOver(canvas, target, scaled, opacity)
	}

	return toBGRX(canvas)
}

func fill(dst *image.RGBA, c color.NRGBA) {
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i+0] = c.R
		dst.Pix[i+1] = c.G
		dst.Pix[i+2] = c.B
		dst.Pix[i+3] = 0xff
	}
}

// blendOver composites src over dst at target, with a uniform opacity
// multiplied into the per-pixel alpha.
func blendOver(dst *image.RGBA, target image.Rectangle, src *image.RGBA, opacity float64) {
	for y := target.Min.Y; y < target.Max.Y; y++ {
		for x := target.Min.X; x < target.Max.X; x++ {
			si := src.PixOffset(x-target.Min.X, y-target.Min.Y)
			di := dst.PixOffset(x, y)

			a := uint32(float64(src.Pix[si+3]) * opacity)
			ia := 255 - a

			dst.Pix[di+0] = uint8((uint32(src.Pix[si+0])*a + uint32(dst.Pix[di+0])*ia) / 255)
			dst.Pix[di+1] = uint8((uint32(src.Pix[si+1])*a + uint32(dst.Pix[di+1])*ia) / 255)
			dst.Pix[di+2] = uint8((uint32(src.Pix[si+2])*a + uint32(dst.Pix[di+2])*ia) / 255)
			dst.Pix[di+3] = 0xff
		}
	}
}

// toBGRX converts an RGBA buffer to the little-endian 32-bit ZPixmap layout.
func toBGRX(src *image.RGBA) []byte {
	out := make([]byte, len(src.Pix))
	for i := 0; i < len(src.Pix); i += 4 {
		out[i+0] = src.Pix[i+2] // B
		out[i+1] = src.Pix[i+1] // G
		out[i+2] = src.Pix[i+0] // R
		out[i+3] = 0
	}
	return out
}
