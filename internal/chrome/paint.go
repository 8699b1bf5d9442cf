package chrome

import (
	"xoverlay/internal/geometry"
)

// BGRX color triples of the flat chrome theme.
var (
	colorBorder = [3]byte{0xd0, 0xd0, 0xd0}
	colorBar    = [3]byte{0xf0, 0xf0, 0xf0}
	colorButton = [3]byte{0xcc, 0xcc, 0xcc}
	colorGroove = [3]byte{0xe0, 0xe0, 0xe0}
	colorHandle = [3]byte{0x99, 0x99, 0x99}
	colorGlass  = [3]byte{0x30, 0x30, 0x30}
)

// Paint draws the border, bars and controls into a window-sized BGRX frame
// buffer. The content area is left untouched for the image renderer.
func (c *Chrome) Paint(buf []byte, s geometry.Size, opacity float64) {
	inset := OuterMargin + Border

	// Border ring between the outer margin and the bars.
	fillRect(buf, s, geometry.Rect{X: OuterMargin, Y: OuterMargin, W: s.W - 2*OuterMargin, H: s.H - 2*OuterMargin}, colorBorder)
	fillRect(buf, s, geometry.Rect{X: inset, Y: inset, W: s.W - 2*inset, H: s.H - 2*inset}, colorGlass)

	fillRect(buf, s, c.titleRect(s), colorBar)
	fillRect(buf, s, c.bottomRect(s), colorBar)

	fillRect(buf, s, shrink(c.closeRect(s), 6), colorButton)
	fillRect(buf, s, shrink(c.rotateCCWRect(s), 6), colorButton)
	fillRect(buf, s, shrink(c.rotateCWRect(s), 6), colorButton)

	// Opacity groove with the handle at the current value.
	strip := c.opacityRect(s)
	groove := geometry.Rect{X: strip.X, Y: strip.Y + strip.H/2 - 3, W: strip.W, H: 6}
	fillRect(buf, s, groove, colorGroove)

	frac := (opacity - 0.1) / 0.9
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	hx := strip.X + int(frac*float64(strip.W-8))
	fillRect(buf, s, geometry.Rect{X: hx, Y: strip.Y + strip.H/2 - 7, W: 8, H: 14}, colorHandle)
}

func fillRect(buf []byte, s geometry.Size, r geometry.Rect, c [3]byte) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.W {
		x1 = s.W
	}
	if y1 > s.H {
		y1 = s.H
	}
	for y := y0; y < y1; y++ {
		row := (y*s.W + x0) * 4
		for x := x0; x < x1; x++ {
			buf[row+0] = c[0]
			buf[row+1] = c[1]
			buf[row+2] = c[2]
			buf[row+3] = 0
			row += 4
		}
	}
}

func shrink(r geometry.Rect, by int) geometry.Rect {
	return geometry.Rect{X: r.X + by, Y: r.Y + by, W: r.W - 2*by, H: r.H - 2*by}
}
