// Package chrome owns the self-drawn window decoration: the title bar, the
// bottom control bar and the border. The geometry controller treats its
// extent as authoritative input and reads it fresh on every recompute.
package chrome

import (
	"xoverlay/internal/geometry"
)

const (
	// OuterMargin is the transparent resize-handle band around the border.
	OuterMargin = 5
	Border      = 4

	DefaultTitleHeight  = 30
	DefaultBottomHeight = 30

	buttonWidth = 30
	buttonPad   = 5
)

// Region is what a window-local pointer position lands on inside the chrome.
// RegionNone means the position belongs to the geometry controller.
type Region uint8

const (
	RegionNone Region = iota
	RegionClose
	RegionRotateCCW
	RegionRotateCW
	RegionOpacity
)

type Chrome struct {
	// Bar heights are fields, not constants: the extent must track them if
	// they ever change at runtime.
	TitleHeight  int
	BottomHeight int
}

func New() *Chrome {
	return &Chrome{
		TitleHeight:  DefaultTitleHeight,
		BottomHeight: DefaultBottomHeight,
	}
}

// Extent reports the non-image overhead of the window.
func (c *Chrome) Extent() geometry.Extent {
	frame := 2 * (OuterMargin + Border)
	return geometry.Extent{
		W: frame,
		H: c.TitleHeight + c.BottomHeight + frame,
	}
}

// ContentRect is the window-local rectangle the image occupies.
func (c *Chrome) ContentRect(s geometry.Size) geometry.Rect {
	inset := OuterMargin + Border
	extent := c.Extent()
	return geometry.Rect{
		X: inset,
		Y: inset + c.TitleHeight,
		W: s.W - extent.W,
		H: s.H - extent.H,
	}
}

func (c *Chrome) titleRect(s geometry.Size) geometry.Rect {
	inset := OuterMargin + Border
	return geometry.Rect{X: inset, Y: inset, W: s.W - 2*inset, H: c.TitleHeight}
}

func (c *Chrome) bottomRect(s geometry.Size) geometry.Rect {
	inset := OuterMargin + Border
	return geometry.Rect{
		X: inset,
		Y: s.H - inset - c.BottomHeight,
		W: s.W - 2*inset,
		H: c.BottomHeight,
	}
}

func (c *Chrome) closeRect(s geometry.Size) geometry.Rect {
	title := c.titleRect(s)
	return geometry.Rect{X: title.Right() - buttonWidth + 1, Y: title.Y, W: buttonWidth, H: title.H}
}

func (c *Chrome) rotateCCWRect(s geometry.Size) geometry.Rect {
	bottom := c.bottomRect(s)
	return geometry.Rect{X: bottom.X + buttonPad, Y: bottom.Y, W: buttonWidth, H: bottom.H}
}

func (c *Chrome) rotateCWRect(s geometry.Size) geometry.Rect {
	r := c.rotateCCWRect(s)
	r.X += buttonWidth + buttonPad
	return r
}

func (c *Chrome) opacityRect(s geometry.Size) geometry.Rect {
	bottom := c.bottomRect(s)
	cw := c.rotateCWRect(s)
	x := cw.Right() + 1 + 2*buttonPad
	return geometry.Rect{X: x, Y: bottom.Y, W: bottom.Right() - buttonPad - x + 1, H: bottom.H}
}

// HitTest resolves a window-local pointer position against the chrome
// interaction zones. Edge bands beat chrome zones, so resize keeps working
// from the full perimeter; callers therefore run the edge classifier first.
func (c *Chrome) HitTest(p geometry.Point, s geometry.Size) Region {
	switch {
	case c.closeRect(s).Contains(p):
		return RegionClose
	case c.rotateCCWRect(s).Contains(p):
		return RegionRotateCCW
	case c.rotateCWRect(s).Contains(p):
		return RegionRotateCW
	case c.opacityRect(s).Contains(p):
		return RegionOpacity
	default:
		return RegionNone
	}
}

// OpacityAt maps a pointer position inside the opacity strip to a value in
// [min, max], left to right.
func (c *Chrome) OpacityAt(p geometry.Point, s geometry.Size, min, max float64) float64 {
	strip := c.opacityRect(s)
	if strip.W <= 1 {
		return max
	}
	frac := float64(p.X-strip.X) / float64(strip.W-1)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return min + frac*(max-min)
}
