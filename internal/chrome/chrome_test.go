package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xoverlay/internal/geometry"
)

func TestExtent(t *testing.T) {
	c := New()
	assert.Equal(t, geometry.Extent{W: 18, H: 78}, c.Extent())
}

func TestExtentTracksBarHeights(t *testing.T) {
	c := New()
	c.BottomHeight = 40
	assert.Equal(t, geometry.Extent{W: 18, H: 88}, c.Extent())
}

func TestContentRect(t *testing.T) {
	c := New()
	got := c.ContentRect(geometry.Size{W: 500, H: 400})
	assert.Equal(t, geometry.Rect{X: 9, Y: 39, W: 482, H: 322}, got)
}

func TestHitTest(t *testing.T) {
	c := New()
	s := geometry.Size{W: 500, H: 400}

	title := c.titleRect(s)
	bottom := c.bottomRect(s)

	tests := []struct {
		name string
		p    geometry.Point
		want Region
	}{
		{"content area", geometry.Point{X: 250, Y: 200}, RegionNone},
		{"title bar body", geometry.Point{X: 100, Y: title.Y + 15}, RegionNone},
		{"close button", geometry.Point{X: title.Right() - 5, Y: title.Y + 15}, RegionClose},
		{"rotate ccw", geometry.Point{X: bottom.X + buttonPad + 10, Y: bottom.Y + 15}, RegionRotateCCW},
		{"rotate cw", geometry.Point{X: bottom.X + buttonPad + buttonWidth + buttonPad + 10, Y: bottom.Y + 15}, RegionRotateCW},
		{"opacity strip", geometry.Point{X: bottom.X + 150, Y: bottom.Y + 15}, RegionOpacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.HitTest(tt.p, s))
		})
	}
}

func TestOpacityAt(t *testing.T) {
	c := New()
	s := geometry.Size{W: 500, H: 400}
	strip := c.opacityRect(s)
	mid := strip.Y + strip.H/2

	left := c.OpacityAt(geometry.Point{X: strip.X, Y: mid}, s, 0.1, 1.0)
	right := c.OpacityAt(geometry.Point{X: strip.Right(), Y: mid}, s, 0.1, 1.0)
	center := c.OpacityAt(geometry.Point{X: strip.X + strip.W/2, Y: mid}, s, 0.1, 1.0)

	assert.InDelta(t, 0.1, left, 1e-9)
	assert.InDelta(t, 1.0, right, 1e-9)
	assert.InDelta(t, 0.55, center, 0.01)

	// Positions past the strip clamp instead of extrapolating.
	assert.InDelta(t, 1.0, c.OpacityAt(geometry.Point{X: strip.Right() + 100, Y: mid}, s, 0.1, 1.0), 1e-9)
}

func TestPaintStaysInBounds(t *testing.T) {
	c := New()
	s := geometry.Size{W: 200, H: 150}
	buf := make([]byte, s.W*s.H*4)

	assert.NotPanics(t, func() { c.Paint(buf, s, 0.5) })

	// The outer resize band stays untouched (transparent hit area).
	assert.Equal(t, byte(0), buf[0])

	// Border pixel.
	i := (OuterMargin*s.W + OuterMargin) * 4
	assert.Equal(t, byte(0xd0), buf[i])
}
