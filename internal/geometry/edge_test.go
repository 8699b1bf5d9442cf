package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEdge(t *testing.T) {
	size := Size{W: 500, H: 400}
	margin := 10

	tests := []struct {
		name string
		p    Point
		want Edge
	}{
		{"interior", Point{250, 200}, EdgeNone},
		{"left", Point{5, 200}, EdgeLeft},
		{"right", Point{495, 200}, EdgeRight},
		{"top", Point{250, 5}, EdgeTop},
		{"bottom", Point{250, 395}, EdgeBottom},
		{"top left corner", Point{5, 5}, EdgeTop | EdgeLeft},
		{"top right corner", Point{495, 5}, EdgeTop | EdgeRight},
		{"bottom left corner", Point{5, 395}, EdgeBottom | EdgeLeft},
		{"bottom right corner", Point{495, 395}, EdgeBottom | EdgeRight},
		{"just inside margin", Point{10, 10}, EdgeNone},
		{"on right boundary", Point{491, 200}, EdgeRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyEdge(tt.p, size, margin))
		})
	}
}

func TestClassifyEdgeNeverAmbiguous(t *testing.T) {
	// Windows narrower or shorter than twice the margin must still produce a
	// coherent mask: left wins over right, top over bottom.
	sizes := []Size{
		{W: 500, H: 400},
		{W: 15, H: 15},
		{W: 5, H: 5},
		{W: 1, H: 1},
		{W: 19, H: 300},
		{W: 300, H: 19},
	}
	for _, s := range sizes {
		for x := -5; x <= s.W+5; x++ {
			for y := -5; y <= s.H+5; y++ {
				e := ClassifyEdge(Point{x, y}, s, 10)
				assert.False(t, e.Has(EdgeLeft) && e.Has(EdgeRight),
					"left and right both set at (%d,%d) in %dx%d", x, y, s.W, s.H)
				assert.False(t, e.Has(EdgeTop) && e.Has(EdgeBottom),
					"top and bottom both set at (%d,%d) in %dx%d", x, y, s.W, s.H)
			}
		}
	}
}

func TestCursorFor(t *testing.T) {
	tests := []struct {
		edge Edge
		want Cursor
	}{
		{EdgeNone, CursorArrow},
		{EdgeLeft, CursorSizeH},
		{EdgeRight, CursorSizeH},
		{EdgeTop, CursorSizeV},
		{EdgeBottom, CursorSizeV},
		{EdgeTop | EdgeLeft, CursorSizeFDiag},
		{EdgeBottom | EdgeRight, CursorSizeFDiag},
		{EdgeTop | EdgeRight, CursorSizeBDiag},
		{EdgeBottom | EdgeLeft, CursorSizeBDiag},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CursorFor(tt.edge), "edge %s", tt.edge)
	}
}

func TestEdgeString(t *testing.T) {
	assert.Equal(t, "none", EdgeNone.String())
	assert.Equal(t, "top left", (EdgeTop | EdgeLeft).String())
	assert.Equal(t, "bottom right", (EdgeBottom | EdgeRight).String())
}
