package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 500, H: 400}

	assert.Equal(t, 599, r.Right())
	assert.Equal(t, 499, r.Bottom())
	assert.Equal(t, Point{350, 300}, r.Center())

	r.SetLeft(50)
	assert.Equal(t, Rect{X: 50, Y: 100, W: 550, H: 400}, r)
	assert.Equal(t, 599, r.Right(), "right edge fixed while moving left")

	r.SetRight(649)
	assert.Equal(t, 600, r.W)
	assert.Equal(t, 50, r.X, "left edge fixed while moving right")

	r.SetTop(50)
	assert.Equal(t, 450, r.H)
	assert.Equal(t, 499, r.Bottom())

	r.SetBottom(549)
	assert.Equal(t, 500, r.H)
	assert.Equal(t, 50, r.Y)
}

func TestRectMoveCenter(t *testing.T) {
	r := Rect{W: 200, H: 100}
	r.MoveCenter(Point{300, 300})
	assert.Equal(t, Rect{X: 200, Y: 250, W: 200, H: 100}, r)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	assert.True(t, r.Contains(Point{10, 10}))
	assert.True(t, r.Contains(Point{29, 29}))
	assert.False(t, r.Contains(Point{30, 29}))
	assert.False(t, r.Contains(Point{9, 15}))
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		name      string
		content   Size
		bounds    Size
		want      Size
		wantScale float64
	}{
		{"fits untouched", Size{800, 600}, Size{850, 680}, Size{800, 600}, 1.0},
		{"never upscales", Size{100, 100}, Size{1000, 1000}, Size{100, 100}, 1.0},
		{"width bound", Size{2000, 1000}, Size{1000, 1000}, Size{1000, 500}, 0.5},
		{"height bound", Size{1000, 2000}, Size{1000, 1000}, Size{500, 1000}, 0.5},
		{"both bound", Size{2000, 4000}, Size{1000, 1000}, Size{500, 1000}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, scale := FitSize(tt.content, tt.bounds)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantScale, scale, 1e-9)
		})
	}
}

func TestFitSizeDegenerateContent(t *testing.T) {
	got, scale := FitSize(Size{0, 0}, Size{100, 100})
	assert.Equal(t, Size{0, 0}, got)
	assert.Equal(t, 1.0, scale)
}
