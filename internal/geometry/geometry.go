// Package geometry implements the window geometry controller for a frameless
// window: edge hit-testing, drag-to-move, aspect-constrained drag-to-resize,
// cursor feedback and the geometry recompute on image load/rotate. It is a
// pure package with no X11 dependency so it can be driven entirely from tests.
package geometry

type Point struct {
	X int
	Y int
}

type Size struct {
	W int
	H int
}

// Rect is a window rectangle in screen coordinates. Right and Bottom are
// inclusive, so Right() == X+W-1. The edge mutators move one edge and keep
// the opposite edge fixed.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Right() int  { return r.X + r.W - 1 }
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r *Rect) SetLeft(x int) {
	r.W += r.X - x
	r.X = x
}

func (r *Rect) SetRight(x int) {
	r.W = x - r.X + 1
}

func (r *Rect) SetTop(y int) {
	r.H += r.Y - y
	r.Y = y
}

func (r *Rect) SetBottom(y int) {
	r.H = y - r.Y + 1
}

// SetWidth keeps the left edge fixed.
func (r *Rect) SetWidth(w int) { r.W = w }

// SetHeight keeps the top edge fixed.
func (r *Rect) SetHeight(h int) { r.H = h }

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r *Rect) MoveCenter(c Point) {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Extent is the chrome overhead around the image content: the extra width and
// height the window carries beyond the content area (borders, title bar,
// bottom bar).
type Extent struct {
	W int
	H int
}

// ExtentFunc reports the current chrome extent. The controller calls it on
// every resize and recompute instead of caching, since chrome sizes can
// change.
type ExtentFunc func() Extent

// FitSize scales content down uniformly so it fits bounds, never scaling up
// past 1.0. It returns the fitted size and the scale that was applied.
func FitSize(content, bounds Size) (Size, float64) {
	if content.W <= 0 || content.H <= 0 {
		return content, 1.0
	}

	scale := 1.0
	if s := float64(bounds.W) / float64(content.W); s < scale {
		scale = s
	}
	if s := float64(bounds.H) / float64(content.H); s < scale {
		scale = s
	}

	return Size{
		W: int(float64(content.W) * scale),
		H: int(float64(content.H) * scale),
	}, scale
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
