package geometry

type state uint8

const (
	stateIdle state = iota
	stateDragging
	stateResizing
)

// Options are the tunables of the controller. Zero values fall back to the
// defaults below.
type Options struct {
	// Margin is the edge hit-test band in pixels.
	Margin int
	// MinWidth and MinHeight are the window size floor.
	MinWidth  int
	MinHeight int
	// ScreenFraction is the share of the usable screen an image may occupy
	// when fitted on load.
	ScreenFraction float64
}

const (
	DefaultMargin         = 10
	DefaultMinWidth       = 100
	DefaultMinHeight      = 100
	DefaultScreenFraction = 0.85
)

func (o Options) withDefaults() Options {
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	if o.MinWidth <= 0 {
		o.MinWidth = DefaultMinWidth
	}
	if o.MinHeight <= 0 {
		o.MinHeight = DefaultMinHeight
	}
	if o.ScreenFraction <= 0 || o.ScreenFraction > 1 {
		o.ScreenFraction = DefaultScreenFraction
	}
	return o
}

// Controller owns the authoritative window rectangle and the gesture state
// machine. Every visual surface of the window routes raw pointer events into
// the one controller instance; it never cares which surface an event came
// from. All methods must be called from the single event loop goroutine.
type Controller struct {
	opts   Options
	chrome ExtentFunc

	geom   Rect
	cursor Cursor

	// aspect is content width/height, 0 while no image is loaded.
	aspect float64

	state         state
	anchorPointer Point
	anchorOrigin  Point
	anchorGeom    Rect
	edge          Edge
}

func NewController(initial Rect, chrome ExtentFunc, opts Options) *Controller {
	return &Controller{
		opts:   opts.withDefaults(),
		chrome: chrome,
		geom:   initial,
		cursor: CursorArrow,
	}
}

// Geometry returns the current authoritative window rectangle.
func (c *Controller) Geometry() Rect { return c.geom }

// Margin returns the effective edge hit-test band.
func (c *Controller) Margin() int { return c.opts.Margin }

// SetGeometry replaces the window rectangle, e.g. after the X server reports
// a configure that did not originate here. Ignored mid-gesture so an echoed
// configure cannot corrupt the anchors.
func (c *Controller) SetGeometry(r Rect) {
	if c.state != stateIdle {
		return
	}
	c.geom = r
}

// Cursor returns the shape the window should currently show. During an
// active gesture it stays frozen at whatever was set at press time.
func (c *Controller) Cursor() Cursor { return c.cursor }

// Gesture reports whether a drag or resize is in progress, which is when the
// caller must keep pointer events flowing even outside the window bounds.
func (c *Controller) Gesture() bool { return c.state != stateIdle }

// AspectRatio returns the active content width/height constraint, 0 when no
// image is loaded.
func (c *Controller) AspectRatio() float64 { return c.aspect }

// ClearImage drops the aspect constraint; resizing becomes free-form.
func (c *Controller) ClearImage() { c.aspect = 0 }

// PointerPressed starts a gesture from a primary-button press at a global
// pointer position. An edge or corner hit starts a resize, anywhere else
// starts a move. Callers must not route other buttons here.
func (c *Controller) PointerPressed(global Point) {
	local := Point{X: global.X - c.geom.X, Y: global.Y - c.geom.Y}
	edge := ClassifyEdge(local, c.geom.Size(), c.opts.Margin)

	if edge != EdgeNone {
		c.state = stateResizing
		c.edge = edge
		c.anchorPointer = global
		c.anchorGeom = c.geom
		c.cursor = CursorFor(edge)
		return
	}

	c.state = stateDragging
	c.anchorPointer = global
	c.anchorOrigin = Point{X: c.geom.X, Y: c.geom.Y}
}

// PointerMoved updates the window geometry while a gesture is active, or
// just the hover cursor while idle.
func (c *Controller) PointerMoved(global Point) {
	switch c.state {
	case stateResizing:
		c.resizeTo(global)
	case stateDragging:
		c.geom.X = c.anchorOrigin.X + global.X - c.anchorPointer.X
		c.geom.Y = c.anchorOrigin.Y + global.Y - c.anchorPointer.Y
	default:
		local := Point{X: global.X - c.geom.X, Y: global.Y - c.geom.Y}
		c.cursor = CursorFor(ClassifyEdge(local, c.geom.Size(), c.opts.Margin))
	}
}

// PointerReleased ends the active gesture. It must be honored even when
// delivered outside the window, otherwise the state machine would be stuck.
func (c *Controller) PointerReleased() {
	c.state = stateIdle
	c.edge = EdgeNone
	c.cursor = CursorArrow
}

func (c *Controller) resizeTo(global Point) {
	dx := global.X - c.anchorPointer.X
	dy := global.Y - c.anchorPointer.Y

	geo := c.anchorGeom
	ng := geo

	// Unconstrained candidate: move only the edges in the mask.
	if c.edge.Has(EdgeLeft) {
		ng.SetLeft(geo.X + dx)
	} else if c.edge.Has(EdgeRight) {
		ng.SetRight(geo.Right() + dx)
	}
	if c.edge.Has(EdgeTop) {
		ng.SetTop(geo.Y + dy)
	} else if c.edge.Has(EdgeBottom) {
		ng.SetBottom(geo.Bottom() + dy)
	}

	if c.aspect > 0 {
		extent := c.chrome()

		switch c.edge {
		case EdgeLeft, EdgeRight:
			// Width drives height, top edge stays put.
			ng.SetHeight(c.heightForWidth(ng.W, extent))
		case EdgeTop, EdgeBottom:
			ng.SetWidth(c.widthForHeight(ng.H, extent))
		default:
			// Corner: pick the driving axis from the raw proposed deltas,
			// with the height delta projected into width units through the
			// ratio. Comparing post-constraint sizes instead would
			// oscillate.
			dw := abs(ng.W - geo.W)
			dh := abs(ng.H - geo.H)

			if float64(dw) > float64(dh)*c.aspect {
				nh := c.heightForWidth(ng.W, extent)
				if c.edge.Has(EdgeTop) {
					ng.SetTop(ng.Bottom() - nh + 1)
				} else {
					ng.SetHeight(nh)
				}
			} else {
				nw := c.widthForHeight(ng.H, extent)
				if c.edge.Has(EdgeLeft) {
					ng.SetLeft(ng.Right() - nw + 1)
				} else {
					ng.SetWidth(nw)
				}
			}
		}
	}

	// Size floor wins over the aspect ratio.
	if ng.W < c.opts.MinWidth {
		ng.SetWidth(c.opts.MinWidth)
	}
	if ng.H < c.opts.MinHeight {
		ng.SetHeight(c.opts.MinHeight)
	}

	c.geom = ng
}

// heightForWidth resolves the window height that keeps the content area at
// the aspect ratio for a proposed window width. Fractions truncate, the one
// rounding rule used throughout.
func (c *Controller) heightForWidth(w int, extent Extent) int {
	contentW := w - extent.W
	if contentW < 1 {
		contentW = 1
	}
	return int(float64(contentW)/c.aspect) + extent.H
}

func (c *Controller) widthForHeight(h int, extent Extent) int {
	contentH := h - extent.H
	if contentH < 1 {
		contentH = 1
	}
	return int(float64(contentH)*c.aspect) + extent.W
}

// ImageLoaded sets the aspect constraint from a freshly loaded image and
// fits the window to it: 1:1 when the image fits inside the screen fraction
// of the usable area, otherwise scaled down uniformly, then centered on the
// usable area. Callers must reject non-positive pixel dimensions before
// calling. A degenerate screen rect falls back to an unscaled, uncentered
// target size.
func (c *Controller) ImageLoaded(pixelW, pixelH int, screen Rect) {
	c.aspect = float64(pixelW) / float64(pixelH)
	extent := c.chrome()

	if screen.Empty() {
		c.geom.SetWidth(pixelW + extent.W)
		c.geom.SetHeight(pixelH + extent.H)
		return
	}

	bounds := Size{
		W: int(float64(screen.W)*c.opts.ScreenFraction) - extent.W,
		H: int(float64(screen.H)*c.opts.ScreenFraction) - extent.H,
	}
	fitted, _ := FitSize(Size{W: pixelW, H: pixelH}, bounds)

	w := fitted.W + extent.W
	h := fitted.H + extent.H
	c.geom = Rect{
		X: screen.X + (screen.W-w)/2,
		Y: screen.Y + (screen.H-h)/2,
		W: w,
		H: h,
	}
}

// ImageRotated recomputes the geometry after a 90-degree-multiple rotation:
// the content bounding box transposes, the window scales down if the
// transposed size no longer fits the usable screen, and the result is
// re-centered on the previous center. Only the top-left corner is clamped
// back onto the screen; the bottom-right intentionally is not.
func (c *Controller) ImageRotated(pixelW, pixelH int, screen Rect) {
	c.aspect = float64(pixelW) / float64(pixelH)
	extent := c.chrome()

	contentW := c.geom.W - extent.W
	if contentW < 1 {
		contentW = 1
	}
	contentH := c.geom.H - extent.H
	if contentH < 1 {
		contentH = 1
	}

	ng := Rect{
		W: contentH + extent.W,
		H: contentW + extent.H,
	}

	if !screen.Empty() && (ng.W > screen.W || ng.H > screen.H) {
		fitted, _ := FitSize(ng.Size(), screen.Size())
		ng.W, ng.H = fitted.W, fitted.H
	}

	ng.MoveCenter(c.geom.Center())

	if !screen.Empty() {
		if ng.X < screen.X {
			ng.X = screen.X
		}
		if ng.Y < screen.Y {
			ng.Y = screen.Y
		}
	}

	c.geom = ng
}
