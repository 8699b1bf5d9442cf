package geometry

// Edge is a bitmask over the window edges a pointer position is considered
// on. A corner is the union of one horizontal and one vertical flag.
type Edge uint8

const EdgeNone Edge = 0

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) Has(flag Edge) bool { return e&flag != 0 }

func (e Edge) String() string {
	if e == EdgeNone {
		return "none"
	}
	s := ""
	if e.Has(EdgeTop) {
		s += "top "
	}
	if e.Has(EdgeBottom) {
		s += "bottom "
	}
	if e.Has(EdgeLeft) {
		s += "left "
	}
	if e.Has(EdgeRight) {
		s += "right "
	}
	return s[:len(s)-1]
}

// ClassifyEdge hit-tests a window-local pointer position against the resize
// margin. Left wins over Right and Top over Bottom when the window is
// narrower or shorter than twice the margin, so the mask never carries both
// flags of one axis.
func ClassifyEdge(p Point, s Size, margin int) Edge {
	var e Edge
	if p.X < margin {
		e |= EdgeLeft
	} else if p.X > s.W-margin {
		e |= EdgeRight
	}
	if p.Y < margin {
		e |= EdgeTop
	} else if p.Y > s.H-margin {
		e |= EdgeBottom
	}
	return e
}

// Cursor is the pointer shape the window should show.
type Cursor uint8

const (
	CursorArrow Cursor = iota
	CursorSizeH
	CursorSizeV
	// CursorSizeFDiag points along the "\" diagonal (top-left / bottom-right).
	CursorSizeFDiag
	// CursorSizeBDiag points along the "/" diagonal (top-right / bottom-left).
	CursorSizeBDiag
)

// CursorFor maps an edge mask to the resize cursor shown while hovering.
func CursorFor(e Edge) Cursor {
	switch e {
	case EdgeLeft, EdgeRight:
		return CursorSizeH
	case EdgeTop, EdgeBottom:
		return CursorSizeV
	case EdgeTop | EdgeLeft, EdgeBottom | EdgeRight:
		return CursorSizeFDiag
	case EdgeTop | EdgeRight, EdgeBottom | EdgeLeft:
		return CursorSizeBDiag
	default:
		return CursorArrow
	}
}
