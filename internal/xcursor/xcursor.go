// Package xcursor creates glyph cursors from the standard X cursor font.
// Derived from github.com/BurntSushi/xgbutil/xcursor, trimmed to the shapes
// the viewer actually shows.
package xcursor

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"xoverlay/internal/geometry"
)

// Cursor font glyph ids.
const (
	LeftPtr           = 68
	SBHDoubleArrow    = 108
	SBVDoubleArrow    = 116
	BottomLeftCorner  = 12
	BottomRightCorner = 14
	Fleur             = 52
)

// Glyph maps a controller cursor shape to its cursor font glyph.
func Glyph(c geometry.Cursor) uint16 {
	switch c {
	case geometry.CursorSizeH:
		return SBHDoubleArrow
	case geometry.CursorSizeV:
		return SBVDoubleArrow
	case geometry.CursorSizeFDiag:
		// "\" diagonal: the font has no dedicated glyph pair, the
		// bottom-right corner arrow reads correctly on both ends.
		return BottomRightCorner
	case geometry.CursorSizeBDiag:
		return BottomLeftCorner
	default:
		return LeftPtr
	}
}

func CreateCursor(conn *xgb.Conn, glyph uint16) (xproto.Cursor, error) {
	fontID, err := xproto.NewFontId(conn)
	if err != nil {
		return 0, err
	}

	cursorID, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, err
	}

	if err := xproto.OpenFontChecked(conn, fontID,
		uint16(len("cursor")), "cursor").Check(); err != nil {
		return 0, err
	}

	// Mask glyph is the next font entry; black on white.
	if err := xproto.CreateGlyphCursorChecked(conn, cursorID, fontID, fontID,
		glyph, glyph+1,
		0, 0, 0,
		0xffff, 0xffff, 0xffff).Check(); err != nil {
		return 0, err
	}

	if err := xproto.CloseFontChecked(conn, fontID).Check(); err != nil {
		return 0, err
	}

	return cursorID, nil
}
