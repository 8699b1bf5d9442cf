package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"xoverlay/internal/geometry"
	"xoverlay/internal/xcursor"
)

const backgroundPixel = 0xf0f0f0

var eventMask = uint32(xproto.EventMaskStructureNotify |
	xproto.EventMaskExposure |
	xproto.EventMaskKeyPress |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion)

// CreateWindow creates the frameless viewer window at the given rectangle.
// Override-redirect keeps the window manager from decorating or moving it;
// all geometry authority stays with the controller.
func CreateWindow(conn *xgb.Conn, screen *xproto.ScreenInfo, geom geometry.Rect, cursor xproto.Cursor) (xproto.Window, error) {
	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, err
	}

	if err := xproto.CreateWindowChecked(conn, screen.RootDepth,
		wid, screen.Root,
		int16(geom.X), int16(geom.Y), uint16(geom.W), uint16(geom.H), 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask|xproto.CwCursor, // 1, 2, 3, 4
		[]uint32{
			backgroundPixel, // 1
			1,               // 2
			eventMask,       // 3
			uint32(cursor),  // 4
		}).Check(); err != nil {
		return 0, err
	}

	if err := xproto.MapWindowChecked(conn, wid).Check(); err != nil {
		return 0, err
	}

	return wid, nil
}

// createCursors makes one glyph cursor per controller shape up front so
// hover feedback never creates server resources mid-gesture.
func createCursors(conn *xgb.Conn) (map[geometry.Cursor]xproto.Cursor, error) {
	shapes := []geometry.Cursor{
		geometry.CursorArrow,
		geometry.CursorSizeH,
		geometry.CursorSizeV,
		geometry.CursorSizeFDiag,
		geometry.CursorSizeBDiag,
	}

	cursors := make(map[geometry.Cursor]xproto.Cursor, len(shapes))
	for _, shape := range shapes {
		cursor, err := xcursor.CreateCursor(conn, xcursor.Glyph(shape))
		if err != nil {
			return nil, err
		}
		cursors[shape] = cursor
	}
	return cursors, nil
}
