// Package xwm glues the geometry controller to an X11 window: it owns the
// event loop, routes raw pointer events from the whole window surface into
// the one controller instance, applies the resulting geometry and cursor,
// and paints the chrome plus the image content.
package xwm

import (
	"context"
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"xoverlay/internal/bus"
	"xoverlay/internal/chrome"
	"xoverlay/internal/config"
	"xoverlay/internal/geometry"
	"xoverlay/internal/view"
)

// QWERTY keycodes, following the same convention as the quit key in the
// upstream event loops this is derived from.
const (
	keyQ     = 24 // quit
	keyR     = 27 // rotate clockwise
	keyMinus = 20 // opacity down
	keyEqual = 21 // opacity up
)

type Manager struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	wid    xproto.Window
	gc     xproto.Gcontext

	ctrl   *geometry.Controller
	chrome *chrome.Chrome
	cmds   *bus.Commands

	img     *view.Image
	opacity float64
	margin  int

	cursors map[geometry.Cursor]xproto.Cursor
	applied geometry.Cursor
	grabbed bool
	sliding bool
}

func NewManager(conn *xgb.Conn, cfg config.Config, cmds *bus.Commands) (*Manager, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)

	cursors, err := createCursors(conn)
	if err != nil {
		return nil, err
	}

	ch := chrome.New()

	initial := geometry.Rect{W: cfg.DefaultWidth, H: cfg.DefaultHeight}
	initial.MoveCenter(geometry.Rect{
		W: int(screen.WidthInPixels),
		H: int(screen.HeightInPixels),
	}.Center())

	ctrl := geometry.NewController(initial, ch.Extent, geometry.Options{
		Margin:         cfg.ResizeMargin,
		MinWidth:       cfg.MinWidth,
		MinHeight:      cfg.MinHeight,
		ScreenFraction: cfg.ScreenFraction,
	})

	wid, err := CreateWindow(conn, screen, initial, cursors[geometry.CursorArrow])
	if err != nil {
		return nil, err
	}

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		return nil, err
	}
	if err := xproto.CreateGCChecked(conn, gc, xproto.Drawable(wid),
		xproto.GcForeground, []uint32{screen.BlackPixel}).Check(); err != nil {
		return nil, err
	}

	return &Manager{
		conn:    conn,
		screen:  screen,
		wid:     wid,
		gc:      gc,
		ctrl:    ctrl,
		chrome:  ch,
		cmds:    cmds,
		opacity: cfg.Opacity,
		margin:  ctrl.Margin(),
		cursors: cursors,
		applied: geometry.CursorArrow,
	}, nil
}

// usableScreen is the area load and rotate recomputes fit into.
func (m *Manager) usableScreen() geometry.Rect {
	return geometry.Rect{
		W: int(m.screen.WidthInPixels),
		H: int(m.screen.HeightInPixels),
	}
}

// Serve runs the single-threaded event loop: X events and queued commands,
// strictly in arrival order. It returns nil when the viewer is closed.
func (m *Manager) Serve(ctx context.Context) error {
	eventC := make(chan any)
	go ReceiveEvents(ctx, m.conn, eventC)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-m.cmds.C:
			if quit := m.handleCommand(cmd); quit {
				return nil
			}
		case ev, ok := <-eventC:
			if !ok {
				return nil
			}
			if quit := m.handleEvent(ev); quit {
				return nil
			}
		}
	}
}

func (m *Manager) handleCommand(cmd bus.Command) (quit bool) {
	switch cmd := cmd.(type) {
	case bus.OpenCmd:
		if err := m.Open(cmd.Path); err != nil {
			slog.Error("Failed to open image", "path", cmd.Path, "error", err)
		}
	case bus.RotateCmd:
		m.rotate(cmd.Turns)
	case bus.OpacityCmd:
		m.setOpacity(cmd.Value)
	case bus.QuitCmd:
		slog.Debug("exit: quit command")
		return true
	}
	return false
}

func (m *Manager) handleEvent(ev any) (quit bool) {
	switch ev := ev.(type) {
	case xproto.ButtonPressEvent:
		if ev.Detail == xproto.ButtonIndex1 {
			m.buttonPress(ev)
		}
	case xproto.MotionNotifyEvent:
		m.motion(ev)
	case xproto.ButtonReleaseEvent:
		if ev.Detail == xproto.ButtonIndex1 {
			m.buttonRelease()
		}
	case xproto.KeyPressEvent:
		return m.keyPress(ev)
	case xproto.ExposeEvent:
		if ev.Count == 0 {
			m.paint()
		}
	case xproto.ConfigureNotifyEvent:
		m.ctrl.SetGeometry(geometry.Rect{
			X: int(ev.X), Y: int(ev.Y),
			W: int(ev.Width), H: int(ev.Height),
		})
	case xproto.DestroyNotifyEvent:
		slog.Debug("exit: destroy notify event")
		return true
	default:
		slog.Debug("unknown event", "event", ev)
	}
	return false
}

func (m *Manager) buttonPress(ev xproto.ButtonPressEvent) {
	local := geometry.Point{X: int(ev.EventX), Y: int(ev.EventY)}
	size := m.ctrl.Geometry().Size()

	// Edge bands win over chrome zones so resize works from the full
	// perimeter; interior presses go to the chrome first.
	if geometry.ClassifyEdge(local, size, m.margin) == geometry.EdgeNone {
		switch m.chrome.HitTest(local, size) {
		case chrome.RegionClose:
			m.cmds.C <- bus.QuitCmd{}
			return
		case chrome.RegionRotateCCW:
			m.rotate(-1)
			return
		case chrome.RegionRotateCW:
			m.rotate(1)
			return
		case chrome.RegionOpacity:
			m.sliding = true
			m.setOpacity(m.chrome.OpacityAt(local, size, view.MinOpacity, view.MaxOpacity))
			return
		}
	}

	m.ctrl.PointerPressed(geometry.Point{X: int(ev.RootX), Y: int(ev.RootY)})
	if m.ctrl.Gesture() {
		m.grabPointer()
		m.applyCursor()
	}
}

func (m *Manager) motion(ev xproto.MotionNotifyEvent) {
	if m.sliding {
		local := geometry.Point{X: int(ev.EventX), Y: int(ev.EventY)}
		m.setOpacity(m.chrome.OpacityAt(local, m.ctrl.Geometry().Size(), view.MinOpacity, view.MaxOpacity))
		return
	}

	m.ctrl.PointerMoved(geometry.Point{X: int(ev.RootX), Y: int(ev.RootY)})
	if m.ctrl.Gesture() {
		m.applyGeometry()
		m.paint()
		return
	}
	m.applyCursor()
}

func (m *Manager) buttonRelease() {
	m.sliding = false
	if m.ctrl.Gesture() {
		m.ctrl.PointerReleased()
		m.ungrabPointer()
	}
	m.applyCursor()
}

func (m *Manager) keyPress(ev xproto.KeyPressEvent) (quit bool) {
	switch ev.Detail {
	case keyQ:
		slog.Debug("exit: quit key pressed")
		return true
	case keyR:
		m.rotate(1)
	case keyMinus:
		m.setOpacity(m.opacity - 0.1)
	case keyEqual:
		m.setOpacity(m.opacity + 0.1)
	}
	return false
}

// Open loads an image file, fits the window to it and announces the load.
func (m *Manager) Open(path string) error {
	img, err := view.Load(path)
	if err != nil {
		return err
	}

	m.img = img
	size := img.Size()
	m.ctrl.ImageLoaded(size.W, size.H, m.usableScreen())
	m.applyGeometry()
	m.setTitle(img.Title)
	m.paint()

	slog.Info("Loaded image", "path", path, "id", img.ID, "width", size.W, "height", size.H)
	bus.Publish(bus.EventImageLoaded{
		ID:     img.ID,
		Title:  img.Title,
		Path:   path,
		Width:  size.W,
		Height: size.H,
	})
	return nil
}

func (m *Manager) rotate(turns int) {
	if m.img == nil {
		return
	}

	m.img.Rotate(turns)
	size := m.img.Size()
	m.ctrl.ImageRotated(size.W, size.H, m.usableScreen())
	m.applyGeometry()
	m.paint()

	bus.Publish(bus.EventImageRotated{ID: m.img.ID, Width: size.W, Height: size.H})
}

func (m *Manager) setOpacity(v float64) {
	v = view.ClampOpacity(v)
	if v == m.opacity {
		return
	}
	m.opacity = v
	m.paint()
	bus.Publish(bus.EventOpacityChanged{Value: v})
}

func (m *Manager) applyGeometry() {
	geom := m.ctrl.Geometry()
	if err := xproto.ConfigureWindowChecked(m.conn, m.wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(geom.X), uint32(geom.Y), uint32(geom.W), uint32(geom.H)}).Check(); err != nil {
		slog.Error("Failed to configure window", "error", err)
		return
	}
	bus.Publish(bus.EventGeometryChanged{X: geom.X, Y: geom.Y, Width: geom.W, Height: geom.H})
}

func (m *Manager) applyCursor() {
	shape := m.ctrl.Cursor()
	if shape == m.applied {
		return
	}
	m.applied = shape
	xproto.ChangeWindowAttributes(m.conn, m.wid,
		xproto.CwCursor, []uint32{uint32(m.cursors[shape])})
}

// grabPointer keeps move and release events flowing to this window while a
// gesture is active, even when the pointer leaves the window. Without it the
// state machine could be stranded mid-gesture.
func (m *Manager) grabPointer() {
	reply, err := xproto.GrabPointer(m.conn, true, m.wid,
		xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, m.cursors[m.ctrl.Cursor()], xproto.TimeCurrentTime).Reply()
	if err != nil {
		slog.Error("Failed to grab pointer", "error", err)
		return
	}
	m.grabbed = reply.Status == xproto.GrabStatusSuccess
}

func (m *Manager) ungrabPointer() {
	if !m.grabbed {
		return
	}
	m.grabbed = false
	xproto.UngrabPointer(m.conn, xproto.TimeCurrentTime)
}

func (m *Manager) setTitle(title string) {
	xproto.ChangeProperty(m.conn, xproto.PropModeReplace, m.wid,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title))
}
