package xwm

import (
	"image/color"

	"github.com/jezek/xgb/xproto"

	"xoverlay/internal/geometry"
)

// glassBackground is what the image blends against, the dark fill of the
// content area.
var glassBackground = color.NRGBA{R: 0x30, G: 0x30, B: 0x30}

// putImageMaxBytes keeps each PutImage under the core protocol request size
// limit without negotiating big-requests.
const putImageMaxBytes = 196608

// paint redraws the whole window: chrome bars and border, then the scaled
// image blended into the content area.
func (m *Manager) paint() {
	size := m.ctrl.Geometry().Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}

	buf := make([]byte, size.W*size.H*4)
	m.chrome.Paint(buf, size, m.opacity)

	if m.img != nil {
		content := m.chrome.ContentRect(size)
		if content.W > 0 && content.H > 0 {
			frame := m.img.Render(content.Size(), m.opacity, glassBackground)
			blit(buf, size, frame, content)
		}
	}

	m.putImage(buf, size)
}

// blit copies a content-sized BGRX frame into the window buffer at the
// content rectangle.
func blit(dst []byte, dstSize geometry.Size, src []byte, at geometry.Rect) {
	rowBytes := at.W * 4
	for y := 0; y < at.H; y++ {
		di := ((at.Y+y)*dstSize.W + at.X) * 4
		si := y * rowBytes
		copy(dst[di:di+rowBytes], src[si:si+rowBytes])
	}
}

// putImage uploads the frame in row chunks that fit a core protocol request.
func (m *Manager) putImage(buf []byte, size geometry.Size) {
	rowBytes := size.W * 4
	rowsPerChunk := putImageMaxBytes / rowBytes
	if rowsPerChunk < 1 {
		rowsPerChunk = 1
	}

	for y := 0; y < size.H; y += rowsPerChunk {
		rows := rowsPerChunk
		if y+rows > size.H {
			rows = size.H - y
		}
		xproto.PutImage(m.conn, xproto.ImageFormatZPixmap,
			xproto.Drawable(m.wid), m.gc,
			uint16(size.W), uint16(rows),
			0, int16(y),
			0, m.screen.RootDepth,
			buf[y*rowBytes:(y+rows)*rowBytes])
	}
}
