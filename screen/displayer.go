package screen

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer adapts a Buffer to the tinygo drivers Displayer contract so
// font and widget code from that ecosystem can draw into the 1bpp store.
// A color with any nonzero channel is ink (pixel on); pure black clears.
// The FillRectangle/SetScroll/SetRotation extensions match what terminal
// packages built on drivers expect.
type Displayer struct {
	buf   *Buffer
	flush func() error
}

var _ drivers.Displayer = (*Displayer)(nil)

// NewDisplayer wraps buf. flush, if non-nil, runs on Display and is meant
// to push the buffer to the panel.
func NewDisplayer(buf *Buffer, flush func() error) *Displayer {
	return &Displayer{buf: buf, flush: flush}
}

func (d *Displayer) Size() (x, y int16) {
	return int16(d.buf.w), int16(d.buf.h)
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	// Out-of-range writes are dropped, per the drivers contract.
	_ = d.buf.Set(int(x), int(y), ink(c))
}

func (d *Displayer) Display() error {
	if d.flush == nil {
		return nil
	}
	return d.flush()
}

func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, d.buf.w)
	y0 := clampInt(int(y), 0, d.buf.h)
	x1 := clampInt(int(x)+int(width), 0, d.buf.w)
	y1 := clampInt(int(y)+int(height), 0, d.buf.h)
	on := ink(c)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			_ = d.buf.Set(px, py, on)
		}
	}
	return nil
}

// SetScroll is a no-op: the buffer has no hardware scroll.
func (d *Displayer) SetScroll(line int16) {
	_ = line
}

// SetRotation is a no-op: the emulated screen has one orientation.
func (d *Displayer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func ink(c color.RGBA) bool {
	return c.R|c.G|c.B != 0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
