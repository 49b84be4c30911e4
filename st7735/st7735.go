// Package st7735 drives an ST7735 color panel as the backing canvas for a
// small monochrome display: a movable addressing window plus a pixel codec
// that streams 1-bit samples in the controller's RGB444 wire format.
package st7735

import (
	"errors"
	"fmt"
	"time"

	"emu5110/hal"
)

var (
	// ErrOddWidth reports a window width the codec cannot stream: two
	// pixels travel per three wire bytes, so widths must be even.
	ErrOddWidth = errors.New("st7735: window width must be even")

	// ErrWindowBounds reports a window that does not fit the panel.
	ErrWindowBounds = errors.New("st7735: window outside panel bounds")

	// ErrCursorBounds reports a cursor position outside the panel.
	ErrCursorBounds = errors.New("st7735: cursor outside panel bounds")

	// ErrShortBuffer reports a pixel buffer too small for the window.
	ErrShortBuffer = errors.New("st7735: pixel buffer too small for window")
)

// Config holds the geometry of the logical rectangle emulated on the
// panel. ResetWindow centers this rectangle on the glass.
type Config struct {
	Width  int // defaults to 84
	Height int // defaults to 48
}

// Device is one display session: the transport, the placement of the
// logical rectangle, and the retained window and cursor state. It is
// single-owner; the transport is serial and nothing here locks.
type Device struct {
	tr hal.Transport

	logicalW int
	logicalH int

	originX int // placement of the logical rectangle on the glass
	originY int
	cursorX int // cursor within the logical rectangle, in pixels
	cursorY int
	width   int // retained window size, consumed by the codec
	height  int
}

// New returns a Device talking through tr, with the default 84x48
// logical rectangle. Configure must run before anything is drawn.
func New(tr hal.Transport) *Device {
	return &Device{
		tr:       tr,
		logicalW: 84,
		logicalH: 48,
	}
}

// bring-up register sequence for the CFAF128128B glass, taken from the
// panel vendor's reference values. A zero delay means none.
var initSequence = []struct {
	cmd   byte
	data  []byte
	delay time.Duration
}{
	{SLPOUT, nil, 120 * time.Millisecond},
	{FRMCTR1, []byte{0x01, 0x2C, 0x2D}, 0},
	{FRMCTR2, []byte{0x01, 0x2C, 0x2D}, 0},
	{FRMCTR3, []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}, 0},
	{INVCTR, []byte{0x07}, 0},
	{PWCTR1, []byte{0x02, 0x02}, 0},
	{PWCTR2, []byte{0xC5}, 0},
	{PWCTR3, []byte{0x0D, 0x00}, 0},
	{PWCTR4, []byte{0x8D, 0x1A}, 0},
	{PWCTR5, []byte{0x8D, 0xEE}, 0},
	{VMCTR1, []byte{0x51, 0x4D}, 0},
	{GAMCTRP1, []byte{
		0x0A, 0x1C, 0x0C, 0x14, 0x33, 0x2B, 0x24, 0x28,
		0x27, 0x25, 0x2C, 0x39, 0x00, 0x05, 0x03, 0x0D,
	}, 0},
	{GAMCTRN1, []byte{
		0x0A, 0x1C, 0x0C, 0x14, 0x33, 0x2B, 0x24, 0x28,
		0x27, 0x25, 0x2D, 0x3A, 0x00, 0x05, 0x03, 0x0D,
	}, 0},
	{COLMOD, []byte{0x06}, 0}, // 18bpp while the display turns on
	{DISPON, nil, time.Millisecond},
	{MADCTL, []byte{0xC0}, 0}, // MY|MX, top-left origin
	{COLMOD, []byte{0x03}, 0}, // RGB444, two pixels per three bytes
}

// Configure runs the panel power-up register sequence and records the
// logical rectangle geometry. The transport must already have pulsed the
// hardware reset line.
func (d *Device) Configure(cfg Config) error {
	if cfg.Width == 0 {
		cfg.Width = 84
	}
	if cfg.Height == 0 {
		cfg.Height = 48
	}
	if cfg.Width%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddWidth, cfg.Width)
	}
	if cfg.Width < 2 || cfg.Height < 1 || cfg.Width > PanelWidth || cfg.Height > PanelHeight {
		return fmt.Errorf("%w: %dx%d", ErrWindowBounds, cfg.Width, cfg.Height)
	}
	d.logicalW = cfg.Width
	d.logicalH = cfg.Height

	for _, s := range initSequence {
		if err := d.cmd(s.cmd, s.data...); err != nil {
			return fmt.Errorf("bring-up %#02x: %w", s.cmd, err)
		}
		if s.delay > 0 {
			d.tr.Delay(s.delay)
		}
	}
	return nil
}

func (d *Device) cmd(cmd byte, data ...byte) error {
	if err := d.tr.SendCommand(cmd); err != nil {
		return err
	}
	for _, b := range data {
		if err := d.tr.SendData(b); err != nil {
			return err
		}
	}
	return nil
}

// Window returns the retained window dimensions.
func (d *Device) Window() (w, h int) {
	return d.width, d.height
}

// Cursor returns the cursor position within the logical rectangle.
func (d *Device) Cursor() (x, y int) {
	return d.cursorX, d.cursorY
}

// MoveTo places the cursor. The position is where the next SetWindow
// anchors its rectangle.
func (d *Device) MoveTo(x, y int) error {
	if x < 0 || x >= PanelWidth || y < 0 || y >= PanelHeight {
		return fmt.Errorf("%w: (%d,%d)", ErrCursorBounds, x, y)
	}
	d.cursorX = x
	d.cursorY = y
	return nil
}

// SetWindow narrows the addressable window to w x h anchored at the
// cursor and issues the addressing commands. The next data bytes land in
// this rectangle.
func (d *Device) SetWindow(w, h int) error {
	if w%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddWidth, w)
	}
	xs := d.originX + d.cursorX
	ys := d.originY + d.cursorY
	if w < 2 || h < 1 || xs+w > PanelWidth || ys+h > PanelHeight {
		return fmt.Errorf("%w: %dx%d at (%d,%d)", ErrWindowBounds, w, h, xs, ys)
	}
	d.width = w
	d.height = h

	x0 := uint16(xs + ColumnOffset)
	x1 := uint16(xs + w - 1 + ColumnOffset)
	y0 := uint16(ys + RowOffset)
	y1 := uint16(ys + h - 1 + RowOffset)

	if err := d.cmd(CASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	if err := d.cmd(RASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return err
	}
	return d.tr.SendCommand(RAMWR)
}

// RestoreWindow restores previously retained window dimensions after a
// temporary narrow, without re-issuing addressing commands. The next
// SetWindow or ResetWindow re-addresses the panel.
func (d *Device) RestoreWindow(w, h int) error {
	if w%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddWidth, w)
	}
	d.width = w
	d.height = h
	return nil
}

// ResetWindow homes the cursor, recenters the logical rectangle on the
// glass and re-addresses the full rectangle.
func (d *Device) ResetWindow() error {
	d.cursorX = 0
	d.cursorY = 0
	d.originX = (PanelWidth - d.logicalW) / 2
	d.originY = (PanelHeight - d.logicalH) / 2
	return d.SetWindow(d.logicalW, d.logicalH)
}

// TestPattern addresses the whole glass and fills it with an RGB
// gradient, the bring-up splash behind the emulation window.
func (d *Device) TestPattern() error {
	d.cursorX = 0
	d.cursorY = 0
	d.originX = 0
	d.originY = 0
	if err := d.SetWindow(PanelWidth, PanelHeight); err != nil {
		return err
	}
	for i := 0; i < PanelWidth*PanelHeight/2; i++ {
		for _, b := range []byte{byte(i), ^byte(i), byte(i / 64)} {
			if err := d.tr.SendData(b); err != nil {
				return fmt.Errorf("test pattern: %w", err)
			}
		}
	}
	return nil
}
