// Package nokia emulates the 1bpp 84x48 Nokia 5110 LCD on an ST7735
// color panel. It keeps the classic driver surface: a text cursor that
// wraps through fourteen 6x8 character cells per row, a 504-byte screen
// buffer flushed as one image, and the legacy 4-bit grayscale bitmap
// importer.
package nokia

import (
	"fmt"

	"emu5110/hal"
	"emu5110/screen"
	"emu5110/st7735"
)

// Character cell geometry, including the trailing blank column.
const (
	CharWidth  = 6
	CharHeight = 8
)

// Emulated screen geometry.
const (
	ScreenWidth  = 84
	ScreenHeight = 48
)

// Device is one emulated display session. It owns the panel driver, the
// screen buffer and the text cursor; nothing is global.
type Device struct {
	panel *st7735.Device
	buf   *screen.Buffer
}

// New returns a Device talking through tr. Call Init before drawing.
func New(tr hal.Transport) *Device {
	return &Device{
		panel: st7735.New(tr),
		buf:   screen.NewBuffer(ScreenWidth, ScreenHeight),
	}
}

// Init brings up the panel, paints the RGB splash across the full glass,
// draws the emulator labels above the emulation window and clears it.
func (d *Device) Init() error {
	if err := d.panel.Configure(st7735.Config{Width: ScreenWidth, Height: ScreenHeight}); err != nil {
		return fmt.Errorf("nokia: configure panel: %w", err)
	}
	if err := d.panel.TestPattern(); err != nil {
		return fmt.Errorf("nokia: splash: %w", err)
	}

	// The labels sit two and three text rows above the centered window.
	// The window addressing still spans the full glass here, so the
	// cursor moves in panel coordinates.
	top := (st7735.PanelHeight - ScreenHeight) / 2
	for _, label := range []struct {
		s string
		y int
	}{
		{" Nokia 5110 ", top - 3*CharHeight},
		{" Emulator ", top - 2*CharHeight},
	} {
		if err := d.panel.MoveTo((st7735.PanelWidth-len(label.s)*CharWidth)/2, label.y); err != nil {
			return fmt.Errorf("nokia: place label: %w", err)
		}
		if err := d.OutString(label.s); err != nil {
			return fmt.Errorf("nokia: draw label: %w", err)
		}
	}

	return d.Clear()
}

// OutChar prints one character at the cursor and advances it, wrapping to
// the next row at the window's right edge and back to the top row past
// the bottom (the display overwrites, it does not scroll).
func (d *Device) OutChar(c byte) error {
	g, err := Glyph(c)
	if err != nil {
		return err
	}

	w, h := d.panel.Window()
	if err := d.panel.SetWindow(CharWidth, CharHeight); err != nil {
		return err
	}
	if err := d.panel.StreamBits(g[:]); err != nil {
		return err
	}
	if err := d.panel.RestoreWindow(w, h); err != nil {
		return err
	}

	x, y := d.panel.Cursor()
	x += CharWidth
	if x+CharWidth > w {
		x = 0
		y += CharHeight
		if y+CharHeight > h {
			y = 0
		}
	}
	return d.panel.MoveTo(x, y)
}

// OutString prints s with automatic wrapping. Characters outside the
// printable range abort with ErrUnsupportedChar.
func (d *Device) OutString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := d.OutChar(s[i]); err != nil {
			return fmt.Errorf("char %d of %q: %w", i, s, err)
		}
	}
	return nil
}

// OutUDec prints n as five right-justified decimal digits.
func (d *Device) OutUDec(n uint16) error {
	return d.OutString(fmt.Sprintf("%5d", n))
}

// SetCursor moves the text cursor to character cell (cx, cy); cell (0,0)
// is the top left. Each axis is validated and applied independently: an
// out-of-range axis leaves that axis unchanged.
func (d *Device) SetCursor(cx, cy int) {
	x, y := d.panel.Cursor()
	if cx >= 0 && cx*CharWidth+CharWidth <= ScreenWidth {
		x = cx * CharWidth
	}
	if cy >= 0 && cy*CharHeight+CharHeight <= ScreenHeight {
		y = cy * CharHeight
	}
	_ = d.panel.MoveTo(x, y)
}

// Cursor returns the text cursor position in pixels.
func (d *Device) Cursor() (x, y int) {
	return d.panel.Cursor()
}

// Clear fills the emulation window with background pixels and homes the
// cursor.
func (d *Device) Clear() error {
	if err := d.panel.ResetWindow(); err != nil {
		return err
	}
	return d.panel.FillWindow()
}

// DrawFullImage paints a full 84x48 1bpp image (504 bytes, band layout)
// over the emulation window.
func (d *Device) DrawFullImage(bits []byte) error {
	if err := d.panel.ResetWindow(); err != nil {
		return err
	}
	return d.panel.StreamBits(bits)
}

// PrintBMP decodes a legacy 4-bit grayscale bitmap into the screen
// buffer with its bottom-left corner at (xpos, ypos). The image appears
// on the next DisplayBuffer call.
func (d *Device) PrintBMP(xpos, ypos int, bmp []byte, threshold uint8) error {
	return d.buf.ImportBitmap(xpos, ypos, bmp, threshold)
}

// ClearBuffer clears the screen buffer without touching the panel.
func (d *Device) ClearBuffer() {
	d.buf.Clear()
}

// DisplayBuffer flushes the screen buffer to the panel.
func (d *Device) DisplayBuffer() error {
	return d.DrawFullImage(d.buf.Bytes())
}

// Screen returns the owned screen buffer for direct pixel access.
func (d *Device) Screen() *screen.Buffer {
	return d.buf
}

// Displayer returns a drivers-style adapter over the screen buffer whose
// Display call flushes through DisplayBuffer.
func (d *Device) Displayer() *screen.Displayer {
	return screen.NewDisplayer(d.buf, d.DisplayBuffer)
}
