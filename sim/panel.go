//go:build !tinygo

// Package sim is a software ST7735: a hal.Transport that decodes the
// command stream into pixels. It backs the desktop window and the
// end-to-end tests.
package sim

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"time"

	"emu5110/hal"
	"emu5110/st7735"
)

// Panel models the controller's addressing state and the visible glass.
// The mutex only exists because the desktop draw loop reads the image
// from another goroutine; the transport itself is serial.
type Panel struct {
	mu sync.Mutex

	cmd    byte
	params []byte

	colStart, colEnd uint16
	rowStart, rowEnd uint16
	col, row         uint16

	// Three wire bytes carry two RGB444 pixels.
	acc  [3]byte
	accN int

	img *image.RGBA
	log hal.Logger
}

// NewPanel returns a blank panel. log may be nil; when set, unrecognized
// commands are reported through it.
func NewPanel(log hal.Logger) *Panel {
	return &Panel{
		params: make([]byte, 0, 4),
		colEnd: st7735.PanelWidth + st7735.ColumnOffset - 1,
		rowEnd: st7735.PanelHeight + st7735.RowOffset - 1,
		img:    image.NewRGBA(image.Rect(0, 0, st7735.PanelWidth, st7735.PanelHeight)),
		log:    log,
	}
}

func (p *Panel) SendCommand(b byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cmd = b
	p.params = p.params[:0]
	p.accN = 0

	switch b {
	case st7735.CASET, st7735.RASET:
	case st7735.RAMWR:
		p.col = p.colStart
		p.row = p.rowStart
	case st7735.SLPOUT, st7735.DISPON, st7735.MADCTL, st7735.COLMOD,
		st7735.FRMCTR1, st7735.FRMCTR2, st7735.FRMCTR3, st7735.INVCTR,
		st7735.PWCTR1, st7735.PWCTR2, st7735.PWCTR3, st7735.PWCTR4, st7735.PWCTR5,
		st7735.VMCTR1, st7735.GAMCTRP1, st7735.GAMCTRN1:
		// Bring-up commands change nothing the simulation renders.
	default:
		if p.log != nil {
			p.log.WriteLineString(fmt.Sprintf("sim: unknown command %#02x", b))
		}
	}
	return nil
}

func (p *Panel) SendData(b byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.cmd {
	case st7735.CASET:
		p.params = append(p.params, b)
		if len(p.params) == 4 {
			p.colStart = be16(p.params[0], p.params[1])
			p.colEnd = be16(p.params[2], p.params[3])
		}
	case st7735.RASET:
		p.params = append(p.params, b)
		if len(p.params) == 4 {
			p.rowStart = be16(p.params[0], p.params[1])
			p.rowEnd = be16(p.params[2], p.params[3])
		}
	case st7735.RAMWR:
		p.acc[p.accN] = b
		p.accN++
		if p.accN == 3 {
			p.accN = 0
			p1 := uint16(p.acc[0])<<4 | uint16(p.acc[1])>>4
			p2 := uint16(p.acc[1]&0x0F)<<8 | uint16(p.acc[2])
			p.plot(p1)
			p.plot(p2)
		}
	default:
		// Parameters to bring-up commands.
	}
	return nil
}

func (p *Panel) Delay(d time.Duration) {
	_ = d
}

// plot writes one RGB444 pixel at the write cursor and advances it with
// the controller's wrap rule: past the column end the cursor returns to
// the column start one row down; past the row end writes are dropped.
func (p *Panel) plot(rgb444 uint16) {
	if p.row > p.rowEnd || p.col > p.colEnd {
		return
	}
	x := int(p.col) - st7735.ColumnOffset
	y := int(p.row) - st7735.RowOffset
	if x >= 0 && x < st7735.PanelWidth && y >= 0 && y < st7735.PanelHeight {
		p.img.SetRGBA(x, y, rgba(rgb444))
	}
	p.col++
	if p.col > p.colEnd {
		p.col = p.colStart
		p.row++
	}
}

func be16(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

func rgba(p uint16) color.RGBA {
	scale := func(v uint16) uint8 { return uint8(v * 255 / 15) }
	return color.RGBA{
		R: scale(p >> 8 & 0xF),
		G: scale(p >> 4 & 0xF),
		B: scale(p & 0xF),
		A: 0xFF,
	}
}

// At returns the glass pixel at (x, y).
func (p *Panel) At(x, y int) color.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.img.RGBAAt(x, y)
}

// Image returns a snapshot of the glass.
func (p *Panel) Image() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap := image.NewRGBA(p.img.Rect)
	copy(snap.Pix, p.img.Pix)
	return snap
}

// WritePNG writes a snapshot of the glass as PNG.
func (p *Panel) WritePNG(w io.Writer) error {
	return png.Encode(w, p.Image())
}
