//go:build !tinygo

package sim

import (
	"image/color"
	"testing"

	"emu5110/st7735"
)

var (
	black = color.RGBA{A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func setWindow(t *testing.T, p *Panel, c0, c1, r0, r1 uint16) {
	t.Helper()
	send := func(cmd byte, v0, v1 uint16) {
		if err := p.SendCommand(cmd); err != nil {
			t.Fatalf("SendCommand(%#02x) error = %v", cmd, err)
		}
		for _, b := range []byte{byte(v0 >> 8), byte(v0), byte(v1 >> 8), byte(v1)} {
			if err := p.SendData(b); err != nil {
				t.Fatalf("SendData() error = %v", err)
			}
		}
	}
	send(st7735.CASET, c0, c1)
	send(st7735.RASET, r0, r1)
	if err := p.SendCommand(st7735.RAMWR); err != nil {
		t.Fatalf("SendCommand(RAMWR) error = %v", err)
	}
}

func sendPair(t *testing.T, p *Panel, p1, p2 uint16) {
	t.Helper()
	bytes := []byte{
		byte(p1 >> 4),
		byte(p1&0x0F)<<4 | byte(p2>>8)&0x0F,
		byte(p2),
	}
	for _, b := range bytes {
		if err := p.SendData(b); err != nil {
			t.Fatalf("SendData() error = %v", err)
		}
	}
}

func TestPanelDecodesPixelPair(t *testing.T) {
	p := NewPanel(nil)

	// RAM column 24, row 41 is glass pixel (22, 40).
	setWindow(t, p, 24, 107, 41, 88)
	sendPair(t, p, 0x000, 0xFFF)

	if got := p.At(22, 40); got != black {
		t.Fatalf("At(22, 40) = %v, want %v", got, black)
	}
	if got := p.At(23, 40); got != white {
		t.Fatalf("At(23, 40) = %v, want %v", got, white)
	}
}

func TestPanelWriteCursorWraps(t *testing.T) {
	p := NewPanel(nil)

	// A two-column window: the third pixel wraps to the next row, and
	// pixels past the row end are dropped.
	setWindow(t, p, 10, 11, 5, 6)
	sendPair(t, p, 0x000, 0x000)
	sendPair(t, p, 0x000, 0xFFF)
	sendPair(t, p, 0x000, 0x000) // dropped

	for _, tc := range []struct {
		x, y int
		want color.RGBA
	}{
		{8, 4, black},
		{9, 4, black},
		{8, 5, black},
		{9, 5, white},
		{8, 6, color.RGBA{}},
	} {
		if got := p.At(tc.x, tc.y); got != tc.want {
			t.Fatalf("At(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPanelRGB444Scaling(t *testing.T) {
	p := NewPanel(nil)

	setWindow(t, p, 2, 3, 1, 1)
	sendPair(t, p, 0xF00, 0x0F0)

	if got := (color.RGBA{R: 0xFF, A: 0xFF}); p.At(0, 0) != got {
		t.Fatalf("At(0, 0) = %v, want %v", p.At(0, 0), got)
	}
	if got := (color.RGBA{G: 0xFF, A: 0xFF}); p.At(1, 0) != got {
		t.Fatalf("At(1, 0) = %v, want %v", p.At(1, 0), got)
	}
}

type countLogger struct {
	lines []string
}

func (l *countLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *countLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestPanelLogsUnknownCommand(t *testing.T) {
	log := &countLogger{}
	p := NewPanel(log)

	if err := p.SendCommand(st7735.SLPOUT); err != nil {
		t.Fatalf("SendCommand(SLPOUT) error = %v", err)
	}
	if len(log.lines) != 0 {
		t.Fatalf("bring-up command logged: %q", log.lines)
	}
	if err := p.SendCommand(0xAB); err != nil {
		t.Fatalf("SendCommand(0xAB) error = %v", err)
	}
	if len(log.lines) != 1 {
		t.Fatalf("unknown command produced %d log lines, want 1", len(log.lines))
	}
}
