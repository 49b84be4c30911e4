package nokia

import (
	"errors"
	"testing"
)

func TestGlyphKnownCell(t *testing.T) {
	g, err := Glyph('A')
	if err != nil {
		t.Fatalf("Glyph('A') error = %v", err)
	}
	want := [6]byte{0x7E, 0x11, 0x11, 0x11, 0x7E, 0x00}
	if g != want {
		t.Fatalf("Glyph('A') = %#v, want %#v", g, want)
	}
}

func TestGlyphBlankColumn(t *testing.T) {
	for c := 0x20; c <= 0x7F; c++ {
		g, err := Glyph(byte(c))
		if err != nil {
			t.Fatalf("Glyph(%#02x) error = %v", c, err)
		}
		if g[5] != 0 {
			t.Fatalf("Glyph(%#02x) separator column = %#02x, want 0", c, g[5])
		}
	}
}

func TestGlyphOutOfRange(t *testing.T) {
	for _, c := range []byte{0x00, 0x1F, 0x80, 0xFF} {
		if _, err := Glyph(c); !errors.Is(err, ErrUnsupportedChar) {
			t.Fatalf("Glyph(%#02x) error = %v, want ErrUnsupportedChar", c, err)
		}
	}
}
