package screen

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	inkColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	bgColor  = color.RGBA{A: 0xFF}
)

func TestDisplayerSetPixel(t *testing.T) {
	b := NewBuffer(84, 48)
	d := NewDisplayer(b, nil)

	if x, y := d.Size(); x != 84 || y != 48 {
		t.Fatalf("Size() = %dx%d, want 84x48", x, y)
	}

	d.SetPixel(3, 5, inkColor)
	if on, _ := b.Get(3, 5); !on {
		t.Fatalf("pixel (3,5) = off after ink SetPixel, want on")
	}
	d.SetPixel(3, 5, bgColor)
	if on, _ := b.Get(3, 5); on {
		t.Fatalf("pixel (3,5) = on after background SetPixel, want off")
	}

	// Out-of-range writes are dropped.
	d.SetPixel(-1, 0, inkColor)
	d.SetPixel(84, 48, inkColor)
}

func TestDisplayerFillRectangle(t *testing.T) {
	b := NewBuffer(84, 48)
	d := NewDisplayer(b, nil)

	if err := d.FillRectangle(2, 2, 4, 4, inkColor); err != nil {
		t.Fatalf("FillRectangle() error = %v", err)
	}
	for y := 0; y < 48; y++ {
		for x := 0; x < 84; x++ {
			want := x >= 2 && x < 6 && y >= 2 && y < 6
			if on, _ := b.Get(x, y); on != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, on, want)
			}
		}
	}

	// Oversized rectangles clamp instead of failing.
	if err := d.FillRectangle(-10, -10, 200, 200, bgColor); err != nil {
		t.Fatalf("FillRectangle(oversized) error = %v", err)
	}
	for i, v := range b.Bytes() {
		if v != 0 {
			t.Fatalf("Bytes()[%d] = %#02x after clamped clear, want 0", i, v)
		}
	}
}

func TestDisplayerFlush(t *testing.T) {
	b := NewBuffer(84, 48)
	flushed := 0
	d := NewDisplayer(b, func() error { flushed++; return nil })

	if err := d.Display(); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	if flushed != 1 {
		t.Fatalf("flush ran %d times, want 1", flushed)
	}
}

func TestDisplayerDrawsFont(t *testing.T) {
	b := NewBuffer(84, 48)
	d := NewDisplayer(b, nil)

	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 0, 10, "Hi", inkColor)

	set := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 84; x++ {
			if on, _ := b.Get(x, y); on {
				set++
			}
		}
	}
	if set == 0 {
		t.Fatalf("no pixels set after tinyfont.WriteLine")
	}
}
