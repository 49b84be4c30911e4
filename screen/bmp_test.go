package screen

import (
	"errors"
	"testing"
)

// makeBMP builds a legacy 4bpp bitmap: 26-byte header followed by rows of
// nibble pairs, bottom row first, each row padded to a 4-byte boundary.
func makeBMP(width, height int, rows [][]byte) []byte {
	bmp := make([]byte, bmpHeaderMin)
	bmp[bmpDataOffset] = bmpHeaderMin
	bmp[bmpWidthOffset] = byte(width)
	bmp[bmpHeightOffset] = byte(height)
	pad := (4 - (width/2)%4) % 4
	for i, row := range rows {
		bmp = append(bmp, row...)
		if i < len(rows)-1 {
			// Sentinel padding: misreading it as pixel data turns pixels on.
			for k := 0; k < pad; k++ {
				bmp = append(bmp, 0xFF)
			}
		}
	}
	return bmp
}

func TestImportBitmapPaddingSkip(t *testing.T) {
	b := NewBuffer(84, 48)

	// width 4: two data bytes per row, then (4-2%4)%4 = 2 padding bytes.
	bmp := makeBMP(4, 2, [][]byte{
		{0xF0, 0x3C}, // bottom row (y=1): samples 15,0,3,12
		{0x42, 0xFF}, // top row (y=0): samples 4,2,15,15
	})
	if err := b.ImportBitmap(0, 1, bmp, 3); err != nil {
		t.Fatalf("ImportBitmap() error = %v", err)
	}

	want := map[[2]int]bool{
		{0, 1}: true, {1, 1}: false, {2, 1}: false, {3, 1}: true,
		{0, 0}: true, {1, 0}: false, {2, 0}: true, {3, 0}: true,
	}
	for p, wantOn := range want {
		on, err := b.Get(p[0], p[1])
		if err != nil {
			t.Fatalf("Get(%d, %d) error = %v", p[0], p[1], err)
		}
		if on != wantOn {
			t.Fatalf("pixel (%d,%d) = %v, want %v", p[0], p[1], on, wantOn)
		}
	}
}

func TestImportBitmapTouchesOnlyTarget(t *testing.T) {
	b := NewBuffer(84, 48)
	_ = b.Set(10, 10, true) // outside the target rectangle
	_ = b.Set(20, 30, true) // inside it, sample below threshold clears it

	bmp := makeBMP(2, 1, [][]byte{{0x0F}})
	if err := b.ImportBitmap(20, 30, bmp, 7); err != nil {
		t.Fatalf("ImportBitmap() error = %v", err)
	}

	if on, _ := b.Get(10, 10); !on {
		t.Fatalf("pixel (10,10) outside target cleared")
	}
	if on, _ := b.Get(20, 30); on {
		t.Fatalf("pixel (20,30) = on, want off (sample 0)")
	}
	if on, _ := b.Get(21, 30); !on {
		t.Fatalf("pixel (21,30) = off, want on (sample 15)")
	}
}

func TestImportBitmapThresholdClamp(t *testing.T) {
	b := NewBuffer(84, 48)

	// Threshold 200 clamps to 14: only a full-on sample survives.
	bmp := makeBMP(2, 1, [][]byte{{0xFE}})
	if err := b.ImportBitmap(0, 0, bmp, 200); err != nil {
		t.Fatalf("ImportBitmap() error = %v", err)
	}
	if on, _ := b.Get(0, 0); !on {
		t.Fatalf("pixel (0,0) = off, want on (sample 15)")
	}
	if on, _ := b.Get(1, 0); on {
		t.Fatalf("pixel (1,0) = on, want off (sample 14)")
	}
}

func TestImportBitmapRejections(t *testing.T) {
	b := NewBuffer(84, 48)

	cases := []struct {
		name string
		bmp  []byte
		x, y int
		want error
	}{
		{"short header", make([]byte, 10), 0, 0, ErrBitmapHeader},
		{"zero height", makeBMP(4, 0, nil), 0, 10, ErrBitmapGeometry},
		{"odd width", makeBMP(3, 2, [][]byte{{0, 0}, {0, 0}}), 0, 10, ErrBitmapGeometry},
		{"right side cut off", makeBMP(4, 2, [][]byte{{0, 0}, {0, 0}}), 82, 10, ErrBitmapGeometry},
		{"top cut off", makeBMP(4, 2, [][]byte{{0, 0}, {0, 0}}), 0, 0, ErrBitmapGeometry},
		{"below buffer", makeBMP(4, 2, [][]byte{{0, 0}, {0, 0}}), 0, 49, ErrBitmapGeometry},
		{"short data", makeBMP(4, 4, [][]byte{{0, 0}}), 0, 10, ErrBitmapHeader},
	}
	for _, tc := range cases {
		if err := b.ImportBitmap(tc.x, tc.y, tc.bmp, 0); !errors.Is(err, tc.want) {
			t.Fatalf("%s: ImportBitmap() error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestImportBitmapAnchorAtBufferHeight(t *testing.T) {
	b := NewBuffer(84, 48)

	// ypos == buffer height anchors the bottom row just below the buffer;
	// that row is clipped, the rows above land normally.
	bmp := makeBMP(2, 2, [][]byte{{0xFF}, {0xFF}})
	if err := b.ImportBitmap(0, 48, bmp, 0); err != nil {
		t.Fatalf("ImportBitmap() error = %v", err)
	}
	if on, _ := b.Get(0, 47); !on {
		t.Fatalf("pixel (0,47) = off, want on")
	}
}
