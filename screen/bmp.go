package screen

import (
	"errors"
	"fmt"
)

// Legacy 4-bit grayscale BMP layout: single-byte fields at fixed header
// offsets, pixel rows stored bottom-to-top, each row padded to a 4-byte
// boundary, two pixels per byte with the left pixel in the high nibble.
const (
	bmpDataOffset   = 10
	bmpWidthOffset  = 18
	bmpHeightOffset = 22

	bmpHeaderMin = 26

	// MaxThreshold is the highest meaningful quantization cutoff: only a
	// full-on grayscale sample (15) exceeds it.
	MaxThreshold = 14
)

var (
	ErrBitmapHeader   = errors.New("screen: short or malformed bitmap")
	ErrBitmapGeometry = errors.New("screen: bitmap does not fit the target rectangle")
)

// ImportBitmap decodes a legacy 4-bit grayscale bitmap into the buffer
// with its bottom-left corner at (xpos, ypos). A grayscale sample
// strictly greater than threshold turns the pixel on, otherwise off;
// threshold is clamped to [0, MaxThreshold]. Only the target rectangle is
// touched. Odd bitmap widths are out of contract and rejected.
func (b *Buffer) ImportBitmap(xpos, ypos int, bmp []byte, threshold uint8) error {
	if len(bmp) < bmpHeaderMin {
		return fmt.Errorf("%w: %d header bytes", ErrBitmapHeader, len(bmp))
	}
	width := int(bmp[bmpWidthOffset])
	height := int(bmp[bmpHeightOffset])
	switch {
	case height <= 0:
		return fmt.Errorf("%w: height %d", ErrBitmapGeometry, height)
	case width%2 != 0:
		return fmt.Errorf("%w: odd width %d", ErrBitmapGeometry, width)
	case xpos < 0 || xpos+width > b.w:
		return fmt.Errorf("%w: width %d at x=%d", ErrBitmapGeometry, width, xpos)
	case ypos < height-1 || ypos > b.h:
		return fmt.Errorf("%w: height %d at y=%d", ErrBitmapGeometry, height, ypos)
	}
	if threshold > MaxThreshold {
		threshold = MaxThreshold
	}

	pad := (4 - (width/2)%4) % 4
	j := int(bmp[bmpDataOffset])
	if j+height*(width/2)+(height-1)*pad > len(bmp) {
		return fmt.Errorf("%w: %d data bytes for %dx%d", ErrBitmapHeader, len(bmp)-j, width, height)
	}

	// Rows are stored bottom to top, so walk the buffer upwards from the
	// anchor row.
	band := ypos / 8
	mask := byte(1) << (ypos % 8)
	x := xpos
	for i := 1; i <= width*height/2; i++ {
		b.plot(band, x, mask, bmp[j]>>4 > threshold)
		x++
		b.plot(band, x, mask, bmp[j]&0x0F > threshold)
		x++
		j++
		if i%(width/2) == 0 {
			if mask > 0x01 {
				mask >>= 1
			} else {
				mask = 0x80
				band--
			}
			x = xpos
			j += pad
		}
	}
	return nil
}

// plot writes one bit, clipping rows addressed below the buffer (an
// anchor at ypos == height lands there).
func (b *Buffer) plot(band, x int, mask byte, on bool) {
	if band < 0 || band >= len(b.pix)/b.w || x < 0 || x >= b.w {
		return
	}
	if on {
		b.pix[band*b.w+x] |= mask
	} else {
		b.pix[band*b.w+x] &^= mask
	}
}
