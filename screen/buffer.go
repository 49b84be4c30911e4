// Package screen holds the monochrome frame buffer mirroring the intended
// on-screen image, plus the importer for legacy 4-bit grayscale bitmaps.
package screen

import (
	"errors"
	"fmt"
)

var ErrOutOfBounds = errors.New("screen: pixel out of bounds")

// Buffer is a bit-packed 1bpp pixel store. Bytes are grouped in 8-row
// bands: pixel (x,y) lives in byte x + w*(y/8), bit y%8. The size is
// fixed at construction.
type Buffer struct {
	w, h int
	pix  []byte
}

// NewBuffer returns a cleared w x h buffer. Like the image package
// constructors it assumes positive dimensions.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		w:   w,
		h:   h,
		pix: make([]byte, w*((h+7)/8)),
	}
}

func (b *Buffer) Width() int  { return b.w }
func (b *Buffer) Height() int { return b.h }

// Bytes exposes the backing store in the codec's band layout. The slice
// aliases the buffer; it is what gets streamed on flush.
func (b *Buffer) Bytes() []byte { return b.pix }

// Set turns the pixel at (x,y) on or off.
func (b *Buffer) Set(x, y int, on bool) error {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	mask := byte(1) << (y % 8)
	if on {
		b.pix[(y/8)*b.w+x] |= mask
	} else {
		b.pix[(y/8)*b.w+x] &^= mask
	}
	return nil
}

// Get reports whether the pixel at (x,y) is on.
func (b *Buffer) Get(x, y int) (bool, error) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return b.pix[(y/8)*b.w+x]&(1<<(y%8)) != 0, nil
}

// Clear turns every pixel off.
func (b *Buffer) Clear() {
	for i := range b.pix {
		b.pix[i] = 0
	}
}
