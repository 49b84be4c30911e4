package st7735

import "fmt"

// The codec turns 1-bit samples into the controller's RGB444 stream. Two
// 12-bit pixels travel in three bytes:
//
//	byte0 = p1[11:4]
//	byte1 = p1[3:0] | p2[11:8]
//	byte2 = p2[7:0]
//
// The layout is a wire contract; the simulator inverts it bit for bit.

func packPair(p1, p2 uint16) (b0, b1, b2 byte) {
	b0 = byte(p1 >> 4)
	b1 = byte(p1&0x0F)<<4 | byte(p2>>8)&0x0F
	b2 = byte(p2)
	return b0, b1, b2
}

// StreamBits streams one window's worth of pixels from a bit-packed
// buffer: bytes grouped in 8-row bands, pixel (x,y) in byte x + w*(y/8),
// bit y%8. A set bit is ink. A transport failure aborts the stream and is
// returned; window and cursor state stay consistent, so the caller can
// re-issue SetWindow and restream.
func (d *Device) StreamBits(bits []byte) error {
	if need := d.width * ((d.height + 7) / 8); len(bits) < need {
		return fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(bits), need)
	}
	return d.stream(bits)
}

// FillWindow streams one window's worth of background (off) pixels.
func (d *Device) FillWindow() error {
	return d.stream(nil)
}

func (d *Device) stream(bits []byte) error {
	for i := 0; i < d.width*d.height; i += 2 {
		b0, b1, b2 := packPair(d.sample(bits, i), d.sample(bits, i+1))
		for _, b := range []byte{b0, b1, b2} {
			if err := d.tr.SendData(b); err != nil {
				return fmt.Errorf("stream at pixel %d: %w", i, err)
			}
		}
	}
	return nil
}

// sample reads the 1-bit sample for window pixel index i. A nil buffer
// means background fill.
func (d *Device) sample(bits []byte, i int) uint16 {
	if bits == nil {
		return PixelOff
	}
	x := i % d.width
	y := i / d.width
	if bits[(y/8)*d.width+x]&(1<<(y%8)) != 0 {
		return PixelOn
	}
	return PixelOff
}
