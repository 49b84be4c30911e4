package nokia

import (
	"errors"
	"fmt"
)

// ErrUnsupportedChar reports a character outside the renderable range
// (printable ASCII, 0x20-0x7F).
var ErrUnsupportedChar = errors.New("nokia: character outside printable range")

// Glyph returns the 6-column cell for c. Columns are bytes with the top
// row in the least significant bit; the sixth column is the blank
// separator.
func Glyph(c byte) ([6]byte, error) {
	if c < 0x20 || c > 0x7F {
		return [6]byte{}, fmt.Errorf("%w: %#02x", ErrUnsupportedChar, c)
	}
	return glyphs[c-0x20], nil
}

// 5x8 character cells with an explicit blank column, top row in bit 0.
// 0x7F renders the UT sign rather than DEL.
var glyphs = [96][6]byte{
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 20 space
	{0x00, 0x00, 0x5F, 0x00, 0x00, 0x00}, // 21 !
	{0x00, 0x07, 0x00, 0x07, 0x00, 0x00}, // 22 "
	{0x14, 0x7F, 0x14, 0x7F, 0x14, 0x00}, // 23 #
	{0x24, 0x2A, 0x7F, 0x2A, 0x12, 0x00}, // 24 $
	{0x23, 0x13, 0x08, 0x64, 0x62, 0x00}, // 25 %
	{0x36, 0x49, 0x55, 0x22, 0x50, 0x00}, // 26 &
	{0x00, 0x05, 0x03, 0x00, 0x00, 0x00}, // 27 '
	{0x00, 0x1C, 0x22, 0x41, 0x00, 0x00}, // 28 (
	{0x00, 0x41, 0x22, 0x1C, 0x00, 0x00}, // 29 )
	{0x14, 0x08, 0x3E, 0x08, 0x14, 0x00}, // 2A *
	{0x08, 0x08, 0x3E, 0x08, 0x08, 0x00}, // 2B +
	{0x00, 0x50, 0x30, 0x00, 0x00, 0x00}, // 2C ,
	{0x08, 0x08, 0x08, 0x08, 0x08, 0x00}, // 2D -
	{0x00, 0x60, 0x60, 0x00, 0x00, 0x00}, // 2E .
	{0x20, 0x10, 0x08, 0x04, 0x02, 0x00}, // 2F /
	{0x3E, 0x51, 0x49, 0x45, 0x3E, 0x00}, // 30 0
	{0x00, 0x42, 0x7F, 0x40, 0x00, 0x00}, // 31 1
	{0x42, 0x61, 0x51, 0x49, 0x46, 0x00}, // 32 2
	{0x21, 0x41, 0x45, 0x4B, 0x31, 0x00}, // 33 3
	{0x18, 0x14, 0x12, 0x7F, 0x10, 0x00}, // 34 4
	{0x27, 0x45, 0x45, 0x45, 0x39, 0x00}, // 35 5
	{0x3C, 0x4A, 0x49, 0x49, 0x30, 0x00}, // 36 6
	{0x01, 0x71, 0x09, 0x05, 0x03, 0x00}, // 37 7
	{0x36, 0x49, 0x49, 0x49, 0x36, 0x00}, // 38 8
	{0x06, 0x49, 0x49, 0x29, 0x1E, 0x00}, // 39 9
	{0x00, 0x36, 0x36, 0x00, 0x00, 0x00}, // 3A :
	{0x00, 0x56, 0x36, 0x00, 0x00, 0x00}, // 3B ;
	{0x08, 0x14, 0x22, 0x41, 0x00, 0x00}, // 3C <
	{0x14, 0x14, 0x14, 0x14, 0x14, 0x00}, // 3D =
	{0x00, 0x41, 0x22, 0x14, 0x08, 0x00}, // 3E >
	{0x02, 0x01, 0x51, 0x09, 0x06, 0x00}, // 3F ?
	{0x32, 0x49, 0x79, 0x41, 0x3E, 0x00}, // 40 @
	{0x7E, 0x11, 0x11, 0x11, 0x7E, 0x00}, // 41 A
	{0x7F, 0x49, 0x49, 0x49, 0x36, 0x00}, // 42 B
	{0x3E, 0x41, 0x41, 0x41, 0x22, 0x00}, // 43 C
	{0x7F, 0x41, 0x41, 0x22, 0x1C, 0x00}, // 44 D
	{0x7F, 0x49, 0x49, 0x49, 0x41, 0x00}, // 45 E
	{0x7F, 0x09, 0x09, 0x09, 0x01, 0x00}, // 46 F
	{0x3E, 0x41, 0x49, 0x49, 0x7A, 0x00}, // 47 G
	{0x7F, 0x08, 0x08, 0x08, 0x7F, 0x00}, // 48 H
	{0x00, 0x41, 0x7F, 0x41, 0x00, 0x00}, // 49 I
	{0x20, 0x40, 0x41, 0x3F, 0x01, 0x00}, // 4A J
	{0x7F, 0x08, 0x14, 0x22, 0x41, 0x00}, // 4B K
	{0x7F, 0x40, 0x40, 0x40, 0x40, 0x00}, // 4C L
	{0x7F, 0x02, 0x0C, 0x02, 0x7F, 0x00}, // 4D M
	{0x7F, 0x04, 0x08, 0x10, 0x7F, 0x00}, // 4E N
	{0x3E, 0x41, 0x41, 0x41, 0x3E, 0x00}, // 4F O
	{0x7F, 0x09, 0x09, 0x09, 0x06, 0x00}, // 50 P
	{0x3E, 0x41, 0x51, 0x21, 0x5E, 0x00}, // 51 Q
	{0x7F, 0x09, 0x19, 0x29, 0x46, 0x00}, // 52 R
	{0x46, 0x49, 0x49, 0x49, 0x31, 0x00}, // 53 S
	{0x01, 0x01, 0x7F, 0x01, 0x01, 0x00}, // 54 T
	{0x3F, 0x40, 0x40, 0x40, 0x3F, 0x00}, // 55 U
	{0x1F, 0x20, 0x40, 0x20, 0x1F, 0x00}, // 56 V
	{0x3F, 0x40, 0x38, 0x40, 0x3F, 0x00}, // 57 W
	{0x63, 0x14, 0x08, 0x14, 0x63, 0x00}, // 58 X
	{0x07, 0x08, 0x70, 0x08, 0x07, 0x00}, // 59 Y
	{0x61, 0x51, 0x49, 0x45, 0x43, 0x00}, // 5A Z
	{0x00, 0x7F, 0x41, 0x41, 0x00, 0x00}, // 5B [
	{0x02, 0x04, 0x08, 0x10, 0x20, 0x00}, // 5C backslash
	{0x00, 0x41, 0x41, 0x7F, 0x00, 0x00}, // 5D ]
	{0x04, 0x02, 0x01, 0x02, 0x04, 0x00}, // 5E ^
	{0x40, 0x40, 0x40, 0x40, 0x40, 0x00}, // 5F _
	{0x00, 0x01, 0x02, 0x04, 0x00, 0x00}, // 60 `
	{0x20, 0x54, 0x54, 0x54, 0x78, 0x00}, // 61 a
	{0x7F, 0x48, 0x44, 0x44, 0x38, 0x00}, // 62 b
	{0x38, 0x44, 0x44, 0x44, 0x20, 0x00}, // 63 c
	{0x38, 0x44, 0x44, 0x48, 0x7F, 0x00}, // 64 d
	{0x38, 0x54, 0x54, 0x54, 0x18, 0x00}, // 65 e
	{0x08, 0x7E, 0x09, 0x01, 0x02, 0x00}, // 66 f
	{0x0C, 0x52, 0x52, 0x52, 0x3E, 0x00}, // 67 g
	{0x7F, 0x08, 0x04, 0x04, 0x78, 0x00}, // 68 h
	{0x00, 0x44, 0x7D, 0x40, 0x00, 0x00}, // 69 i
	{0x20, 0x40, 0x44, 0x3D, 0x00, 0x00}, // 6A j
	{0x7F, 0x10, 0x28, 0x44, 0x00, 0x00}, // 6B k
	{0x00, 0x41, 0x7F, 0x40, 0x00, 0x00}, // 6C l
	{0x7C, 0x04, 0x18, 0x04, 0x78, 0x00}, // 6D m
	{0x7C, 0x08, 0x04, 0x04, 0x78, 0x00}, // 6E n
	{0x38, 0x44, 0x44, 0x44, 0x38, 0x00}, // 6F o
	{0x7C, 0x14, 0x14, 0x14, 0x08, 0x00}, // 70 p
	{0x08, 0x14, 0x14, 0x18, 0x7C, 0x00}, // 71 q
	{0x7C, 0x08, 0x04, 0x04, 0x08, 0x00}, // 72 r
	{0x48, 0x54, 0x54, 0x54, 0x20, 0x00}, // 73 s
	{0x04, 0x3F, 0x44, 0x40, 0x20, 0x00}, // 74 t
	{0x3C, 0x40, 0x40, 0x20, 0x7C, 0x00}, // 75 u
	{0x1C, 0x20, 0x40, 0x20, 0x1C, 0x00}, // 76 v
	{0x3C, 0x40, 0x30, 0x40, 0x3C, 0x00}, // 77 w
	{0x44, 0x28, 0x10, 0x28, 0x44, 0x00}, // 78 x
	{0x0C, 0x50, 0x50, 0x50, 0x3C, 0x00}, // 79 y
	{0x44, 0x64, 0x54, 0x4C, 0x44, 0x00}, // 7A z
	{0x00, 0x08, 0x36, 0x41, 0x00, 0x00}, // 7B {
	{0x00, 0x00, 0x7F, 0x00, 0x00, 0x00}, // 7C |
	{0x00, 0x41, 0x36, 0x08, 0x00, 0x00}, // 7D }
	{0x10, 0x08, 0x08, 0x10, 0x08, 0x00}, // 7E ~
	{0x1F, 0x24, 0x7C, 0x24, 0x1F, 0x00}, // 7F UT sign
}
