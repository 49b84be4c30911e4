// Command mkbmp converts an ordinary image into the legacy 4-bit
// grayscale BMP consumed by the screen buffer importer: bottom-up rows,
// two pixels per byte with the left pixel in the high nibble, rows padded
// to four bytes. Nibble value is ink intensity, 15 for black.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	paletteEntries = 16
	dataOffset     = fileHeaderSize + infoHeaderSize + paletteEntries*4
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input image (png, jpeg or gif).")
		outPath = flag.String("out", "", "Output BMP file.")
		width   = flag.Int("w", 84, "Output width in pixels (must be even).")
		height  = flag.Int("h", 48, "Output height in pixels.")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fatalf("usage: mkbmp -in image.png -out image.bmp [-w 84] [-h 48]")
	}
	if *width < 2 || *width%2 != 0 {
		fatalf("width must be even and positive, got %d", *width)
	}
	if *height < 1 {
		fatalf("height must be positive, got %d", *height)
	}

	if err := convert(*inPath, *outPath, *width, *height); err != nil {
		fatalf("convert: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func convert(inPath, outPath string, w, h int) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	src, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %q: %w", inPath, err)
	}

	scaled := image.NewGray(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	return os.WriteFile(outPath, encodeBMP(scaled), 0o644)
}

// encodeBMP packs the grayscale image into the legacy layout. The
// grayscale palette keeps the file viewable in ordinary tools.
func encodeBMP(img *image.Gray) []byte {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	rowBytes := w / 2
	pad := (4 - rowBytes%4) % 4
	size := dataOffset + (rowBytes+pad)*h

	out := make([]byte, size)
	out[0] = 'B'
	out[1] = 'M'
	binary.LittleEndian.PutUint32(out[2:], uint32(size))
	binary.LittleEndian.PutUint32(out[10:], dataOffset)
	binary.LittleEndian.PutUint32(out[14:], infoHeaderSize)
	binary.LittleEndian.PutUint32(out[18:], uint32(w))
	binary.LittleEndian.PutUint32(out[22:], uint32(h))
	binary.LittleEndian.PutUint16(out[26:], 1) // planes
	binary.LittleEndian.PutUint16(out[28:], 4) // bits per pixel
	binary.LittleEndian.PutUint32(out[46:], paletteEntries)

	// Index 0 is white, index 15 black.
	for i := 0; i < paletteEntries; i++ {
		v := byte(255 - i*17)
		p := fileHeaderSize + infoHeaderSize + i*4
		out[p] = v
		out[p+1] = v
		out[p+2] = v
	}

	j := dataOffset
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x += 2 {
			left := inkNibble(img.At(x, y))
			right := inkNibble(img.At(x+1, y))
			out[j] = left<<4 | right
			j++
		}
		j += pad
	}
	return out
}

func inkNibble(c color.Color) byte {
	g := color.GrayModel.Convert(c).(color.Gray)
	return 15 - g.Y>>4
}
