//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"emu5110/hal"
	"emu5110/nokia"
	"emu5110/sim"
)

func main() {
	var (
		headless  = flag.Bool("headless", false, "Render once without a window.")
		snapshot  = flag.String("snapshot", "", "Write a PNG of the glass after rendering (implies one render pass).")
		text      = flag.String("text", "Hello, world!", "Text printed through the classic cursor.")
		bmpPath   = flag.String("bmp", "", "Legacy 4-bit grayscale bitmap to place in the screen buffer.")
		threshold = flag.Uint("threshold", 7, "Grayscale threshold for -bmp (0-14).")
	)
	flag.Parse()

	log := hal.NewHostLogger()
	panel := sim.NewPanel(log)
	dev := nokia.New(panel)

	if err := demo(dev, *text, *bmpPath, uint8(*threshold)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *snapshot != "" {
		if err := writeSnapshot(panel, *snapshot); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *headless || *snapshot != "" {
		return
	}

	if err := sim.RunWindow(panel, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// demo exercises the classic surface: bring-up with splash and labels,
// cursor text, a counter, and a buffered frame rendered with a
// proportional font next to an optional imported bitmap.
func demo(dev *nokia.Device, text, bmpPath string, threshold uint8) error {
	if err := dev.Init(); err != nil {
		return err
	}

	dev.ClearBuffer()
	if bmpPath != "" {
		bmp, err := os.ReadFile(bmpPath)
		if err != nil {
			return fmt.Errorf("read bitmap: %w", err)
		}
		if err := dev.PrintBMP(0, nokia.ScreenHeight-1, bmp, threshold); err != nil {
			return fmt.Errorf("import bitmap %q: %w", bmpPath, err)
		}
	}
	d := dev.Displayer()
	ink := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 2, nokia.ScreenHeight-4, "emu5110", ink)
	if err := d.Display(); err != nil {
		return err
	}

	// Cursor text lands on top of the buffered frame.
	if err := dev.OutString(text); err != nil {
		return err
	}
	dev.SetCursor(0, 2)
	if err := dev.OutString("count:"); err != nil {
		return err
	}
	return dev.OutUDec(5110)
}

func writeSnapshot(panel *sim.Panel, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := panel.WritePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	return f.Close()
}
