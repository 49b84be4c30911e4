//go:build tinygo && baremetal

package main

import (
	"time"

	"emu5110/hal"
	"emu5110/nokia"
)

func main() {
	tr, err := hal.NewSPITransport()
	if err != nil {
		for {
			time.Sleep(time.Second)
		}
	}

	dev := nokia.New(tr)
	if err := dev.Init(); err != nil {
		for {
			time.Sleep(time.Second)
		}
	}

	_ = dev.OutString("Hello, world!")
	dev.SetCursor(0, 2)
	_ = dev.OutString("count:")
	for n := uint16(0); ; n++ {
		dev.SetCursor(6, 2)
		_ = dev.OutUDec(n)
		time.Sleep(time.Second)
	}
}
