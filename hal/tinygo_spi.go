//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

// SPITransport drives the panel over hardware SPI with the usual
// data/command and chip-select discipline.
type SPITransport struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin
}

// NewSPITransport configures SPI0 plus the control pins and pulses the
// panel reset line. The panel is ready for register bring-up afterwards.
func NewSPITransport() (*SPITransport, error) {
	if machine.SPI0 == nil {
		return nil, errors.New("SPI0 unavailable")
	}

	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Frequency: 8_000_000,
	})

	tr := &SPITransport{
		spi: *machine.SPI0,
		cs:  machine.GP17,
		dc:  machine.GP16,
		rst: machine.GP20,
	}

	tr.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	tr.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	tr.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	tr.cs.High()
	tr.dc.High()
	tr.rst.High()

	tr.reset()
	return tr, nil
}

// reset pulses the panel reset line. The controller needs at least 10us
// low and 120ms to come out of reset; 1ms and 150ms leave margin.
func (t *SPITransport) reset() {
	t.rst.Low()
	time.Sleep(time.Millisecond)
	t.rst.High()
	time.Sleep(150 * time.Millisecond)
}

func (t *SPITransport) SendCommand(b byte) error {
	t.dc.Low()
	t.cs.Low()
	err := t.spi.Tx([]byte{b}, nil)
	t.cs.High()
	return err
}

func (t *SPITransport) SendData(b byte) error {
	t.dc.High()
	t.cs.Low()
	err := t.spi.Tx([]byte{b}, nil)
	t.cs.High()
	return err
}

func (t *SPITransport) Delay(d time.Duration) {
	time.Sleep(d)
}
