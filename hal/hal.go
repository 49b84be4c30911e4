package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Transport is the only contact point between the display engine and the
// panel: a serial, blocking command/data channel. Implementations own chip
// select and the data/command line discipline.
type Transport interface {
	// SendCommand selects the command register and transmits one byte.
	SendCommand(b byte) error

	// SendData selects the data register and transmits one byte.
	SendData(b byte) error

	// Delay blocks for at least d. Used only during panel bring-up.
	Delay(d time.Duration)
}
