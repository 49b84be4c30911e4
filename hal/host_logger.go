//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

// NewHostLogger returns a Logger that writes to stdout.
func NewHostLogger() Logger {
	return &hostLogger{w: os.Stdout}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
