// Package log is the gitaid debug log. Messages are buffered until a
// destination is chosen, so lines written before the configuration is read are
// not lost.
package log

import (
	"io"
	"log"
	"os"
	"sync"
)

// StderrPath selects standard error as the debug log destination.
const StderrPath = "-"

// Sink collects debug output. It implements io.Writer so a standard
// log.Logger can format into it.
type Sink struct {
	mu      sync.Mutex
	out     io.Writer
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	globalSink = &Sink{}
	stdLogger  = log.New(globalSink, "gitaid: ", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer.
func (l *Sink) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.discard {
		return len(p), nil
	}

	if l.out != nil {
		n, err = l.out.Write(p)
		if l.file != nil {
			_ = l.file.Sync()
		}
		return n, err
	}

	// p may be reused by the caller
	b := make([]byte, len(p))
	copy(b, p)
	l.buffer = append(l.buffer, b...)
	return len(p), nil
}

// SetFile picks the debug log destination: a file path (appended to), "-"
// for stderr, or "" to drop buffered and future messages.
func SetFile(path string) error {
	switch path {
	case "":
		SetOutput(nil)
		return nil
	case StderrPath:
		SetOutput(os.Stderr)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		SetOutput(nil)
		return err
	}

	setOutput(f, f)
	return nil
}

// SetOutput sends debug output to w, flushing anything buffered so far. A nil
// writer discards everything.
func SetOutput(w io.Writer) {
	setOutput(w, nil)
}

func setOutput(w io.Writer, f *os.File) {
	globalSink.mu.Lock()
	defer globalSink.mu.Unlock()

	if globalSink.file != nil {
		_ = globalSink.file.Close()
		globalSink.file = nil
	}

	if w == nil {
		globalSink.out = nil
		globalSink.discard = true
		globalSink.buffer = nil
		return
	}

	globalSink.out = w
	globalSink.file = f
	globalSink.discard = false
	if len(globalSink.buffer) > 0 {
		_, _ = w.Write(globalSink.buffer)
		globalSink.buffer = nil
	}
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the debug log file if one is open.
func Close() error {
	globalSink.mu.Lock()
	defer globalSink.mu.Unlock()

	globalSink.out = nil
	if globalSink.file == nil {
		return nil
	}

	err := globalSink.file.Close()
	globalSink.file = nil
	return err
}
