// Package cwriter provides a buffered writer which updates the terminal in
// place, replacing the previously flushed frame with cursor-up and
// erase-down escape sequences.
package cwriter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const (
	escOpen  = "\x1b["
	cuuAndEd = "A\x1b[J"
)

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

// Writer is a buffered writer that updates the terminal. The contents of
// the buffer replace the previously flushed frame when Flush is called.
type Writer struct {
	*bytes.Buffer
	out       io.Writer
	fd        int
	terminal  bool
	lineCount int
	termSize  func(int) (int, int, error)
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	w := &Writer{
		Buffer: new(bytes.Buffer),
		out:    out,
		termSize: func(_ int) (int, int, error) {
			return -1, -1, ErrNotTTY
		},
	}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		if IsTerminal(w.fd) {
			w.terminal = true
			w.termSize = func(fd int) (int, int, error) {
				return GetSize(fd)
			}
		}
	}
	return w
}

// Flush flushes the underlying buffer, replacing the previously flushed
// frame. The caller reports how many terminal rows the new frame occupies,
// so the following flush rewinds far enough.
func (w *Writer) Flush(lineCount int) error {
	if w.lineCount > 0 {
		if err := w.ansiCuuAndEd(w.lineCount); err != nil {
			return err
		}
	}
	w.lineCount = lineCount
	_, err := w.WriteTo(w.out)
	return err
}

// GetTermSize returns WxH of underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	return w.termSize(w.fd)
}

// IsTTY reports whether the underlying writer is a terminal.
func (w *Writer) IsTTY() bool {
	return w.terminal
}

func (w *Writer) ansiCuuAndEd(n int) error {
	buf := make([]byte, 0, 16)
	buf = strconv.AppendInt(append(buf, escOpen...), int64(n), 10)
	_, err := w.out.Write(append(buf, cuuAndEd...))
	return err
}
