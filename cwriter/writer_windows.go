//go:build windows

package cwriter

import "golang.org/x/sys/windows"

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	var mode uint32
	err := windows.GetConsoleMode(windows.Handle(fd), &mode)
	return err == nil
}

// GetSize returns the dimensions of the terminal referred to by fd.
func GetSize(fd int) (width, height int, err error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return -1, -1, err
	}
	// terminal's logical window, not the scrollback buffer
	return int(info.Window.Right - info.Window.Left + 1), int(info.Window.Bottom - info.Window.Top + 1), nil
}
