//go:build wasm

package cwriter

// IsTerminal do nothing
func IsTerminal(fd int) bool {
	return false
}

// GetSize do nothing
func GetSize(fd int) (width, height int, err error) {
	return -1, -1, ErrNotTTY
}
