//go:build linux

package main

import (
	"golang.org/x/sys/unix"
)

// isTerminal decides whether to show a prompt.
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
