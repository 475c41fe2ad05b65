//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package main

// Without termios there is no cheap way to tell; assume a pipe and keep
// the output free of prompts.
func isTerminal(fd uintptr) bool {
	return false
}
