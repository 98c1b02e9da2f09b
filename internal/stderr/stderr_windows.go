//go:build windows

// Package stderr is a pass-through on Windows, where the audio backend
// does not print to fd 2.
package stderr

import "os"

func Start() error { return nil }

func Dropped() int64 { return 0 }

func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop closes Messages so Forward returns.
func Stop() {
	close(Messages)
}
