//go:build !windows

// Package stderr redirects file descriptor 2 into a pipe so diagnostics
// printed by C decoders (faad2, ALSA) reach the log instead of the
// terminal the TUI is drawing on.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync/atomic"
	"syscall"
)

// maxLine bounds one captured line; longer output is split.
const maxLine = 4096

type capture struct {
	saved int // duplicate of the terminal's fd 2
	r, w  *os.File
}

var (
	active  *capture
	dropped atomic.Int64
)

// Start swaps fd 2 for a pipe. Call it before the audio backend
// initializes. On failure fd 2 is left untouched.
func Start() error {
	if active != nil {
		return nil
	}
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	fd := int(os.Stderr.Fd())
	saved, err := syscall.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		syscall.Close(saved)
		r.Close()
		w.Close()
		return err
	}

	active = &capture{saved: saved, r: r, w: w}
	go active.pump()
	return nil
}

// pump feeds Messages until the pipe closes. Lines are dropped rather
// than blocking the writer when nobody drains the channel.
func (c *capture) pump() {
	rd := bufio.NewReaderSize(c.r, maxLine)
	for {
		chunk, _, err := rd.ReadLine()
		if err != nil {
			return
		}
		line := strings.TrimSpace(string(chunk))
		if line == "" {
			continue
		}
		select {
		case Messages <- line:
		default:
			dropped.Add(1)
		}
	}
}

// Dropped is how many lines were discarded because Messages was full.
func Dropped() int64 {
	return dropped.Load()
}

// WriteOriginal writes to the terminal's stderr while capture is active.
func WriteOriginal(msg string) {
	if active == nil {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(active.saved, []byte(msg))
}

// Stop puts the terminal back on fd 2 and closes Messages.
func Stop() {
	if active == nil {
		return
	}
	_ = syscall.Dup2(active.saved, int(os.Stderr.Fd()))
	_ = syscall.Close(active.saved)
	active.w.Close()
	active.r.Close()
	active = nil
	close(Messages)
}
