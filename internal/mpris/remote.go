// Package mpris exposes the practice session to desktop media keys and
// MPRIS clients over D-Bus.
package mpris

import (
	"time"
)

// Rate bounds advertised to clients. Rate 1.0 is 100% speed.
const (
	MinRate = 0.01
	MaxRate = 2.0
)

// Status is a read-only view of the session, published by the UI loop.
type Status struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Length   time.Duration
	Position time.Duration
	Loaded   bool
	Playing  bool
	Speed    int // percent
	Volume   int // percent
}

// CommandKind identifies a remote request.
type CommandKind int

const (
	CmdPlayPause CommandKind = iota
	CmdPlay
	CmdPause
	CmdStop
	CmdSkip   // relative seek by Offset
	CmdSeekTo // absolute seek to Offset
	CmdSpeed  // set speed to Percent
	CmdVolume // set volume to Percent
)

// Command is a request from an MPRIS client. It is handed to the UI loop
// and never applied from D-Bus goroutines.
type Command struct {
	Kind    CommandKind
	Offset  time.Duration
	Percent int
}

// Remote connects the adapter to the application.
type Remote interface {
	// Status returns the last published status. Safe from any goroutine.
	Status() Status
	// Send queues cmd for the UI loop. Safe from any goroutine.
	Send(cmd Command)
}

// rateToPercent clamps an MPRIS rate and converts it to a speed percent.
func rateToPercent(rate float64) int {
	rate = max(MinRate, min(MaxRate, rate))
	return int(rate*100 + 0.5)
}

// volumeToPercent converts an MPRIS volume (0..1) to a percent.
func volumeToPercent(v float64) int {
	v = max(0, min(1, v))
	return int(v*100 + 0.5)
}
