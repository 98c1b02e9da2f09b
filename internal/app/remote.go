// internal/app/remote.go
package app

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/mpris"
	"github.com/llehouerou/practicehard/internal/session"
)

// Remote bridges MPRIS clients and the UI loop. D-Bus goroutines read the
// last published status and post commands; they never touch the session.
type Remote struct {
	status  atomic.Pointer[mpris.Status]
	program atomic.Pointer[tea.Program]
}

// NewRemote creates a remote with an empty status.
func NewRemote() *Remote {
	r := &Remote{}
	r.status.Store(&mpris.Status{})
	return r
}

// Attach sets the program commands are sent to.
func (r *Remote) Attach(p *tea.Program) {
	r.program.Store(p)
}

// Status implements mpris.Remote.
func (r *Remote) Status() mpris.Status {
	return *r.status.Load()
}

// Send implements mpris.Remote.
func (r *Remote) Send(cmd mpris.Command) {
	if p := r.program.Load(); p != nil {
		p.Send(RemoteMsg{Command: cmd})
	}
}

func (r *Remote) publish(s mpris.Status) {
	r.status.Store(&s)
}

var _ mpris.Remote = (*Remote)(nil)

// publish exposes the session state to the remote.
func (m *Model) publish() {
	if m.remote == nil {
		return
	}
	snap := m.session.Snapshot()
	st := mpris.Status{
		Path:     snap.Source,
		Length:   time.Duration(snap.Duration) * time.Millisecond,
		Position: time.Duration(snap.Position) * time.Millisecond,
		Loaded:   snap.Mode != session.Idle,
		Playing:  snap.Playing,
		Speed:    snap.Speed,
		Volume:   snap.Volume,
	}
	if m.tag != nil {
		st.Title = m.tag.Title
		st.Artist = m.tag.Artist
		st.Album = m.tag.Album
	}
	m.remote.publish(st)
}

// handleRemote applies an MPRIS request.
func (m Model) handleRemote(cmd mpris.Command) Model {
	if m.session.Mode() == session.Idle {
		return m
	}
	switch cmd.Kind {
	case mpris.CmdPlayPause:
		m.session.TogglePlay()
	case mpris.CmdPlay:
		if !m.session.Playing() {
			m.session.TogglePlay()
		}
	case mpris.CmdPause:
		if m.session.Playing() {
			m.session.TogglePlay()
		}
	case mpris.CmdStop:
		if m.session.Playing() {
			m.session.TogglePlay()
		}
		m.session.ResetPosition()
	case mpris.CmdSkip:
		m.skip(int(cmd.Offset / time.Millisecond))
	case mpris.CmdSeekTo:
		m.session.SeekTo(int(cmd.Offset / time.Millisecond))
	case mpris.CmdSpeed:
		m.setSpeed(cmd.Percent)
	case mpris.CmdVolume:
		m.setVolume(cmd.Percent)
	}
	return m
}
