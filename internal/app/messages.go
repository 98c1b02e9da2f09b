// internal/app/messages.go
package app

import (
	"time"

	"github.com/llehouerou/practicehard/internal/mpris"
	"github.com/llehouerou/practicehard/internal/player"
)

// TickMsg drives the periodic position refresh.
type TickMsg time.Time

// EngineEventMsg carries an engine notification onto the UI goroutine.
type EngineEventMsg struct {
	Event player.Event
}

// EngineClosedMsg is sent once the engine event channel is closed.
type EngineClosedMsg struct{}

// RemoteMsg carries an MPRIS request onto the UI goroutine.
type RemoteMsg struct {
	Command mpris.Command
}

// OpenFileMsg asks the app to load a track.
type OpenFileMsg struct {
	Path string
}

// CoverLoadedMsg carries the rendered cover of a track.
type CoverLoadedMsg struct {
	Path string
	View string
	Err  error
}

// pendingRange is the range waiting for the slot picker's answer.
type pendingRange struct {
	Key   string
	Start string
	End   string
}
