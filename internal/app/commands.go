// internal/app/commands.go
package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/notify"
	"github.com/llehouerou/practicehard/internal/player"
	"github.com/llehouerou/practicehard/internal/tags"
	"github.com/llehouerou/practicehard/internal/ui/cover"
)

// TickCmd returns a command that sends TickMsg after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchEngineEvents returns a command that waits for the next engine event.
// The handler re-issues it after each event.
func WatchEngineEvents(events <-chan player.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return EngineClosedMsg{}
		}
		return EngineEventMsg{Event: ev}
	}
}

// LoadCoverCmd reads and renders the cover of path off the UI goroutine.
func LoadCoverCmd(path string, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		data, _, err := tags.ReadCover(path)
		if err != nil {
			return CoverLoadedMsg{Path: path, Err: err}
		}
		view, err := cover.Render(data, cols, rows)
		if errors.Is(err, cover.ErrEmpty) {
			return CoverLoadedMsg{Path: path}
		}
		return CoverLoadedMsg{Path: path, View: view, Err: err}
	}
}

// NotifyCmd shows err as a desktop notification.
func NotifyCmd(r *notify.Reporter, title string, err error) tea.Cmd {
	if r == nil || err == nil {
		return nil
	}
	return func() tea.Msg {
		_ = r.Report(title, err)
		return nil
	}
}
