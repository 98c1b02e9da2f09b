// internal/app/persistence.go
package app

import (
	"github.com/llehouerou/practicehard/internal/state"
)

// saveSettings queues the user settings for a debounced write.
func (m *Model) saveSettings() {
	m.state.SaveSettings(state.Settings{
		Volume:         m.session.Volume(),
		Speed:          m.session.Speed(),
		SkipIntervalMs: m.skipMs,
		LastFolder:     m.lastFolder,
	})
}
