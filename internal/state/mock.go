package state

import (
	"slices"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	settings *Settings
	saved    []Settings
	recent   []RecentFile
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetSettings() (*Settings, error) {
	return m.settings, nil
}

func (m *Mock) SaveSettings(s Settings) {
	m.settings = &s
	m.saved = append(m.saved, s)
}

func (m *Mock) AddRecent(path, trackKey string) error {
	m.recent = slices.DeleteFunc(m.recent, func(f RecentFile) bool { return f.Path == path })
	m.recent = append([]RecentFile{{Path: path, TrackKey: trackKey, OpenedAt: time.Now()}}, m.recent...)
	if len(m.recent) > MaxRecent {
		m.recent = m.recent[:MaxRecent]
	}
	return nil
}

func (m *Mock) Recent() ([]RecentFile, error) {
	return m.recent, nil
}

func (m *Mock) Close() error {
	return nil
}

// Test helpers

func (m *Mock) SetSettings(s *Settings) { m.settings = s }

func (m *Mock) SavedSettings() []Settings { return m.saved }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
