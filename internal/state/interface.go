package state

// Interface is what the app needs from the state store; Mock stands in
// for it in tests.
type Interface interface {
	GetSettings() (*Settings, error)
	SaveSettings(s Settings)
	AddRecent(path, trackKey string) error
	Recent() ([]RecentFile, error)
	Close() error
}

var _ Interface = (*Manager)(nil)
