package player

import "time"

// Mock is a test double for Player. It records calls and lets tests
// inject engine events.
type Mock struct {
	state    State
	path     string
	position time.Duration
	duration time.Duration
	rate     float64
	volume   int
	looping  bool
	loadErr  error

	// durations maps a loaded path to the duration reported for it.
	durations map[string]time.Duration

	loadCalls []string
	seekCalls []time.Duration
	loopCalls []bool
	playCalls int
	events    chan Event
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		state:     Stopped,
		rate:      1,
		volume:    100,
		durations: make(map[string]time.Duration),
		events:    make(chan Event, eventBuffer),
	}
}

func (m *Mock) Load(path string) error {
	m.loadCalls = append(m.loadCalls, path)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.path = path
	m.state = Stopped
	m.position = 0
	m.duration = m.durations[path]
	return nil
}

func (m *Mock) Play() {
	if m.path == "" {
		return
	}
	m.playCalls++
	m.state = Playing
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.state = Stopped
	m.position = 0
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Loaded() bool { return m.path != "" }

func (m *Mock) Path() string { return m.path }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SetPosition(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) SetRate(ratio float64) { m.rate = ratio }

func (m *Mock) SetVolume(percent int) { m.volume = percent }

func (m *Mock) SetLooping(loop bool) {
	m.looping = loop
	m.loopCalls = append(m.loopCalls, loop)
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error { return nil }

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

// SetMediaDuration sets the duration reported once path is loaded.
func (m *Mock) SetMediaDuration(path string, d time.Duration) { m.durations[path] = d }

// SetCurrentPosition moves the playhead without recording a seek.
func (m *Mock) SetCurrentPosition(d time.Duration) { m.position = d }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) Rate() float64 { return m.rate }

func (m *Mock) Volume() int { return m.volume }

func (m *Mock) Looping() bool { return m.looping }

// Emit queues an event as the real engine would.
func (m *Mock) Emit(ev Event) {
	emit(m.events, ev)
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
