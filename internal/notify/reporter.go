package notify

import (
	"sync"
)

// errorTimeout keeps error notifications up long enough to read.
const errorTimeout int32 = 6000

// Reporter surfaces errors as desktop notifications. Each report replaces
// the previous one so a burst of failures leaves a single bubble.
type Reporter struct {
	notifier Notifier
	mu       sync.Mutex
	lastID   uint32
}

// NewReporter wraps n. A nil n gives a reporter that does nothing.
func NewReporter(n Notifier) *Reporter {
	return &Reporter{notifier: n}
}

// Report shows title with err as the body. Nil errors are ignored.
func (r *Reporter) Report(title string, err error) error {
	if r == nil || r.notifier == nil || err == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, nerr := r.notifier.Notify(Notification{
		Title:      title,
		Body:       err.Error(),
		Icon:       "dialog-error",
		Timeout:    errorTimeout,
		ReplacesID: r.lastID,
		Urgency:    UrgencyNormal,
	})
	if nerr != nil {
		return nerr
	}
	r.lastID = id
	return nil
}

// Mock records notifications for tests.
type Mock struct {
	mu     sync.Mutex
	sent   []Notification
	nextID uint32
}

func (m *Mock) Notify(n Notification) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	m.nextID++
	return m.nextID, nil
}

func (m *Mock) Close(_ uint32) error { return nil }

// Sent returns the notifications sent so far.
func (m *Mock) Sent() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.sent...)
}

var _ Notifier = (*Mock)(nil)
