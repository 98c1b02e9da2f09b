// Package notify raises desktop notifications for errors the user should
// see even when the terminal is in the background.
package notify

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop bubble.
type Notification struct {
	Title      string
	Body       string
	Icon       string // icon name or image path
	Timeout    int32  // ms; -1 lets the server decide, 0 keeps it open
	ReplacesID uint32 // non-zero updates an existing bubble
	Urgency    Urgency
}

// Notifier delivers notifications.
type Notifier interface {
	// Notify shows n and returns the server's id for it.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// Nop drops every notification. New returns it when no notification
// service is reachable.
type Nop struct{}

func (Nop) Notify(Notification) (uint32, error) { return 0, nil }

func (Nop) Close(uint32) error { return nil }

var _ Notifier = Nop{}
