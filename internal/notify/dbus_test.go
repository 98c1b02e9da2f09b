//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutBusFallsBack(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path=/nonexistent/bus")

	n, err := New()
	require.NoError(t, err)
	id, err := n.Notify(Notification{Title: "x"})
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestBusNotifier_ShowAndReplace(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}
	n, err := New()
	require.NoError(t, err)
	if _, ok := n.(*busNotifier); !ok {
		t.Skip("session bus unreachable")
	}

	id, err := n.Notify(Notification{Title: "Practice Hard test", Body: "first", Timeout: 1000, Urgency: UrgencyLow})
	require.NoError(t, err)
	require.NotZero(t, id)

	same, err := n.Notify(Notification{Title: "Practice Hard test", Body: "second", Timeout: 1000, ReplacesID: id})
	require.NoError(t, err)
	assert.Equal(t, id, same)

	assert.NoError(t, n.Close(id))
}
