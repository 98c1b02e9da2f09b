// internal/app/status.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/errmsg"
)

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

// fail shows an error on the status line and logs it.
func (m *Model) fail(op errmsg.Op, context string, err error) {
	m.status = errmsg.FormatWith(op, context, err)
	m.statusErr = true
	m.logger.Error().Err(err).Str("op", string(op)).Str("context", context).Msg("operation failed")
}

// report is fail plus a desktop notification.
func (m *Model) report(op errmsg.Op, context string, err error) tea.Cmd {
	m.fail(op, context, err)
	if !m.cfg.NotificationsEnabled() {
		return nil
	}
	return NotifyCmd(m.reporter, "Practice Hard", err)
}
