// internal/app/open.go
package app

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/errmsg"
	"github.com/llehouerou/practicehard/internal/player"
	"github.com/llehouerou/practicehard/internal/tags"
	"github.com/llehouerou/practicehard/internal/ui"
	"github.com/llehouerou/practicehard/internal/ui/openfile"
)

// openFile loads path as the practiced track and pulls in its presets.
func (m Model) openFile(path string) (Model, tea.Cmd) {
	name := filepath.Base(path)
	if !player.IsSupported(path) {
		m.fail(errmsg.OpFileOpen, name, player.ErrUnsupported)
		return m, nil
	}
	if _, err := os.Stat(path); err != nil {
		m.fail(errmsg.OpFileOpen, name, err)
		return m, nil
	}
	if err := m.session.Load(path); err != nil {
		cmd := m.report(errmsg.OpFileLoad, name, err)
		return m, cmd
	}
	m.dragging = false
	m.blurInputs()
	m.startInput.SetValue("")
	m.endInput.SetValue("")

	tag, err := tags.Read(path)
	if err != nil {
		m.logger.Debug().Err(err).Str("path", path).Msg("read tags")
		tag = &tags.Tag{Path: path}
	}
	m.tag = tag
	m.trackKey = tag.Key()
	m.speedIdx = -1
	m.refreshPresets()

	m.cover = ""
	m.lastFolder = filepath.Dir(path)
	if err := m.state.AddRecent(path, m.trackKey); err != nil {
		m.logger.Warn().Err(err).Msg("record recent file")
	}
	m.saveSettings()

	m.setStatus(fmt.Sprintf("Opened %s (%s)", tags.Stem(path), m.trackKey))
	m.logger.Info().Str("path", path).Str("key", m.trackKey).Msg("track opened")
	return m, LoadCoverCmd(path, ui.CoverCols, ui.CoverRows)
}

// openDir is where the open prompt starts.
func (m Model) openDir() string {
	if src := m.session.Source(); src != "" {
		return filepath.Dir(src)
	}
	if m.lastFolder != "" {
		return m.lastFolder
	}
	wd, _ := os.Getwd()
	return wd
}

func (m Model) recentEntries() []openfile.Entry {
	files, err := m.state.Recent()
	if err != nil {
		m.logger.Warn().Err(err).Msg("list recent files")
		return nil
	}
	entries := make([]openfile.Entry, 0, len(files))
	for _, f := range files {
		entries = append(entries, openfile.Entry{Path: f.Path, Label: f.TrackKey, OpenedAt: f.OpenedAt})
	}
	return entries
}
