package openfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/ui/action"
	"github.com/llehouerou/practicehard/internal/ui/testutil"
)

func newTestPrompt(dir string, recent []Entry) (*Model, *testutil.PopupHarness) {
	m := New()
	m.now = func() time.Time { return time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC) }
	m.Start(dir, recent, 100, 30)
	return &m, testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := testutil.ExecuteCmd(cmd)
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

func typeText(h *testutil.PopupHarness, s string) {
	for _, r := range s {
		h.SendKey(string(r))
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenFile_TypePath(t *testing.T) {
	_, h := newTestPrompt("", nil)

	typeText(h, "/tmp/song.mp3")
	h.SendEnter()

	result := getResult(t, h)
	if result.Path != "/tmp/song.mp3" {
		t.Errorf("Path = %q, want %q", result.Path, "/tmp/song.mp3")
	}
	if result.Canceled {
		t.Error("expected Canceled=false")
	}
}

func TestOpenFile_StartDirIsPrefilled(t *testing.T) {
	m, _ := newTestPrompt("/music/", nil)

	want := "/music" + string(filepath.Separator)
	if m.Text() != want {
		t.Errorf("Text = %q, want %q", m.Text(), want)
	}
}

func TestOpenFile_Backspace(t *testing.T) {
	m, h := newTestPrompt("", nil)

	typeText(h, "abé")
	h.SendSpecialKey(tea.KeyBackspace)

	if m.Text() != "ab" {
		t.Errorf("Text = %q, want %q", m.Text(), "ab")
	}
}

func TestOpenFile_SpaceInPath(t *testing.T) {
	m, h := newTestPrompt("", nil)

	typeText(h, "a")
	h.SendSpecialKey(tea.KeySpace)
	typeText(h, "b")

	if m.Text() != "a b" {
		t.Errorf("Text = %q, want %q", m.Text(), "a b")
	}
}

func TestOpenFile_EmptyEnterDoesNothing(t *testing.T) {
	_, h := newTestPrompt("", nil)

	if cmd := h.SendEnter(); cmd != nil {
		t.Error("expected no command for empty prompt")
	}
}

func TestOpenFile_Cancel(t *testing.T) {
	_, h := newTestPrompt("", nil)

	h.SendEscape()

	if !getResult(t, h).Canceled {
		t.Error("expected Canceled=true")
	}
}

func TestOpenFile_PickRecent(t *testing.T) {
	recent := []Entry{
		{Path: "/music/one.flac", Label: "A - One"},
		{Path: "/music/two.flac", Label: "B - Two"},
	}
	_, h := newTestPrompt("/ignored/", recent)

	h.SendDown()
	h.SendDown()
	h.SendDown() // stays on the last entry
	h.SendEnter()

	if got := getResult(t, h).Path; got != "/music/two.flac" {
		t.Errorf("Path = %q, want %q", got, "/music/two.flac")
	}
}

func TestOpenFile_TypingLeavesRecent(t *testing.T) {
	recent := []Entry{{Path: "/music/one.flac"}}
	_, h := newTestPrompt("", recent)

	h.SendDown()
	typeText(h, "x.mp3")
	h.SendEnter()

	if got := getResult(t, h).Path; got != "x.mp3" {
		t.Errorf("Path = %q, want %q", got, "x.mp3")
	}
}

func TestOpenFile_CompleteSingleMatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "etude.flac"))
	touch(t, filepath.Join(dir, "notes.txt"))
	m, h := newTestPrompt(dir, nil)

	typeText(h, "e")
	h.SendTab()

	want := filepath.Join(dir, "etude.flac")
	if m.Text() != want {
		t.Errorf("Text = %q, want %q", m.Text(), want)
	}
}

func TestOpenFile_CompleteDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "scales"), 0o755); err != nil {
		t.Fatal(err)
	}
	m, h := newTestPrompt(dir, nil)

	typeText(h, "sc")
	h.SendTab()

	want := filepath.Join(dir, "scales") + string(filepath.Separator)
	if m.Text() != want {
		t.Errorf("Text = %q, want %q", m.Text(), want)
	}
}

func TestOpenFile_CompleteCommonPrefix(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "solo-1.mp3"))
	touch(t, filepath.Join(dir, "solo-2.mp3"))
	touch(t, filepath.Join(dir, "solo-3.txt"))
	m, h := newTestPrompt(dir, nil)

	typeText(h, "s")
	h.SendTab()

	want := filepath.Join(dir, "solo-")
	if m.Text() != want {
		t.Errorf("Text = %q, want %q", m.Text(), want)
	}
	if err := h.AssertViewContains("solo-2.mp3"); err != "" {
		t.Error(err)
	}
	if err := h.AssertViewNotContains("solo-3.txt"); err != "" {
		t.Error(err)
	}
}

func TestOpenFile_View(t *testing.T) {
	recent := []Entry{{
		Path:     "/music/one.flac",
		Label:    "Artist - One",
		OpenedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}}
	_, h := newTestPrompt("", recent)

	for _, want := range []string{"Open file", "Recent", "Artist - One", "2 hours ago", "Enter: open"} {
		if err := h.AssertViewContains(want); err != "" {
			t.Error(err)
		}
	}
}

func TestOpenFile_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	m.Start("", nil, 0, 0)
	h := testutil.NewPopupHarness(&m)

	if h.View() != "" {
		t.Errorf("View = %q, want empty when size is 0", h.View())
	}
}
