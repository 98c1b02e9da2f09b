// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/ui/helpbindings"
	"github.com/llehouerou/practicehard/internal/ui/openfile"
	"github.com/llehouerou/practicehard/internal/ui/popup"
	"github.com/llehouerou/practicehard/internal/ui/rangeeditor"
	"github.com/llehouerou/practicehard/internal/ui/slotpicker"
	"github.com/llehouerou/practicehard/internal/ui/speededitor"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups map[Type]popup.Popup
	sizes  map[Type]popup.SizeConfig
	width  int
	height int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			OpenFile: popup.SizeMedium,
			// All others default to SizeAuto
		},
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		w, h := p.contentSize(p.sizes[t])
		pop.SetSize(w, h)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	if t == None {
		return false
	}
	return p.popups[t] != nil
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	size := p.sizes[t]
	w, h := p.contentSize(size)
	pop.SetSize(w, h)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// contentSize calculates popup content dimensions based on size config.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		w := p.width * size.WidthPct / 100
		h := p.height * size.HeightPct / 100
		return w, h
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// --- Show Methods (convenience wrappers) ---

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowOpenFile displays the open-file prompt.
func (p *Manager) ShowOpenFile(dir string, recent []openfile.Entry) tea.Cmd {
	of := openfile.New()
	w, h := p.contentSize(p.sizes[OpenFile])
	of.Start(dir, recent, w, h)
	return p.Show(OpenFile, &of)
}

// ShowRangeEditor displays the range preset editor.
func (p *Manager) ShowRangeEditor(title string, ranges presets.Ranges) tea.Cmd {
	re := rangeeditor.New(title, ranges)
	return p.Show(RangeEditor, &re)
}

// ShowSpeedEditor displays the speed preset editor.
func (p *Manager) ShowSpeedEditor(title string, speeds []int) tea.Cmd {
	se := speededitor.New(title, speeds)
	return p.Show(SpeedEditor, &se)
}

// ShowSlotPicker asks which full slot to overwrite with start..end.
func (p *Manager) ShowSlotPicker(ranges presets.Ranges, start, end string, context any) tea.Cmd {
	sp := slotpicker.New()
	sp.Show(ranges, start, end, context, p.width, p.height)
	return p.Show(SlotPicker, &sp)
}

// --- Key Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	if active == None {
		return false, nil
	}

	pop := p.popups[active]
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// Forward passes a non-key message, such as a cursor blink, to the active
// popup.
func (p *Manager) Forward(msg tea.Msg) tea.Cmd {
	active := p.ActivePopup()
	if active == None {
		return nil
	}
	updated, cmd := p.popups[active].Update(msg)
	p.popups[active] = updated
	return cmd
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}

		content := pop.View()
		size := p.sizes[t]
		rendered := popup.RenderBordered(content, p.width, p.height, size)
		base = popup.Compose(base, rendered, p.width, p.height)
	}
	return base
}
