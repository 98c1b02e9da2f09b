// Package app is the root bubbletea model. It owns the practice session and
// turns keys, mouse and remote commands into session operations.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/practicehard/internal/app/popupctl"
	"github.com/llehouerou/practicehard/internal/config"
	"github.com/llehouerou/practicehard/internal/keymap"
	"github.com/llehouerou/practicehard/internal/notify"
	"github.com/llehouerou/practicehard/internal/player"
	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/session"
	"github.com/llehouerou/practicehard/internal/state"
	"github.com/llehouerou/practicehard/internal/tags"
)

// Deps are the collaborators the model drives. Session, Engine, Presets and
// State are required.
type Deps struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Session  *session.Session
	Engine   player.Interface
	Presets  *presets.Store
	State    state.Interface
	Reporter *notify.Reporter
	Remote   *Remote
	File     string // opened on start when set
}

// Model is the root application model containing all state.
type Model struct {
	cfg      *config.Config
	logger   zerolog.Logger
	session  *session.Session
	events   <-chan player.Event
	presets  *presets.Store
	state    state.Interface
	reporter *notify.Reporter
	remote   *Remote
	popups   *popupctl.Manager

	mainKeys  *keymap.Resolver
	inputKeys *keymap.Resolver

	// Loop range inputs
	startInput    textinput.Model
	endInput      textinput.Model
	inputsFocused bool
	focusEnd      bool

	// Current track
	tag      *tags.Tag
	trackKey string
	speeds   []int
	ranges   presets.Ranges
	speedIdx int // last applied speed preset, -1 for none
	cover    string

	skipMs     int
	lastFolder string
	initial    string

	status    string
	statusErr bool

	dragging bool
	ticking  bool
	width    int
	height   int
}

// New creates the application model. Saved settings take precedence over
// configured defaults.
func New(d Deps) Model {
	cfg := d.Config
	if cfg == nil {
		cfg = config.Defaults()
	}

	m := Model{
		cfg:        cfg,
		logger:     d.Logger.With().Str("component", "app").Logger(),
		session:    d.Session,
		events:     d.Engine.Events(),
		presets:    d.Presets,
		state:      d.State,
		reporter:   d.Reporter,
		remote:     d.Remote,
		popups:     popupctl.New(),
		mainKeys:   keymap.NewResolver(keymap.Main()),
		inputKeys:  keymap.NewResolver(keymap.ByContext("inputs")),
		startInput: newRangeInput(),
		endInput:   newRangeInput(),
		speedIdx:   -1,
		skipMs:     cfg.SkipIntervalMs,
		lastFolder: cfg.DefaultFolder,
		initial:    d.File,
	}
	m.speeds, m.ranges = presets.DefaultSpeeds(), presets.Ranges{}

	speed, volume := cfg.DefaultSpeed, cfg.DefaultVolume
	if s, err := m.state.GetSettings(); err != nil {
		m.logger.Warn().Err(err).Msg("read saved settings")
	} else if s != nil {
		speed, volume = s.Speed, s.Volume
		if s.SkipIntervalMs > 0 {
			m.skipMs = s.SkipIntervalMs
		}
		if s.LastFolder != "" {
			m.lastFolder = s.LastFolder
		}
	}
	if m.skipMs <= 0 {
		m.skipMs = config.DefaultSkipIntervalMs
	}
	if speed <= 0 {
		speed = config.DefaultSpeed
	}
	m.session.SetSpeed(min(speed, presets.MaxSpeed))
	m.session.SetVolume(volume)
	return m
}

func newRangeInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "mm:ss"
	ti.Prompt = ""
	ti.CharLimit = 12
	ti.Width = 9
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{WatchEngineEvents(m.events)}
	if m.initial != "" {
		path := m.initial
		cmds = append(cmds, func() tea.Msg { return OpenFileMsg{Path: path} })
	}
	return tea.Batch(cmds...)
}
