package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/practicehard/internal/app"
	"github.com/llehouerou/practicehard/internal/config"
	"github.com/llehouerou/practicehard/internal/logging"
	"github.com/llehouerou/practicehard/internal/mpris"
	"github.com/llehouerou/practicehard/internal/notify"
	"github.com/llehouerou/practicehard/internal/player"
	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/session"
	"github.com/llehouerou/practicehard/internal/slice"
	"github.com/llehouerou/practicehard/internal/state"
	"github.com/llehouerou/practicehard/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	logger.Info().Msg("starting")

	// Decoder libraries write to fd 2, which would corrupt the TUI
	if err := stderr.Start(); err != nil {
		logger.Warn().Err(err).Msg("capture stderr")
	} else {
		go stderr.Forward(logger)
		defer stderr.Stop()
	}

	engine := player.New(player.Options{
		PositionInterval: cfg.PositionInterval(),
		Buffer:           cfg.Buffer(),
	})
	defer engine.Close()

	slicer, err := slice.New(cfg.ScratchDir, logger)
	if err != nil {
		return err
	}
	sess := session.New(engine, slicer, logger)
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Warn().Err(err).Msg("remove scratch slices")
		}
	}()

	presetsPath := cfg.PresetsFile
	if presetsPath == "" {
		presetsPath = presets.DefaultPath()
	}
	store, err := presets.Open(presetsPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", presetsPath).Msg("load presets, starting empty")
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	reporter := newReporter(cfg, logger)

	remote := app.NewRemote()
	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(remote)
		if err != nil {
			logger.Warn().Err(err).Msg("mpris unavailable")
		} else {
			defer adapter.Close()
		}
	}

	var file string
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	m := app.New(app.Deps{
		Config:   cfg,
		Logger:   logger,
		Session:  sess,
		Engine:   engine,
		Presets:  store,
		State:    stateMgr,
		Reporter: reporter,
		Remote:   remote,
		File:     file,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	remote.Attach(p)

	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info().Msg("exiting")
	return nil
}

func newReporter(cfg *config.Config, logger zerolog.Logger) *notify.Reporter {
	if !cfg.NotificationsEnabled() {
		return notify.NewReporter(nil)
	}
	n, err := notify.New()
	if err != nil {
		logger.Warn().Err(err).Msg("desktop notifications unavailable")
		return notify.NewReporter(nil)
	}
	return notify.NewReporter(n)
}
