package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/config"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/logging"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/tui"
)

// newModel builds the root TUI model and the logger it writes to.
func newModel(cfg *config.Config) (tui.Model, *zap.Logger, error) {
	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return tui.Model{}, nil, err
	}
	model, err := tui.New(tui.Options{
		AccentColor:   cfg.UI.AccentColor,
		Preset:        cfg.Offer.Preset,
		HighlightFade: cfg.Offer.HighlightFade,
		GlowFade:      cfg.Offer.GlowFade,
		Window:        cfg.Emphasis.Window(),
		CopyFeedback:  cfg.Emphasis.CopyFeedback(),
		Logger:        log,
	})
	if err != nil {
		_ = log.Sync()
		return tui.Model{}, nil, err
	}
	return model, log, nil
}

// programOptions returns the bubbletea options cfg asks for.
func programOptions(cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

// killer is the part of *tea.Program the quit handler needs.
type killer interface {
	Kill()
}

// runTUI runs the interactive demo until the user quits.
func runTUI(cfg *config.Config) error {
	model, log, err := newModel(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	p := tea.NewProgram(model, programOptions(cfg)...)
	stop := registerQuitHandler(p, log)
	defer stop()

	log.Info("offer hub started",
		zap.String("preset", cfg.Offer.Preset),
		zap.Bool("highlight_fade", cfg.Offer.HighlightFade),
		zap.Bool("glow_fade", cfg.Offer.GlowFade),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			log.Info("offer hub killed")
		} else {
			log.Error("program exited", zap.Error(err))
		}
		return fmt.Errorf("tui: %w", err)
	}
	log.Info("offer hub stopped")
	return nil
}
