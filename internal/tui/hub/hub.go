// Package hub coordinates the offer indicator and the offer panel: it owns
// the current offer, whether the panel is open, and the two hub-level
// timers (the highlight "active" gate and the new-offer play trigger).
package hub

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/logging"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/phase"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/tui/indicator"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/tui/panels"
)

// Flag names used in phase.ExpiredMsg.
const (
	ActiveFlag = "hub.active"
	PlayFlag   = "hub.play"
)

// panelMaxWidth caps the expanded panel so it stays a side sheet.
const panelMaxWidth = 64

// Options configure a new Hub.
type Options struct {
	Initial       *offer.Data // nil means offer.Default()
	HighlightFade bool
	GlowFade      bool
	Window        time.Duration // emphasis window; 0 means phase.EmphasisWindow
	CopyFeedback  time.Duration // 0 means phase.CopyFeedbackWindow
	Clipboard     panels.Clipboard
	Scheduler     phase.Scheduler
	Logger        *zap.Logger
}

// Hub is the offer hub widget.
type Hub struct {
	data          offer.Data
	panelOpen     bool
	highlightFade bool
	glowFade      bool
	active        phase.Flag
	play          phase.Flag
	indicator     indicator.Indicator
	panel         panels.OfferPanel
	init          tea.Cmd
	log           *zap.Logger
	width         int
	height        int
}

// New creates a hub showing opts.Initial with the panel closed. Timers the
// initial state requires are returned by Init.
func New(opts Options) Hub {
	data := offer.Default()
	if opts.Initial != nil {
		data = *opts.Initial
	}
	log := logging.OrNop(opts.Logger)
	h := Hub{
		data:          data,
		highlightFade: opts.HighlightFade,
		glowFade:      opts.GlowFade,
		active:        phase.NewFlag(ActiveFlag, opts.Window, opts.Scheduler).Set(true),
		play:          phase.NewFlag(PlayFlag, opts.Window, opts.Scheduler),
		indicator: indicator.New(indicator.Options{
			Window:    opts.Window,
			Scheduler: opts.Scheduler,
			Logger:    log.Named("indicator"),
		}),
		panel: panels.NewOfferPanel(panelMaxWidth, 24, panels.PanelOptions{
			Clipboard:    opts.Clipboard,
			CopyFeedback: opts.CopyFeedback,
			Scheduler:    opts.Scheduler,
			Logger:       log.Named("panel"),
		}),
		log: log,
	}
	var cmds []tea.Cmd
	if h.highlightFade {
		var cmd tea.Cmd
		h.active, cmd = h.active.Arm()
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	h, cmd = h.sync()
	h.init = tea.Batch(append(cmds, cmd)...)
	return h
}

// Init returns the commands for timers armed by New.
func (h Hub) Init() tea.Cmd { return h.init }

// Offer returns the current offer.
func (h Hub) Offer() offer.Data { return h.data }

// PanelOpen reports whether the panel is expanded.
func (h Hub) PanelOpen() bool { return h.panelOpen }

// Active reports the highlight gate.
func (h Hub) Active() bool { return h.active.On() }

// Playing reports whether the new-offer animation trigger is raised.
func (h Hub) Playing() bool { return h.play.On() }

// HighlightFade reports the highlight-fade trigger.
func (h Hub) HighlightFade() bool { return h.highlightFade }

// GlowFade reports the glow-fade trigger.
func (h Hub) GlowFade() bool { return h.glowFade }

// Appearance returns the indicator's current appearance.
func (h Hub) Appearance() indicator.Appearance { return h.indicator.Appearance() }

// Panel returns the offer panel.
func (h Hub) Panel() panels.OfferPanel { return h.panel }

// SetOfferData replaces the offer wholesale. The highlight gate is reset to
// active and, if highlight-fade is requested, its window restarts.
func (h Hub) SetOfferData(d offer.Data) (Hub, tea.Cmd) {
	h.data = d
	var armCmd tea.Cmd
	if h.highlightFade {
		h.active, armCmd = h.active.Arm()
	} else {
		h.active = h.active.Set(true)
	}
	h.log.Debug("offer replaced",
		zap.Stringer("type", d.Type),
		zap.String("value", d.Value),
		zap.Bool("new", d.IsNew),
	)
	h, cmd := h.sync()
	return h, tea.Batch(armCmd, cmd)
}

// SetHighlightFade sets the highlight-fade trigger. Raising it while the
// gate is active restarts the gate's window; withdrawing it drops the
// pending expiry and leaves the gate as it is.
func (h Hub) SetHighlightFade(on bool) (Hub, tea.Cmd) {
	if on == h.highlightFade {
		return h, nil
	}
	h.highlightFade = on
	var armCmd tea.Cmd
	switch {
	case on && h.active.On():
		h.active, armCmd = h.active.Arm()
	case !on:
		h.active = h.active.Cancel()
	}
	h.log.Debug("highlight fade set", zap.Bool("on", on))
	h, cmd := h.sync()
	return h, tea.Batch(armCmd, cmd)
}

// SetGlowFade sets the glow-fade trigger.
func (h Hub) SetGlowFade(on bool) (Hub, tea.Cmd) {
	h.glowFade = on
	return h.sync()
}

// PlayNewAnimation raises the new-offer trigger for one emphasis window.
// Raising it again while it is up restarts both the trigger and the
// indicator's full-message window.
func (h Hub) PlayNewAnimation() (Hub, tea.Cmd) {
	replay := h.play.On()
	var armCmd, cmd tea.Cmd
	h.play, armCmd = h.play.Arm()
	h.log.Debug("new offer animation", zap.Bool("replay", replay))
	if replay {
		h.indicator, cmd = h.indicator.Replay()
	} else {
		h, cmd = h.sync()
	}
	return h, tea.Batch(armCmd, cmd)
}

// TogglePanel opens or closes the panel.
func (h Hub) TogglePanel() (Hub, tea.Cmd) {
	h.panelOpen = !h.panelOpen
	h.log.Debug("panel toggled", zap.Bool("open", h.panelOpen))
	return h.sync()
}

// ClosePanel closes the panel.
func (h Hub) ClosePanel() (Hub, tea.Cmd) {
	if !h.panelOpen {
		return h, nil
	}
	return h.TogglePanel()
}

// Advance moves the indicator animation one frame.
func (h Hub) Advance() Hub {
	h.indicator = h.indicator.Advance()
	return h
}

// SetSize sets the area the hub may draw in.
func (h Hub) SetSize(w, height int) Hub {
	h.width = w
	h.height = height
	pw := min(w, panelMaxWidth)
	ph := height - lipgloss.Height(h.indicator.View())
	h.panel = h.panel.SetSize(pw, max(ph, 8))
	return h
}

// sync pushes the hub state into the indicator and panel.
func (h Hub) sync() (Hub, tea.Cmd) {
	var cmd tea.Cmd
	h.indicator, cmd = h.indicator.SetProps(indicator.Props{
		Offer:             h.data,
		PanelOpen:         h.panelOpen,
		PlayNewAnimation:  h.play.On(),
		ShowHighlightFade: h.highlightFade && h.active.On(),
		Active:            h.active.On(),
		ShowGlowFade:      h.glowFade,
	})
	d := h.data
	h.panel = h.panel.SetOffer(&d)
	return h, cmd
}

// Update routes timer expiries, indicator clicks, panel close requests and
// input. enter and space always reach the indicator; other keys go to the
// panel while it is open. Mouse coordinates are relative to the hub's
// top-left corner.
func (h Hub) Update(msg tea.Msg) (Hub, tea.Cmd) {
	switch msg := msg.(type) {
	case phase.ExpiredMsg:
		var ok bool
		if h.active, ok = h.active.Expire(msg); ok {
			h.log.Debug("flag expired", zap.String("flag", ActiveFlag))
			return h.sync()
		}
		if h.play, ok = h.play.Expire(msg); ok {
			h.log.Debug("flag expired", zap.String("flag", PlayFlag))
			return h.sync()
		}
		var cmd tea.Cmd
		h.indicator, _ = h.indicator.Update(msg)
		h.panel, cmd = h.panel.Update(msg)
		return h, cmd

	case indicator.TogglePanelMsg:
		return h.TogglePanel()

	case panels.CloseMsg:
		return h.ClosePanel()

	case tea.KeyMsg:
		var cmd tea.Cmd
		if h.panelOpen && !isClickKey(msg) {
			h.panel, cmd = h.panel.Update(msg)
		} else {
			h.indicator, cmd = h.indicator.Update(msg)
		}
		return h, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && h.onIndicator(msg.X, msg.Y) {
			return h, h.indicator.Click()
		}
		if h.panelOpen {
			var cmd tea.Cmd
			h.panel, cmd = h.panel.Update(msg)
			return h, cmd
		}
	}
	return h, nil
}

func isClickKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", " ":
		return true
	}
	return false
}

// onIndicator reports whether the cell at x, y is covered by the
// indicator, which is drawn flush right on the hub's first rows.
func (h Hub) onIndicator(x, y int) bool {
	v := h.indicator.View()
	w, ht := lipgloss.Width(v), lipgloss.Height(v)
	return y >= 0 && y < ht && x >= h.width-w && x < h.width
}

// View draws the indicator with the panel below it when open, right-aligned.
func (h Hub) View() string {
	if !h.panelOpen {
		return h.indicator.View()
	}
	return lipgloss.JoinVertical(lipgloss.Right, h.indicator.View(), h.panel.View())
}
