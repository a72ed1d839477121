package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/effects"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/logging"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/phase"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/tui/hub"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/tui/panels"
)

// Options configure the demo application.
type Options struct {
	AccentColor   string // "" means the default indigo
	Preset        string // initial offer preset; "" means offer.Default()
	HighlightFade bool
	GlowFade      bool
	Window        time.Duration // emphasis window; 0 means phase.EmphasisWindow
	CopyFeedback  time.Duration // 0 means phase.CopyFeedbackWindow
	Clipboard     panels.Clipboard
	Scheduler     phase.Scheduler
	Logger        *zap.Logger
}

// Model is the root bubbletea model: the demo controls around one offer hub,
// plus flash offers, the usage guide and toasts.
type Model struct {
	hub      hub.Hub
	effects  effects.Manager
	toast    components.Toast
	guide    Guide
	help     help.Model
	keys     KeyMap
	followUp phase.Flag

	layout Layout
	theme  Theme
	width  int
	height int

	startedAt time.Time
	now       time.Time

	init tea.Cmd
	log  *zap.Logger
}

// New creates the demo model. It fails only for an unknown preset name.
func New(opts Options) (Model, error) {
	log := logging.OrNop(opts.Logger)
	clip := opts.Clipboard
	if clip == nil {
		clip = panels.SystemClipboard{}
	}

	var initial *offer.Data
	fullMessage := false
	if opts.Preset != "" {
		p, err := offer.LookupPreset(opts.Preset)
		if err != nil {
			return Model{}, err
		}
		d := p(offer.Default())
		initial = &d
		fullMessage = opts.Preset == "full-message"
	}

	now := time.Now()
	layout := Calculate(80, 24)
	m := Model{
		hub: hub.New(hub.Options{
			Initial:       initial,
			HighlightFade: opts.HighlightFade,
			GlowFade:      opts.GlowFade,
			Window:        opts.Window,
			CopyFeedback:  opts.CopyFeedback,
			Clipboard:     clip,
			Scheduler:     opts.Scheduler,
			Logger:        log.Named("hub"),
		}),
		effects: effects.NewManager(effects.Options{
			Scheduler: opts.Scheduler,
			Clipboard: clip,
			Logger:    log.Named("effects"),
		}),
		toast:     components.NewToast(opts.CopyFeedback, opts.Scheduler),
		guide:     NewGuide(guideWrap+4, 18),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		followUp:  phase.NewFlag(FollowUpFlag, opts.Window, opts.Scheduler),
		layout:    layout,
		theme:     NewTheme(opts.AccentColor),
		width:     80,
		height:    24,
		startedAt: now,
		now:       now,
		log:       log,
	}
	m.hub = m.hub.SetSize(layout.Hub.Width, layout.Hub.Height)

	if fullMessage {
		var play, follow tea.Cmd
		m.hub, play = m.hub.PlayNewAnimation()
		m.followUp, follow = m.followUp.Arm()
		m.init = tea.Batch(play, follow)
	}
	return m, nil
}

// Init returns the hub's timers and the clock ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.hub.Init(), m.init, tickCmd())
}

// Hub returns the hosted offer hub.
func (m Model) Hub() hub.Hub { return m.hub }

// Effects returns the flash offer manager.
func (m Model) Effects() effects.Manager { return m.effects }

// Toast returns the visible notice, or "".
func (m Model) Toast() string { return m.toast.Text() }

// Focus reports what receives keyboard input.
func (m Model) Focus() FocusTarget {
	switch {
	case m.guide.Open():
		return FocusGuide
	case m.hub.PanelOpen():
		return FocusPanel
	default:
		return FocusDemo
	}
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.now = time.Time(msg)
		m.hub = m.hub.Advance()
		m.effects = m.effects.Tick(time.Second)
		return m, tickCmd()
	case phase.ExpiredMsg:
		return m.handleExpired(msg)
	case effects.IntroDoneMsg:
		m.effects = m.effects.Update(msg)
		return m, nil
	case panels.ToastMsg:
		return m.showToast(msg.Text, msg.Err)
	case tea.MouseMsg:
		if m.guide.Open() {
			var cmd tea.Cmd
			m.guide, cmd = m.guide.Update(msg)
			return m, cmd
		}
		if m.layout.TooSmall {
			return m, nil
		}
		msg.X -= m.layout.Hub.X
		msg.Y -= m.layout.Hub.Y
		var cmd tea.Cmd
		m.hub, cmd = m.hub.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.hub, cmd = m.hub.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = Calculate(msg.Width, msg.Height)
	m.help.Width = msg.Width
	if !m.layout.TooSmall {
		m.hub = m.hub.SetSize(m.layout.Hub.Width, m.layout.Hub.Height)
		m.guide = m.guide.SetSize(min(msg.Width-4, guideWrap+4), max(m.layout.Hub.Height-2, 1))
	}
	return m
}

func (m Model) handleExpired(msg phase.ExpiredMsg) (tea.Model, tea.Cmd) {
	switch msg.Name {
	case FollowUpFlag:
		var ok bool
		if m.followUp, ok = m.followUp.Expire(msg); !ok {
			return m, nil
		}
		var cmd tea.Cmd
		m.hub, cmd = m.hub.SetOfferData(offer.FullMessageFollowUp(m.hub.Offer()))
		return m, cmd
	case components.ToastFlag:
		m.toast = m.toast.Update(msg)
		return m, nil
	}
	var cmd tea.Cmd
	m.hub, cmd = m.hub.Update(msg)
	return m, cmd
}

func (m Model) showToast(text string, isErr bool) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.Show(text, isErr)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.guide = m.guide.Toggle()
		return m, nil
	}

	switch m.Focus() {
	case FocusGuide:
		if msg.String() == "esc" {
			m.guide = m.guide.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.guide, cmd = m.guide.Update(msg)
		return m, cmd
	case FocusPanel:
		var cmd tea.Cmd
		m.hub, cmd = m.hub.Update(msg)
		return m, cmd
	}
	return m.handleDemoKey(msg)
}

// handleDemoKey maps the demo controls onto the hub and flash offers.
func (m Model) handleDemoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Basic):
		return m.applyPreset(offer.Basic)
	case key.Matches(msg, m.keys.JustIcon):
		return m.applyPreset(offer.JustIcon)
	case key.Matches(msg, m.keys.IconWithWord):
		return m.applyPreset(offer.IconWithWord)
	case key.Matches(msg, m.keys.FullMessage):
		return m.showFullMessage()
	case key.Matches(msg, m.keys.Reward):
		return m.applyPreset(offer.Reward)
	case key.Matches(msg, m.keys.Sale):
		return m.applyPreset(offer.Sale)
	case key.Matches(msg, m.keys.Urgent):
		return m.applyPreset(offer.Urgent)
	case key.Matches(msg, m.keys.ToggleBackground):
		return m.applyPreset(offer.ToggleBackground)
	case key.Matches(msg, m.keys.ToggleDot):
		return m.applyPreset(offer.ToggleDot)

	case key.Matches(msg, m.keys.Play):
		m.hub, cmd = m.hub.PlayNewAnimation()
	case key.Matches(msg, m.keys.HighlightFade):
		m.hub, cmd = m.hub.SetHighlightFade(!m.hub.HighlightFade())
	case key.Matches(msg, m.keys.GlowFade):
		m.hub, cmd = m.hub.SetGlowFade(!m.hub.GlowFade())

	case key.Matches(msg, m.keys.Flash):
		m.effects, _, cmd = m.effects.Start(flashKeys[msg.String()])
	case key.Matches(msg, m.keys.Open, m.keys.Claim, m.keys.Copy, m.keys.Close):
		return m.handleEffectKey(msg)

	default:
		// enter, space and x belong to the indicator.
		m.hub, cmd = m.hub.Update(msg)
	}
	return m, cmd
}

// applyPreset replaces the offer. A pending full-message follow-up is
// dropped so it cannot overwrite the new offer.
func (m Model) applyPreset(p offer.Preset) (Model, tea.Cmd) {
	m.followUp = m.followUp.Clear()
	var cmd tea.Cmd
	m.hub, cmd = m.hub.SetOfferData(p(m.hub.Offer()))
	return m, cmd
}

// showFullMessage stages the full offer message: show it, play the
// animation and collapse it after the emphasis window.
func (m Model) showFullMessage() (Model, tea.Cmd) {
	m, set := m.applyPreset(offer.FullMessage)
	var play, follow tea.Cmd
	m.hub, play = m.hub.PlayNewAnimation()
	m.followUp, follow = m.followUp.Arm()
	return m, tea.Batch(set, play, follow)
}

// handleEffectKey drives the newest flash offer.
func (m Model) handleEffectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s, ok := m.effects.Focused()
	if !ok {
		return m, nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Open):
		m.effects, err = m.effects.Open(s.ID)
	case key.Matches(msg, m.keys.Claim):
		if m.effects, err = m.effects.Claim(s.ID); err == nil {
			return m.showToast(s.Offer().ClaimedTitle, false)
		}
	case key.Matches(msg, m.keys.Close):
		m.effects, err = m.effects.Cancel(s.ID)
	case key.Matches(msg, m.keys.Copy):
		if _, err = m.effects.Copy(s.ID); err == nil {
			return m.showToast("Code Copied!", false)
		}
		if !errors.Is(err, effects.ErrNoCode) && !errors.Is(err, effects.ErrWrongStage) {
			return m.showToast("Copy failed", true)
		}
	}
	if err != nil {
		m.log.Debug("flash offer key ignored", zap.String("key", msg.String()), zap.Error(err))
	}
	return m, nil
}

// View renders the full demo screen.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, minWidth, minHeight)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	header := panels.RenderHeader(panels.HeaderProps{
		Offer:         m.hub.Offer(),
		Variant:       m.hub.Appearance().Variant.String(),
		HighlightFade: m.hub.HighlightFade(),
		GlowFade:      m.hub.GlowFade(),
		Flashes:       len(m.effects.Sessions()),
		Elapsed:       m.now.Sub(m.startedAt),
		Clock:         m.now,
	}, m.layout.Header.Width, m.theme.AccentHeaderStyle())

	footer := panels.RenderFooter(panels.FooterProps{
		Focus: m.Focus().String(),
		Toast: m.toast.View(),
		Help:  m.help.View(m.keys),
	}, m.layout.Footer.Width)

	var body string
	if m.guide.Open() {
		box := m.theme.PanelBorderStyle(true).Render(m.guide.View())
		body = lipgloss.Place(m.width, m.layout.Hub.Height, lipgloss.Center, lipgloss.Center, box)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.effectsView(), m.hubView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) effectsView() string {
	r := m.layout.Effects
	sessions := m.effects.Sessions()
	if len(sessions) == 0 {
		return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center,
			dimStyle.Render("press 1-5 for a flash offer"))
	}
	focused, _ := m.effects.Focused()
	views := make([]string, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, m.theme.RenderSession(s, s.ID == focused.ID, r.Width))
	}
	col := strings.Join(views, "\n")
	return lipgloss.NewStyle().Width(r.Width).Height(r.Height).MaxHeight(r.Height).Render(col)
}

func (m Model) hubView() string {
	r := m.layout.Hub
	return lipgloss.NewStyle().
		Width(r.Width).
		Height(r.Height).
		MaxHeight(r.Height).
		Align(lipgloss.Right).
		Render(m.hub.View())
}
