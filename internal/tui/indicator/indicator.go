package indicator

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/logging"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/phase"
)

// Flag names used in phase.ExpiredMsg.
const (
	FullMessageFlag = "indicator.full-message"
	GlowFadeFlag    = "indicator.glow-fade"
)

// TogglePanelMsg is emitted when the indicator is clicked.
type TogglePanelMsg struct{}

// Options configure a new Indicator.
type Options struct {
	Window    time.Duration   // emphasis window; 0 means phase.EmphasisWindow
	Scheduler phase.Scheduler // nil means phase.TickScheduler
	Logger    *zap.Logger
}

// Indicator is the floating offer button. It owns the full-message and
// glow-fade flags and re-evaluates them whenever its props change.
type Indicator struct {
	props       Props
	fullMessage phase.Flag
	glowFade    phase.Flag
	frame       int
	log         *zap.Logger
}

// New creates an indicator with empty props.
func New(opts Options) Indicator {
	return Indicator{
		fullMessage: phase.NewFlag(FullMessageFlag, opts.Window, opts.Scheduler),
		glowFade:    phase.NewFlag(GlowFadeFlag, opts.Window, opts.Scheduler),
		log:         logging.OrNop(opts.Logger),
	}
}

// Props returns the current inputs.
func (in Indicator) Props() Props { return in.props }

// Phase returns the current phase flags.
func (in Indicator) Phase() Phase {
	return Phase{FullMessage: in.fullMessage.On(), GlowFade: in.glowFade.On()}
}

// Appearance derives the current appearance.
func (in Indicator) Appearance() Appearance {
	return Derive(in.props, in.Phase())
}

// SetProps replaces the inputs and arms or clears the phase flags whose
// trigger changed. The glow-fade flag follows ShowHighlightFade && IsNew;
// the full-message flag follows rising and falling edges of
// PlayNewAnimation.
func (in Indicator) SetProps(p Props) (Indicator, tea.Cmd) {
	prev := in.props
	in.props = p
	var cmds []tea.Cmd

	glowWas := prev.ShowHighlightFade && prev.Offer.IsNew
	glowNow := p.ShowHighlightFade && p.Offer.IsNew
	if glowNow != glowWas {
		if glowNow {
			var cmd tea.Cmd
			in.glowFade, cmd = in.glowFade.Arm()
			cmds = append(cmds, cmd)
			in.log.Debug("flag armed", zap.String("flag", GlowFadeFlag))
		} else {
			in.glowFade = in.glowFade.Clear()
			in.log.Debug("flag cleared", zap.String("flag", GlowFadeFlag))
		}
	}

	if p.PlayNewAnimation != prev.PlayNewAnimation {
		if p.PlayNewAnimation {
			var cmd tea.Cmd
			in, cmd = in.armFullMessage()
			cmds = append(cmds, cmd)
		} else {
			in.fullMessage = in.fullMessage.Clear()
			in.log.Debug("flag cleared", zap.String("flag", FullMessageFlag))
		}
	}

	return in, tea.Batch(cmds...)
}

// Replay restarts the full-message window when the new-offer animation is
// triggered again while it is already playing.
func (in Indicator) Replay() (Indicator, tea.Cmd) {
	if !in.props.PlayNewAnimation {
		return in, nil
	}
	return in.armFullMessage()
}

func (in Indicator) armFullMessage() (Indicator, tea.Cmd) {
	var cmd tea.Cmd
	in.fullMessage, cmd = in.fullMessage.Arm()
	in.log.Debug("flag armed", zap.String("flag", FullMessageFlag))
	return in, cmd
}

// Click is the indicator's onTogglePanel callback.
func (in Indicator) Click() tea.Cmd {
	return func() tea.Msg { return TogglePanelMsg{} }
}

// Dismiss handles the inline dismiss control. It clears the full message
// without toggling the panel and reports whether the control was present.
func (in Indicator) Dismiss() (Indicator, bool) {
	if in.Appearance().Variant != VariantIconText || !in.fullMessage.On() {
		return in, false
	}
	in.fullMessage = in.fullMessage.Clear()
	in.log.Debug("full message dismissed")
	return in, true
}

// Advance moves the gradient animation one frame.
func (in Indicator) Advance() Indicator {
	in.frame++
	return in
}

// Update handles phase expiries and the indicator keys: enter/space click
// and x dismiss.
func (in Indicator) Update(msg tea.Msg) (Indicator, tea.Cmd) {
	switch msg := msg.(type) {
	case phase.ExpiredMsg:
		var ok bool
		if in.fullMessage, ok = in.fullMessage.Expire(msg); ok {
			in.log.Debug("flag expired", zap.String("flag", FullMessageFlag))
		}
		if in.glowFade, ok = in.glowFade.Expire(msg); ok {
			in.log.Debug("flag expired", zap.String("flag", GlowFadeFlag))
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			return in, in.Click()
		case "x":
			in, _ = in.Dismiss()
		}
	}
	return in, nil
}

// View renders the indicator.
func (in Indicator) View() string {
	return Render(in.Appearance(), in.frame)
}
