// Package effects runs the flash offer sessions: short-lived promotional
// effects that play an intro, settle into a badge, open into a modal and
// end claimed. Each session is an explicit handle with its own lifecycle;
// cancelling one never affects another.
package effects

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/logging"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/phase"
)

// Kind selects a flash offer.
type Kind int

const (
	KindCenter Kind = iota // centre burst, then a countdown badge
	KindLeft               // left-edge reward badge
	KindMove               // badge that travels in from the side
	KindEarn               // coin earnings widget
	KindCode               // gift code hint
)

// Kinds lists every kind in menu order.
var Kinds = []Kind{KindCenter, KindLeft, KindMove, KindEarn, KindCode}

// String returns the kind's short name.
func (k Kind) String() string {
	switch k {
	case KindCenter:
		return "center"
	case KindLeft:
		return "left"
	case KindMove:
		return "move"
	case KindEarn:
		return "earn"
	case KindCode:
		return "code"
	default:
		return "unknown"
	}
}

// Stage is a session's position in its lifecycle.
type Stage int

const (
	StageIntro Stage = iota
	StageBadge
	StageModal
	StageClaimed
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StageBadge:
		return "badge"
	case StageModal:
		return "modal"
	case StageClaimed:
		return "claimed"
	default:
		return "unknown"
	}
}

// UrgentThreshold is the remaining time below which a countdown turns
// urgent.
const UrgentThreshold = 60 * time.Second

// EarnRate is the number of coins an earnings badge credits per minute.
const EarnRate = 5

// Offer is the static content of a flash offer.
type Offer struct {
	Kind         Kind
	Intro        time.Duration // intro animation length
	Countdown    time.Duration // badge lifetime; 0 means no countdown
	Badge        string
	Title        string
	Subtitle     string
	Code         string // copyable code; empty for none
	Lines        []string
	ClaimLabel   string
	ClaimedTitle string
	ClaimedText  string
}

var offers = map[Kind]Offer{
	KindCenter: {
		Kind:      KindCenter,
		Intro:     2 * time.Second,
		Countdown: 10 * time.Minute,
		Badge:     "⚡ Flash Offer",
		Title:     "Docker Pro Flash Offer",
		Subtitle:  "Limited time special - act now!",
		Code:      "DOCKERPRO50",
		Lines: []string{
			"Regular Price       $299/year",
			"Flash Sale Price    $149  50% OFF",
			"✓ Unlimited private repositories",
			"✓ Advanced build features",
			"✓ Priority support",
		},
		ClaimLabel:   "Claim This Offer",
		ClaimedTitle: "Offer Claimed!",
		ClaimedText:  "Your Docker Pro subscription is now active.",
	},
	KindLeft: {
		Kind:     KindLeft,
		Intro:    1800 * time.Millisecond,
		Badge:    "★ Reward",
		Title:    "Special Event Reward",
		Subtitle: "Limited time offer - claim now!",
		Lines: []string{
			"Event Points        +500",
			"Booster             +25% (48h)",
			"Profile Badge       Exclusive",
		},
		ClaimLabel:   "Claim Rewards Now",
		ClaimedTitle: "Rewards Claimed!",
		ClaimedText:  "The rewards have been added to your account.",
	},
	KindMove: {
		Kind:     KindMove,
		Intro:    4 * time.Second,
		Badge:    "📦 Bundle -75%",
		Title:    "Premium Bundle Offer",
		Subtitle: "Everything you need in one pack",
		Lines: []string{
			"Premium Currency    5,000",
			"Legendary Skin      Dragon Slayer",
			"XP Booster          7 days",
			"Bundle Price        -75%",
		},
		ClaimLabel:   "Purchase Now",
		ClaimedTitle: "Purchase Complete!",
		ClaimedText:  "Your bundle items are in your inventory.",
	},
	KindEarn: {
		Kind:     KindEarn,
		Intro:    2 * time.Second,
		Badge:    "🪙 +500 COINS",
		Title:    "Coin Earnings",
		Subtitle: "+5 coins/min while you play",
		Lines: []string{
			"Welcome bonus       +500",
			"Earning rate        +5 coins/min",
		},
		ClaimLabel:   "Collect Coins",
		ClaimedTitle: "Coins Collected!",
		ClaimedText:  "Your coins have been added to your balance.",
	},
	KindCode: {
		Kind:     KindCode,
		Intro:    4 * time.Second,
		Badge:    "🎁 Gift Code",
		Title:    "Gift Code Available!",
		Subtitle: "Use code NEWUSER25 for 25% off your first purchase.",
		Code:     "NEWUSER25",
		Lines: []string{
			"Original total      $100.00",
			"Discount (25%)      -$25.00",
			"New total           $75.00",
		},
		ClaimLabel:   "Use Now",
		ClaimedTitle: "Gift Code Applied!",
		ClaimedText:  "Your code NEWUSER25 has been applied. You've received a 25% discount on your purchase.",
	},
}

// OfferFor returns the content of kind k.
func OfferFor(k Kind) (Offer, bool) {
	o, ok := offers[k]
	return o, ok
}

// SessionID identifies a running session.
type SessionID uint64

// Session is one running flash offer.
type Session struct {
	ID        SessionID
	Kind      Kind
	Stage     Stage
	Remaining time.Duration // countdown left; 0 when the offer has none
	Coins     int           // KindEarn running total

	earning time.Duration // time towards the next EarnRate credit
}

// Urgent reports whether the countdown is in its final minute.
func (s Session) Urgent() bool {
	return s.Remaining > 0 && s.Remaining <= UrgentThreshold
}

// Offer returns the session's static content.
func (s Session) Offer() Offer { return offers[s.Kind] }

// IntroDoneMsg ends a session's intro stage.
type IntroDoneMsg struct {
	ID SessionID
}

// Clipboard is the write side of the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Options configure a Manager.
type Options struct {
	Scheduler phase.Scheduler // nil means phase.TickScheduler
	Clipboard Clipboard
	Logger    *zap.Logger
}

// Errors returned by Manager operations.
var (
	ErrUnknownSession = errors.New("effects: unknown session")
	ErrWrongStage     = errors.New("effects: wrong stage")
	ErrNoCode         = errors.New("effects: offer has no code")
)

// Manager owns every running session.
type Manager struct {
	sessions []Session
	nextID   SessionID
	sched    phase.Scheduler
	clip     Clipboard
	log      *zap.Logger
}

// NewManager creates an empty manager.
func NewManager(opts Options) Manager {
	sched := opts.Scheduler
	if sched == nil {
		sched = phase.TickScheduler{}
	}
	return Manager{sched: sched, clip: opts.Clipboard, log: logging.OrNop(opts.Logger)}
}

// Start launches a session of kind k in its intro stage.
func (m Manager) Start(k Kind) (Manager, SessionID, tea.Cmd) {
	o, ok := offers[k]
	if !ok {
		return m, 0, nil
	}
	m.nextID++
	s := Session{ID: m.nextID, Kind: k, Stage: StageIntro}
	if k == KindEarn {
		s.Coins = 500
	}
	m.sessions = append(append([]Session(nil), m.sessions...), s)
	m.log.Debug("effect started", zap.Stringer("kind", k), zap.Uint64("session", uint64(s.ID)))
	return m, s.ID, m.sched.After(o.Intro, IntroDoneMsg{ID: s.ID})
}

// Sessions returns the running sessions, oldest first.
func (m Manager) Sessions() []Session {
	return append([]Session(nil), m.sessions...)
}

// Get returns session id.
func (m Manager) Get(id SessionID) (Session, bool) {
	if i := m.index(id); i >= 0 {
		return m.sessions[i], true
	}
	return Session{}, false
}

// Focused returns the newest session, which receives effect keys.
func (m Manager) Focused() (Session, bool) {
	if len(m.sessions) == 0 {
		return Session{}, false
	}
	return m.sessions[len(m.sessions)-1], true
}

func (m Manager) index(id SessionID) int {
	for i, s := range m.sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// set replaces session i on a fresh backing array.
func (m Manager) set(i int, s Session) Manager {
	m.sessions = append([]Session(nil), m.sessions...)
	m.sessions[i] = s
	return m
}

// Cancel disposes of session id at any stage. Pending messages for it are
// ignored when they arrive.
func (m Manager) Cancel(id SessionID) (Manager, error) {
	i := m.index(id)
	if i < 0 {
		return m, fmt.Errorf("cancel %d: %w", id, ErrUnknownSession)
	}
	rest := make([]Session, 0, len(m.sessions)-1)
	rest = append(rest, m.sessions[:i]...)
	m.sessions = append(rest, m.sessions[i+1:]...)
	m.log.Debug("effect cancelled", zap.Uint64("session", uint64(id)))
	return m, nil
}

// Open moves a badge to its modal.
func (m Manager) Open(id SessionID) (Manager, error) {
	return m.advance(id, StageBadge, StageModal)
}

// Claim completes an open modal.
func (m Manager) Claim(id SessionID) (Manager, error) {
	return m.advance(id, StageModal, StageClaimed)
}

func (m Manager) advance(id SessionID, from, to Stage) (Manager, error) {
	i := m.index(id)
	if i < 0 {
		return m, fmt.Errorf("%s %d: %w", to, id, ErrUnknownSession)
	}
	s := m.sessions[i]
	if s.Stage != from {
		return m, fmt.Errorf("%s %d from %s: %w", to, id, s.Stage, ErrWrongStage)
	}
	s.Stage = to
	if to == StageClaimed {
		s.Remaining = 0
	}
	m.log.Debug("effect stage", zap.Uint64("session", uint64(id)), zap.Stringer("stage", to))
	return m.set(i, s), nil
}

// Copy writes the session's code to the clipboard. It is available once the
// intro has finished and until the offer is claimed.
func (m Manager) Copy(id SessionID) (string, error) {
	s, ok := m.Get(id)
	if !ok {
		return "", fmt.Errorf("copy %d: %w", id, ErrUnknownSession)
	}
	code := s.Offer().Code
	if code == "" {
		return "", fmt.Errorf("copy %d: %w", id, ErrNoCode)
	}
	if s.Stage != StageBadge && s.Stage != StageModal {
		return "", fmt.Errorf("copy %d from %s: %w", id, s.Stage, ErrWrongStage)
	}
	if m.clip == nil {
		return "", fmt.Errorf("copy %d: no clipboard", id)
	}
	if err := m.clip.WriteAll(code); err != nil {
		m.log.Warn("clipboard write failed", zap.String("code", code), zap.Error(err))
		return "", fmt.Errorf("copy %d: %w", id, err)
	}
	return code, nil
}

// Tick advances countdowns and earnings by elapsed. Sessions whose
// countdown runs out are removed.
func (m Manager) Tick(elapsed time.Duration) Manager {
	if len(m.sessions) == 0 {
		return m
	}
	next := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		if s.Stage != StageBadge && s.Stage != StageModal {
			next = append(next, s)
			continue
		}
		if s.Remaining > 0 {
			s.Remaining -= elapsed
			if s.Remaining <= 0 {
				m.log.Debug("effect expired", zap.Uint64("session", uint64(s.ID)))
				continue
			}
		}
		if s.Kind == KindEarn {
			s.earning += elapsed
			for s.earning >= time.Minute {
				s.earning -= time.Minute
				s.Coins += EarnRate
			}
		}
		next = append(next, s)
	}
	m.sessions = next
	return m
}

// Update ends intros. Messages for cancelled sessions are ignored.
func (m Manager) Update(msg tea.Msg) Manager {
	done, ok := msg.(IntroDoneMsg)
	if !ok {
		return m
	}
	i := m.index(done.ID)
	if i < 0 || m.sessions[i].Stage != StageIntro {
		return m
	}
	s := m.sessions[i]
	s.Stage = StageBadge
	s.Remaining = s.Offer().Countdown
	m.log.Debug("effect stage", zap.Uint64("session", uint64(s.ID)), zap.Stringer("stage", s.Stage))
	return m.set(i, s)
}
