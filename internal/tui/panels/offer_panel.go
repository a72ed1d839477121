package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/catalog"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/logging"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/phase"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/tui/components"
)

// CopiedFlag is the phase flag name of the "Copied!" marker.
const CopiedFlag = "panel.copied"

// Tab identifies a content tab of the offer panel.
type Tab int

const (
	TabCodes   Tab = iota // gift codes
	TabOffers             // deals
	TabRewards            // streaks, points and referrals
)

var offerTabs = []components.Tab{
	{ID: "codes", Label: "Gift Codes"},
	{ID: "offers", Label: "Offers"},
	{ID: "rewards", Label: "Rewards"},
}

// CloseMsg asks the hub to close the panel.
type CloseMsg struct{}

// ToastMsg carries a transient notice for the footer.
type ToastMsg struct {
	Text string
	Err  bool
}

// Clipboard is the write side of the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through atotto/clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// PanelOptions configure an OfferPanel.
type PanelOptions struct {
	Clipboard    Clipboard       // nil means SystemClipboard
	CopyFeedback time.Duration   // 0 means phase.CopyFeedbackWindow
	Scheduler    phase.Scheduler // nil means phase.TickScheduler
	Logger       *zap.Logger
}

// OfferPanel is the expanded offer hub: a tabbed list of gift codes, offers
// and rewards with copy-to-clipboard.
type OfferPanel struct {
	tabbar     components.TabBar
	body       components.ScrollView
	current    *offer.Data
	selected   int
	copied     phase.Flag
	copiedCode string
	clip       Clipboard
	log        *zap.Logger
	width      int
	height     int
}

// NewOfferPanel creates a panel showing the codes tab.
func NewOfferPanel(w, h int, opts PanelOptions) OfferPanel {
	window := opts.CopyFeedback
	if window <= 0 {
		window = phase.CopyFeedbackWindow
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}
	p := OfferPanel{
		tabbar: components.NewTabBar(offerTabs...),
		body:   components.NewScrollView(max(w-4, 1), bodyHeight(h)),
		copied: phase.NewFlag(CopiedFlag, window, opts.Scheduler),
		clip:   clip,
		log:    logging.OrNop(opts.Logger),
	}
	return p.SetSize(w, h)
}

// bodyHeight leaves room for the border, title and tab rows.
func bodyHeight(h int) int {
	if h -= 5; h < 1 {
		return 1
	}
	return h
}

// ActiveTab returns the visible tab.
func (p OfferPanel) ActiveTab() Tab { return Tab(p.tabbar.Active()) }

// SetTab switches to tab t and resets the selection.
func (p OfferPanel) SetTab(t Tab) OfferPanel {
	p.tabbar = p.tabbar.Select(int(t))
	p.selected = 0
	p.body = p.body.GotoTop()
	return p.refresh()
}

// SetOffer sets the offer shown in the banner. nil hides the banner.
func (p OfferPanel) SetOffer(d *offer.Data) OfferPanel {
	if d != nil {
		cp := *d
		d = &cp
	}
	p.current = d
	return p.refresh()
}

// SetSize resizes the panel.
func (p OfferPanel) SetSize(w, h int) OfferPanel {
	p.width = w
	p.height = h
	p.tabbar = p.tabbar.SetWidth(max(w-4, 1))
	p.body = p.body.SetSize(max(w-4, 1), bodyHeight(h))
	return p.refresh()
}

// Selected returns the copyable string under the cursor, or "".
func (p OfferPanel) Selected() string {
	items := catalog.Copyables(p.tabbar.ActiveID())
	if p.selected < 0 || p.selected >= len(items) {
		return ""
	}
	return items[p.selected]
}

// CopiedCode returns the code currently marked as copied, or "".
func (p OfferPanel) CopiedCode() string {
	if !p.copied.On() {
		return ""
	}
	return p.copiedCode
}

// CopyCode writes code to the clipboard. On success the code is marked as
// copied for the feedback window; a failed write is logged and reported as
// a toast, never returned.
func (p OfferPanel) CopyCode(code string) (OfferPanel, tea.Cmd) {
	if err := p.clip.WriteAll(code); err != nil {
		p.log.Warn("clipboard write failed", zap.String("code", code), zap.Error(err))
		return p, toast("Copy failed", true)
	}
	var cmd tea.Cmd
	p.copiedCode = code
	p.copied, cmd = p.copied.Arm()
	p.log.Debug("code copied", zap.String("code", code))
	return p.refresh(), tea.Batch(cmd, toast("Code Copied!", false))
}

func toast(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Text: text, Err: isErr} }
}

// Update handles panel keys and the copied-marker expiry.
func (p OfferPanel) Update(msg tea.Msg) (OfferPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case phase.ExpiredMsg:
		var ok bool
		if p.copied, ok = p.copied.Expire(msg); ok {
			p.copiedCode = ""
			return p.refresh(), nil
		}
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return p, func() tea.Msg { return CloseMsg{} }
		case "]", "tab":
			return p.SetTab(Tab(p.tabbar.Next().Active())), nil
		case "[", "shift+tab":
			return p.SetTab(Tab(p.tabbar.Prev().Active())), nil
		case "1", "2", "3":
			return p.SetTab(Tab(msg.String()[0] - '1')), nil
		case "j", "down":
			return p.moveSelection(1), nil
		case "k", "up":
			return p.moveSelection(-1), nil
		case "y", "c":
			if code := p.Selected(); code != "" {
				return p.CopyCode(code)
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.body, cmd = p.body.Update(msg)
	return p, cmd
}

func (p OfferPanel) moveSelection(delta int) OfferPanel {
	n := len(catalog.Copyables(p.tabbar.ActiveID()))
	if n == 0 {
		return p
	}
	p.selected = (p.selected + delta + n) % n
	p = p.refresh()
	if line, ok := p.selectedLine(); ok {
		p.body = p.body.EnsureVisible(line)
	}
	return p
}

// View renders the bordered panel.
func (p OfferPanel) View() string {
	title := panelTitleStyle.Render("🎁 Offer Hub") + "  " + dimStyle.Render("esc to close")
	return panelStyle.
		Width(p.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, p.tabbar.View(), "", p.body.View()))
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9FAFB"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	codeStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#93C5FD"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	copiedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	urgentStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	importantStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	bannerColors    = map[string]lipgloss.Color{
		"purple": lipgloss.Color("#A855F7"),
		"red":    lipgloss.Color("#EF4444"),
		"blue":   lipgloss.Color("#3B82F6"),
	}
)

// refresh re-renders the body for the current state.
func (p OfferPanel) refresh() OfferPanel {
	p.body = p.body.SetContent(strings.Join(p.lines(), "\n"))
	return p
}

// selectedLine returns the body line holding the selected copyable item.
func (p OfferPanel) selectedLine() (int, bool) {
	marker := p.Selected()
	if marker == "" {
		return 0, false
	}
	for i, l := range p.lines() {
		if strings.Contains(l, "▸") && strings.Contains(l, marker) {
			return i, true
		}
	}
	return 0, false
}

func (p OfferPanel) lines() []string {
	var out []string
	if p.current != nil {
		out = append(out, currentBanner(*p.current)...)
	}
	switch p.ActiveTab() {
	case TabCodes:
		out = append(out, p.codeLines()...)
	case TabOffers:
		out = append(out, offerLines()...)
	case TabRewards:
		out = append(out, p.rewardLines()...)
	}
	return out
}

func currentBanner(d offer.Data) []string {
	label := d.Value
	if label == "" {
		label = d.Type.String()
	}
	line := "Current: " + codeStyle.Render(label)
	if d.IsUrgent {
		line += " " + urgentStyle.Render("URGENT")
	}
	if d.Importance == offer.Important {
		line += " " + importantStyle.Render("IMPORTANT")
	}
	out := []string{line}
	if d.Description != "" {
		out = append(out, dimStyle.Render(d.Description))
	}
	return append(out, "")
}

// cursor renders the selection marker and copied state for a copyable item.
func (p OfferPanel) cursor(item string, index int) (prefix, suffix string) {
	prefix = "  "
	if index == p.selected {
		prefix = selectedStyle.Render("▸") + " "
	}
	if p.CopiedCode() == item {
		suffix = "  " + copiedStyle.Render("✓ Copied!")
	} else if index == p.selected {
		suffix = "  " + dimStyle.Render("y to copy")
	}
	return prefix, suffix
}

func (p OfferPanel) codeLines() []string {
	var out []string
	for i, gc := range catalog.GiftCodes() {
		prefix, suffix := p.cursor(gc.Code, i)
		out = append(out, prefix+codeStyle.Render(gc.Code)+suffix)
		out = append(out, "  "+gc.Description+dimStyle.Render(" · expires in "+gc.Expires))
		if len(gc.Banners) > 0 {
			tags := make([]string, len(gc.Banners))
			for j, b := range gc.Banners {
				tags[j] = lipgloss.NewStyle().Foreground(bannerColors[b.Color]).Render("[" + b.Text + "]")
			}
			out = append(out, "  "+strings.Join(tags, " "))
		}
		if gc.Event != nil {
			out = append(out, "  "+panelTitleStyle.Render(gc.Event.Title))
			out = append(out, "  "+dimStyle.Render(gc.Event.Description))
		}
		for _, r := range gc.Rewards {
			out = append(out, fmt.Sprintf("    • %s: %s", r.Type, r.Amount))
		}
		out = append(out, "")
	}
	return out
}

func offerLines() []string {
	var out []string
	for _, o := range catalog.Offers() {
		line := dimStyle.Render("["+o.Type+"]") + " " + panelTitleStyle.Render(o.Title)
		if o.IsUrgent {
			line += " " + urgentStyle.Render("URGENT")
		}
		if o.IsImportant {
			line += " " + importantStyle.Render("IMPORTANT")
		}
		out = append(out, line,
			"  "+o.Description+dimStyle.Render(" · expires in "+o.Expires),
			"")
	}
	return out
}

func (p OfferPanel) rewardLines() []string {
	var out []string
	n := 0
	for _, r := range catalog.Rewards() {
		out = append(out, panelTitleStyle.Render(r.Title), "  "+dimStyle.Render(r.Description))
		switch {
		case len(r.Days) > 0:
			days := make([]string, len(r.Days))
			for i, d := range r.Days {
				mark := " "
				if d.Claimed {
					mark = "✓"
				}
				days[i] = fmt.Sprintf("%d%s", d.Day, mark)
			}
			out = append(out, "  "+strings.Join(days, " "))
			if r.CurrentDay < len(r.Days) {
				next := r.Days[r.CurrentDay]
				out = append(out, "  "+dimStyle.Render(fmt.Sprintf("next: day %d, %s", next.Day, next.Reward)))
			}
		default:
			out = append(out, "  "+progressBar(r.Progress, 20)+fmt.Sprintf(" %d%%", r.Progress))
			if r.NextReward != "" {
				out = append(out, "  "+dimStyle.Render("next: "+r.NextReward))
			}
		}
		if r.ReferralURL != "" {
			prefix, suffix := p.cursor(r.ReferralURL, n)
			out = append(out, prefix+codeStyle.Render(r.ReferralURL)+suffix)
			n++
		}
		out = append(out, "")
	}
	return out
}

// progressBar draws pct (0-100) as a bar of width cells.
func progressBar(pct, width int) string {
	pct = max(0, min(100, pct))
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
