package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/tui/indicator"
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one indicator for the given offer and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := offerFromFlags(cmd)
			if err != nil {
				return err
			}
			open, _ := cmd.Flags().GetBool("open")
			full, _ := cmd.Flags().GetBool("full-message")
			fmt.Fprint(cmd.OutOrStdout(), renderIndicator(d, open, full))
			return nil
		},
	}

	f := cmd.Flags()
	f.String("preset", "", "start from a preset (see 'offerhub presets')")
	f.String("type", "", "offer type: code, discount, percent-off, item, flash")
	f.String("value", "", "offer label")
	f.String("description", "", "second line shown with the full message")
	f.Bool("new", false, "mark the offer as new")
	f.Bool("urgent", false, "mark the offer as urgent")
	f.Bool("important", false, "mark the offer as important")
	f.Bool("background", false, "show the gradient background")
	f.Bool("dot", false, "show the notification dot")
	f.Bool("open", false, "render as if the panel were open")
	f.Bool("full-message", false, "render during the full-message phase")
	return cmd
}

// offerFromFlags starts from the default offer or --preset and applies the
// fields the user set explicitly.
func offerFromFlags(cmd *cobra.Command) (offer.Data, error) {
	f := cmd.Flags()
	d := offer.Default()

	if name, _ := f.GetString("preset"); name != "" {
		p, err := offer.LookupPreset(name)
		if err != nil {
			return offer.Data{}, err
		}
		d = p(d)
	}
	if f.Changed("type") {
		s, _ := f.GetString("type")
		t, err := offer.ParseType(s)
		if err != nil {
			return offer.Data{}, err
		}
		d.Type = t
	}
	if f.Changed("value") {
		d.Value, _ = f.GetString("value")
	}
	if f.Changed("description") {
		d.Description, _ = f.GetString("description")
	}
	if f.Changed("new") {
		d.IsNew, _ = f.GetBool("new")
	}
	if f.Changed("urgent") {
		d.IsUrgent, _ = f.GetBool("urgent")
	}
	if f.Changed("important") {
		important, _ := f.GetBool("important")
		d.Importance = offer.Normal
		if important {
			d.Importance = offer.Important
		}
	}
	if f.Changed("background") {
		d.ShowBackground, _ = f.GetBool("background")
	}
	if f.Changed("dot") {
		d.ShowDot, _ = f.GetBool("dot")
	}
	return d, nil
}

// renderIndicator draws the indicator for d followed by a summary of the
// derived appearance.
func renderIndicator(d offer.Data, open, fullMessage bool) string {
	a := indicator.Derive(
		indicator.Props{Offer: d, PanelOpen: open},
		indicator.Phase{FullMessage: fullMessage},
	)

	var b strings.Builder
	b.WriteString(indicator.Render(a, 0))
	b.WriteString("\n\n")

	row := func(k string, v any) { fmt.Fprintf(&b, "  %-12s %v\n", k+":", v) }
	row("variant", a.Variant)
	row("icon", fmt.Sprintf("%s %s", a.Icon.Glyph(), a.Icon))
	if a.Label != "" {
		row("label", a.Label)
	}
	if a.Detail != "" {
		row("detail", a.Detail)
	}
	row("dot", a.Dot)
	row("background", a.Background)
	row("animated", a.Animated)
	row("aria-label", a.AriaLabel)
	return b.String()
}
