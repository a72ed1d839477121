// Package main is the entry point for the offerhub CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/config"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "offerhub",
		Short:   "Offer hub: an interactive offer indicator demo",
		Version: version,
		RunE:    runE,
	}
	addRunFlags(root)

	root.AddCommand(
		runCmd(),
		initCmd(),
		renderCmd(),
		presetsCmd(),
	)

	return root
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch the interactive demo (default command)",
		Args:  cobra.NoArgs,
		RunE:  runE,
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "path to offerhub.toml (default: search upwards from the working directory)")
	f.String("preset", "", "initial offer preset (see 'offerhub presets')")
	f.Bool("highlight-fade", false, "show the glow button while a new offer is active")
	f.Bool("glow-fade", false, "dim the glow button border")
	f.Bool("no-alt-screen", false, "render inline instead of on the alternate screen")
}

func runE(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := applyRunFlags(cmd, cfg); err != nil {
		return err
	}
	return runTUI(cfg)
}

// applyRunFlags overrides cfg with the flags the user set explicitly.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("preset") {
		cfg.Offer.Preset, _ = f.GetString("preset")
	}
	if f.Changed("highlight-fade") {
		cfg.Offer.HighlightFade, _ = f.GetBool("highlight-fade")
	}
	if f.Changed("glow-fade") {
		cfg.Offer.GlowFade, _ = f.GetBool("glow-fade")
	}
	if noAlt, _ := f.GetBool("no-alt-screen"); noAlt {
		cfg.UI.AltScreen = false
	}
	return cfg.Validate()
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create offerhub.toml in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the offer presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range offer.PresetNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
