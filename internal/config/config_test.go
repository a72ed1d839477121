package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"ui.accent_color", cfg.UI.AccentColor, DefaultAccentColor},
		{"ui.alt_screen", cfg.UI.AltScreen, true},
		{"offer.preset", cfg.Offer.Preset, "basic"},
		{"offer.highlight_fade", cfg.Offer.HighlightFade, false},
		{"offer.glow_fade", cfg.Offer.GlowFade, false},
		{"emphasis.window_ms", cfg.Emphasis.WindowMS, 5000},
		{"emphasis.copy_feedback_ms", cfg.Emphasis.CopyFeedbackMS, 2000},
		{"log.file", cfg.Log.File, ""},
		{"log.level", cfg.Log.Level, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.Emphasis.Window() != 5*time.Second {
		t.Errorf("Window() = %v", cfg.Emphasis.Window())
	}
	if cfg.Emphasis.CopyFeedback() != 2*time.Second {
		t.Errorf("CopyFeedback() = %v", cfg.Emphasis.CopyFeedback())
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
[ui]
accent_color = "#112233"
alt_screen = false

[offer]
preset = "urgent"
highlight_fade = true
glow_fade = true

[emphasis]
window_ms = 3000
copy_feedback_ms = 1500

[log]
file = "offerhub.log"
level = "debug"
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name string
			got  any
			want any
		}{
			{"ui.accent_color", cfg.UI.AccentColor, "#112233"},
			{"ui.alt_screen", cfg.UI.AltScreen, false},
			{"offer.preset", cfg.Offer.Preset, "urgent"},
			{"offer.highlight_fade", cfg.Offer.HighlightFade, true},
			{"offer.glow_fade", cfg.Offer.GlowFade, true},
			{"emphasis.window", cfg.Emphasis.Window(), 3 * time.Second},
			{"emphasis.copy_feedback", cfg.Emphasis.CopyFeedback(), 1500 * time.Millisecond},
			{"log.file", cfg.Log.File, "offerhub.log"},
			{"log.level", cfg.Log.Level, "debug"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.got != tt.want {
					t.Errorf("got %v, want %v", tt.got, tt.want)
				}
			})
		}
	})

	t.Run("partial config uses defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
[offer]
preset = "sale"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Offer.Preset != "sale" {
			t.Errorf("offer.preset: got %q, want %q", cfg.Offer.Preset, "sale")
		}
		if cfg.Emphasis.WindowMS != 5000 {
			t.Errorf("emphasis.window_ms: got %d, want 5000 (default)", cfg.Emphasis.WindowMS)
		}
		if cfg.UI.AccentColor != DefaultAccentColor {
			t.Errorf("ui.accent_color: got %q (want default)", cfg.UI.AccentColor)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if _, err := Load("/nonexistent/offerhub.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid toml returns error", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "not valid [[[ toml")
		if _, err := Load(path); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})

	t.Run("unknown keys return error", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
[offer]
presett = "sale"
`)
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "offer.presett") {
			t.Errorf("expected unknown key error naming offer.presett, got %v", err)
		}
	})

	t.Run("invalid values return error", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
[emphasis]
window_ms = 0
`)
		if _, err := Load(path); err == nil {
			t.Error("expected validation error for window_ms = 0")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad color", func(c *Config) { c.UI.AccentColor = "purple" }, "ui.accent_color"},
		{"unknown preset", func(c *Config) { c.Offer.Preset = "mystery" }, "offer.preset"},
		{"negative window", func(c *Config) { c.Emphasis.WindowMS = -1 }, "emphasis.window_ms"},
		{"zero copy feedback", func(c *Config) { c.Emphasis.CopyFeedbackMS = 0 }, "emphasis.copy_feedback_ms"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}

	t.Run("joins multiple issues", func(t *testing.T) {
		cfg := Defaults()
		cfg.UI.AccentColor = "nope"
		cfg.Emphasis.WindowMS = 0
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "ui.accent_color") || !strings.Contains(err.Error(), "emphasis.window_ms") {
			t.Errorf("expected both issues, got %v", err)
		}
	})
}

func TestLoadAutoDiscovery(t *testing.T) {
	t.Run("finds offerhub.toml in parent directory", func(t *testing.T) {
		root := t.TempDir()
		child := filepath.Join(root, "sub", "dir")
		if err := os.MkdirAll(child, 0755); err != nil {
			t.Fatal(err)
		}
		writeConfig(t, root, `[offer]
preset = "reward"
`)

		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(child); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Offer.Preset != "reward" {
			t.Errorf("offer.preset: got %q, want %q", cfg.Offer.Preset, "reward")
		}
	})

	t.Run("falls back to defaults when not found", func(t *testing.T) {
		dir := t.TempDir()
		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Offer.Preset != "basic" {
			t.Errorf("offer.preset: got %q, want default", cfg.Offer.Preset)
		}
	})
}

func TestInitFile(t *testing.T) {
	t.Run("creates offerhub.toml", func(t *testing.T) {
		dir := t.TempDir()
		path, err := InitFile(dir)
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != FileName {
			t.Errorf("expected %s, got %s", FileName, filepath.Base(path))
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("generated file is not valid: %v", err)
		}
		if cfg.Emphasis.WindowMS != 5000 {
			t.Errorf("emphasis.window_ms: got %d, want 5000", cfg.Emphasis.WindowMS)
		}
	})

	t.Run("refuses to overwrite existing", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "existing")
		if _, err := InitFile(dir); err == nil {
			t.Error("expected error when offerhub.toml already exists")
		}
	})
}
