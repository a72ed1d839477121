package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/config"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := rootCmd()
	want := map[string]bool{"run": false, "init": false, "render": false, "presets": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"config", "preset", "highlight-fade", "glow-fade", "no-alt-screen"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("root command missing --%s", flag)
		}
	}
}

func TestPresetsCmd(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	lines := strings.Fields(out)
	if len(lines) != len(offer.PresetNames()) {
		t.Fatalf("got %d presets, want %d: %q", len(lines), len(offer.PresetNames()), out)
	}
	for _, name := range offer.PresetNames() {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %q", name)
		}
	}
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, config.FileName) {
		t.Errorf("init output = %q, want the created path", out)
	}
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if _, err := execute(t, "init"); err == nil {
		t.Error("second init should fail because the file exists")
	}
}

func TestApplyRunFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, cfg config.Config)
		wantErr bool
	}{
		{
			name: "no flags keeps config",
			check: func(t *testing.T, cfg config.Config) {
				if cfg != config.Defaults() {
					t.Errorf("config changed without flags: %+v", cfg)
				}
			},
		},
		{
			name: "preset override",
			args: []string{"--preset", "urgent"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Offer.Preset != "urgent" {
					t.Errorf("Preset = %q, want urgent", cfg.Offer.Preset)
				}
			},
		},
		{
			name: "trigger flags",
			args: []string{"--highlight-fade", "--glow-fade"},
			check: func(t *testing.T, cfg config.Config) {
				if !cfg.Offer.HighlightFade || !cfg.Offer.GlowFade {
					t.Errorf("triggers not applied: %+v", cfg.Offer)
				}
			},
		},
		{
			name: "no alt screen",
			args: []string{"--no-alt-screen"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.UI.AltScreen {
					t.Error("AltScreen should be off")
				}
			},
		},
		{
			name:    "unknown preset",
			args:    []string{"--preset", "nope"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := runCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			cfg := config.Defaults()
			err := applyRunFlags(cmd, &cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyRunFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestRunCmd_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("[ui]\nbogus = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "run", "--config", path); err == nil {
		t.Fatal("run should fail on an invalid config before starting the TUI")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
