// Package config parses offerhub.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/logging"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/phase"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "offerhub.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level offerhub.toml configuration.
type Config struct {
	UI       UIConfig       `toml:"ui"`
	Offer    OfferConfig    `toml:"offer"`
	Emphasis EmphasisConfig `toml:"emphasis"`
	Log      LogConfig      `toml:"log"`
}

// UIConfig controls the terminal UI appearance.
type UIConfig struct {
	AccentColor string `toml:"accent_color"`
	AltScreen   bool   `toml:"alt_screen"`
}

// OfferConfig selects the initial offer and the hub's emphasis triggers.
type OfferConfig struct {
	Preset        string `toml:"preset"`
	HighlightFade bool   `toml:"highlight_fade"`
	GlowFade      bool   `toml:"glow_fade"`
}

// EmphasisConfig holds the timer windows, in milliseconds.
type EmphasisConfig struct {
	WindowMS       int `toml:"window_ms"`
	CopyFeedbackMS int `toml:"copy_feedback_ms"`
}

// Window returns the emphasis window as a duration.
func (e EmphasisConfig) Window() time.Duration {
	return time.Duration(e.WindowMS) * time.Millisecond
}

// CopyFeedback returns the copy-feedback window as a duration.
func (e EmphasisConfig) CopyFeedback() time.Duration {
	return time.Duration(e.CopyFeedbackMS) * time.Millisecond
}

// LogConfig controls the zap file logger.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Validate checks the configuration and returns all found issues joined
// together.
func (c *Config) Validate() error {
	var errs []error

	if c.UI.AccentColor != "" && !hexColorRe.MatchString(c.UI.AccentColor) {
		errs = append(errs, fmt.Errorf("ui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}
	if c.Offer.Preset != "" {
		if _, err := offer.LookupPreset(c.Offer.Preset); err != nil {
			errs = append(errs, fmt.Errorf("offer.preset: %w", err))
		}
	}
	if c.Emphasis.WindowMS <= 0 {
		errs = append(errs, fmt.Errorf("emphasis.window_ms must be > 0"))
	}
	if c.Emphasis.CopyFeedbackMS <= 0 {
		errs = append(errs, fmt.Errorf("emphasis.copy_feedback_ms must be > 0"))
	}
	if c.Log.Level != "" && !slices.Contains(logging.Levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s", strings.Join(logging.Levels, ", ")))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with the built-in defaults.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			AccentColor: DefaultAccentColor,
			AltScreen:   true,
		},
		Offer: OfferConfig{
			Preset: "basic",
		},
		Emphasis: EmphasisConfig{
			WindowMS:       int(phase.EmphasisWindow / time.Millisecond),
			CopyFeedbackMS: int(phase.CopyFeedbackWindow / time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads offerhub.toml from path. If path is empty it walks up from the
// working directory; when no file is found the defaults are returned. Unknown
// keys are an error (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			cfg := Defaults()
			return &cfg, nil
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return &cfg, nil
}

// findConfig walks up from the current directory looking for offerhub.toml.
// It returns "" without error when none exists.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// InitFile writes a default offerhub.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# offerhub.toml — offer hub configuration

[ui]
accent_color = "#7D56F4"  # hex color for header/accent elements
alt_screen = true

[offer]
preset = "basic"          # basic, icon, icon-text, full-message, reward, sale, urgent
highlight_fade = false    # show the glow button when a new offer arrives
glow_fade = false         # dim the glow button border

[emphasis]
window_ms = 5000          # new-offer emphasis window
copy_feedback_ms = 2000   # how long "Copied!" stays visible

[log]
file = ""                 # empty = logging disabled
level = "info"            # debug, info, warn, error
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
