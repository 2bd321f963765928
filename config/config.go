// Package config loads vi-dash settings from defaults, a TOML file and VIDASH_* env vars
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// EnvPrefix namespaces environment overrides, e.g. VIDASH_FRAME_INTERVAL
const EnvPrefix = "VIDASH"

// Config holds application configuration
type Config struct {
	Frame    FrameConfig    `mapstructure:"frame"`
	Terminal TerminalConfig `mapstructure:"terminal"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Log      LogConfig      `mapstructure:"log"`
}

// FrameConfig controls loop timing
type FrameConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	MessageRounds int           `mapstructure:"message_rounds"`
}

// TerminalConfig controls the tcell surface
type TerminalConfig struct {
	Mouse bool   `mapstructure:"mouse"`
	Color string `mapstructure:"color"` // auto, truecolor, 256
}

// ThemeConfig holds #rrggbb colors, see Theme
type ThemeConfig struct {
	Bg          string `mapstructure:"bg"`
	Fg          string `mapstructure:"fg"`
	FocusBg     string `mapstructure:"focus_bg"`
	CursorBg    string `mapstructure:"cursor_bg"`
	Border      string `mapstructure:"border"`
	FocusBorder string `mapstructure:"focus_border"`
	HeaderBg    string `mapstructure:"header_bg"`
	HeaderFg    string `mapstructure:"header_fg"`
	StatusFg    string `mapstructure:"status_fg"`
	HintFg      string `mapstructure:"hint_fg"`
	Error       string `mapstructure:"error"`
}

// LogConfig controls debug logging
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	File  string `mapstructure:"file"`
}

// DefaultPath returns ~/.config/vi-dash/config.toml
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "vi-dash", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frame.interval", 33*time.Millisecond)
	v.SetDefault("frame.message_rounds", 8)
	v.SetDefault("terminal.mouse", false)
	v.SetDefault("terminal.color", "auto")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.file", filepath.Join("logs", "vi-dash.log"))

	d := tui.DefaultTheme
	v.SetDefault("theme.bg", d.Bg.Hex())
	v.SetDefault("theme.fg", d.Fg.Hex())
	v.SetDefault("theme.focus_bg", d.FocusBg.Hex())
	v.SetDefault("theme.cursor_bg", d.CursorBg.Hex())
	v.SetDefault("theme.border", d.Border.Hex())
	v.SetDefault("theme.focus_border", d.FocusBorder.Hex())
	v.SetDefault("theme.header_bg", d.HeaderBg.Hex())
	v.SetDefault("theme.header_fg", d.HeaderFg.Hex())
	v.SetDefault("theme.status_fg", d.StatusFg.Hex())
	v.SetDefault("theme.hint_fg", d.HintFg.Hex())
	v.SetDefault("theme.error", d.Error.Hex())
}

// Load reads configuration. An explicit path must exist; otherwise $VIDASH_CONFIG is
// tried, then DefaultPath, and a missing file falls back to defaults.
// Env var overrides use prefix VIDASH_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	required := path != ""
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		required = path != ""
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
		if required || !missing {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values viper cannot type-check
func (c Config) Validate() error {
	if c.Frame.Interval <= 0 {
		return fmt.Errorf("frame.interval must be positive, got %s", c.Frame.Interval)
	}
	if c.Frame.MessageRounds < 1 {
		return fmt.Errorf("frame.message_rounds must be at least 1, got %d", c.Frame.MessageRounds)
	}
	if _, err := ParseColorMode(c.Terminal.Color); err != nil {
		return err
	}
	if _, err := c.Theme.Theme(); err != nil {
		return err
	}
	return nil
}

// ParseColorMode maps the terminal.color setting, "auto" detects from the environment
func ParseColorMode(s string) (terminal.ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return terminal.DetectColorMode(), nil
	case "truecolor", "true", "24bit":
		return terminal.ColorModeTrueColor, nil
	case "256":
		return terminal.ColorMode256, nil
	default:
		return 0, fmt.Errorf("terminal.color: unknown mode %q", s)
	}
}

// Theme parses every color into a tui.Theme
func (t ThemeConfig) Theme() (tui.Theme, error) {
	var out tui.Theme
	fields := []struct {
		key string
		src string
		dst *terminal.RGB
	}{
		{"bg", t.Bg, &out.Bg},
		{"fg", t.Fg, &out.Fg},
		{"focus_bg", t.FocusBg, &out.FocusBg},
		{"cursor_bg", t.CursorBg, &out.CursorBg},
		{"border", t.Border, &out.Border},
		{"focus_border", t.FocusBorder, &out.FocusBorder},
		{"header_bg", t.HeaderBg, &out.HeaderBg},
		{"header_fg", t.HeaderFg, &out.HeaderFg},
		{"status_fg", t.StatusFg, &out.StatusFg},
		{"hint_fg", t.HintFg, &out.HintFg},
		{"error", t.Error, &out.Error},
	}
	for _, f := range fields {
		c, err := terminal.ParseHex(f.src)
		if err != nil {
			return tui.Theme{}, fmt.Errorf("theme.%s: %w", f.key, err)
		}
		*f.dst = c
	}
	return out, nil
}
