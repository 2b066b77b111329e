package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/kobzarvs/ded/internal/buffer"
)

type Keymap struct {
	Normal  map[string]string `toml:"normal"`
	Editing map[string]string `toml:"editing"`
}

type EditorOptions struct {
	LineNumbers   string `toml:"line-numbers"`
	WrapIndicator string `toml:"wrap-indicator"`
	MaxLineLength int    `toml:"max-line-length"`
	MaxLines      int    `toml:"max-lines"`
}

type Theme struct {
	Theme                 string `toml:"theme"`
	Foreground            string `toml:"foreground"`
	Background            string `toml:"background"`
	LineNumberForeground  string `toml:"line-number-foreground"`
	LineNumberBackground  string `toml:"line-number-background"`
	StatuslineForeground  string `toml:"statusline-foreground"`
	StatuslineBackground  string `toml:"statusline-background"`
	CommandlineForeground string `toml:"commandline-foreground"`
	CommandlineBackground string `toml:"commandline-background"`
	WarningForeground     string `toml:"warning-foreground"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
	Keymap Keymap        `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			LineNumbers: "absolute",
		},
		Theme: Theme{
			Foreground:            "#B3B1AD",
			Background:            "#0A0E14",
			LineNumberForeground:  "#3E4B59",
			LineNumberBackground:  "#0A0E14",
			StatuslineForeground:  "#B3B1AD",
			StatuslineBackground:  "#0F1419",
			CommandlineForeground: "#B3B1AD",
			CommandlineBackground: "#0F1419",
			WarningForeground:     "#FF3333",
		},
		Keymap: Keymap{
			Normal: map[string]string{
				"h":      "move_left",
				"j":      "move_down",
				"k":      "move_up",
				"l":      "move_right",
				"left":   "move_left",
				"down":   "move_down",
				"up":     "move_up",
				"right":  "move_right",
				"i":      "enter_editing",
				":":      "enter_command",
				"ctrl+s": "save",
				"ctrl+q": "quit",
			},
			Editing: map[string]string{
				"esc":       "escape",
				"left":      "move_left",
				"down":      "move_down",
				"up":        "move_up",
				"right":     "move_right",
				"backspace": "backspace",
				"enter":     "enter",
				"ctrl+s":    "save",
			},
		},
	}
}

// ShowLineNumbers reports whether the gutter is drawn.
func (o EditorOptions) ShowLineNumbers() bool {
	switch strings.ToLower(strings.TrimSpace(o.LineNumbers)) {
	case "off", "none", "false":
		return false
	default:
		return true
	}
}

// WrapRune is the first character of WrapIndicator, or 0 when unset.
func (o EditorOptions) WrapRune() rune {
	for _, r := range o.WrapIndicator {
		return r
	}
	return 0
}

func (o EditorOptions) Limits() buffer.Limits {
	return buffer.Limits{MaxLineLength: o.MaxLineLength, MaxLines: o.MaxLines}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.LineNumbers != "" {
		cfg.Editor.LineNumbers = userCfg.Editor.LineNumbers
	}
	if userCfg.Editor.WrapIndicator != "" {
		cfg.Editor.WrapIndicator = userCfg.Editor.WrapIndicator
	}
	if userCfg.Editor.MaxLineLength > 0 {
		cfg.Editor.MaxLineLength = userCfg.Editor.MaxLineLength
	}
	if userCfg.Editor.MaxLines > 0 {
		cfg.Editor.MaxLines = userCfg.Editor.MaxLines
	}
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	for k, v := range userCfg.Keymap.Normal {
		cfg.Keymap.Normal[k] = v
	}
	for k, v := range userCfg.Keymap.Editing {
		cfg.Keymap.Editing[k] = v
	}
	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	set := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	set(&dst.Foreground, src.Foreground)
	set(&dst.Background, src.Background)
	set(&dst.LineNumberForeground, src.LineNumberForeground)
	set(&dst.LineNumberBackground, src.LineNumberBackground)
	set(&dst.StatuslineForeground, src.StatuslineForeground)
	set(&dst.StatuslineBackground, src.StatuslineBackground)
	set(&dst.CommandlineForeground, src.CommandlineForeground)
	set(&dst.CommandlineBackground, src.CommandlineBackground)
	set(&dst.WarningForeground, src.WarningForeground)
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml, either flat or under a [theme] table.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err == nil {
		return t, nil
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err != nil {
		return Theme{}, err
	}
	return wrap.Theme, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("DED_CONFIG_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "ded"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ded"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
