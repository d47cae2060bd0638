package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Hotkey HotkeyConfig `toml:"hotkey"`
	Words  WordsConfig  `toml:"words"`
	Output OutputConfig `toml:"output"`
	Web    WebConfig    `toml:"web"`
}

type HotkeyConfig struct {
	Combo string `toml:"combo"`
}

type WordsConfig struct {
	File       string `toml:"file"`
	CursorFile string `toml:"cursor_file"`
}

type OutputConfig struct {
	Mode           string `toml:"mode"`
	PreTypeDelayMs int    `toml:"pre_type_delay_ms"`
	PollIntervalMs int    `toml:"poll_interval_ms"`
}

type WebConfig struct {
	Enabled bool `toml:"enabled"`
	Port    int  `toml:"port"`
}

// Output modes. ModeType injects keystrokes into the foreground window,
// ModeClip places the line on the clipboard.
const (
	ModeType = "type"
	ModeClip = "clip"
)

// Default configuration
func defaultConfig() *Config {
	return &Config{
		Hotkey: HotkeyConfig{
			Combo: "ctrl+alt+x",
		},
		Words: WordsConfig{
			File:       "words.txt",
			CursorFile: "skipline.dat",
		},
		Output: OutputConfig{
			Mode:           ModeType,
			PreTypeDelayMs: 400,
			PollIntervalMs: 38,
		},
		Web: WebConfig{
			Enabled: true,
			Port:    8097,
		},
	}
}

// ConfigPath returns the path to the configuration file
func ConfigPath() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		appData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	}

	configDir := filepath.Join(appData, "typeline")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from the TOML file
// If the file doesn't exist, it creates it with default values
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// If config doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := defaultConfig()
		if err := save(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	// Load existing config
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Output.Mode != ModeType && cfg.Output.Mode != ModeClip {
		return nil, fmt.Errorf("invalid output mode %q (want %q or %q)", cfg.Output.Mode, ModeType, ModeClip)
	}

	return cfg, nil
}

// save writes the configuration to the TOML file
func save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// ResolveMode applies the optional positional argument on top of the
// configured output mode. The literal "clip" selects clipboard output; any
// other value, or no argument, keeps the configured mode.
func ResolveMode(cfg *Config, args []string) string {
	if len(args) > 0 && args[0] == ModeClip {
		return ModeClip
	}
	return cfg.Output.Mode
}

// KeyCombo represents a parsed keyboard combination
type KeyCombo struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Win   bool
	Key   string
}

// ParseHotkey parses a hotkey combo string like "ctrl+alt+x"
func ParseHotkey(combo string) (KeyCombo, error) {
	var kc KeyCombo
	parts := strings.Split(strings.ToLower(combo), "+")

	if len(parts) == 0 {
		return kc, fmt.Errorf("empty hotkey combo")
	}

	for i, part := range parts {
		part = strings.TrimSpace(part)

		// Check if this part is a modifier
		isModifier := false
		switch part {
		case "ctrl", "control":
			kc.Ctrl = true
			isModifier = true
		case "shift":
			kc.Shift = true
			isModifier = true
		case "alt":
			kc.Alt = true
			isModifier = true
		case "win", "windows":
			kc.Win = true
			isModifier = true
		}

		// If it's not a modifier and it's the last part, it's the key
		if !isModifier {
			if i == len(parts)-1 {
				kc.Key = part
			} else {
				return kc, fmt.Errorf("unknown modifier: %s", part)
			}
		}
	}

	// A global hotkey needs a real key and at least one modifier; a bare
	// modifier combo cannot go through RegisterHotKey.
	if kc.Key == "" {
		return kc, fmt.Errorf("no key specified in combo")
	}
	if !kc.Ctrl && !kc.Shift && !kc.Alt && !kc.Win {
		return kc, fmt.Errorf("no modifiers specified in combo")
	}

	return kc, nil
}
