package config

import (
	"testing"
)

func TestParseHotkey(t *testing.T) {
	tests := []struct {
		combo   string
		want    KeyCombo
		wantErr bool
	}{
		{"ctrl+alt+x", KeyCombo{Ctrl: true, Alt: true, Key: "x"}, false},
		{"CTRL+ALT+X", KeyCombo{Ctrl: true, Alt: true, Key: "x"}, false},
		{"ctrl+shift+v", KeyCombo{Ctrl: true, Shift: true, Key: "v"}, false},
		{"win+space", KeyCombo{Win: true, Key: "space"}, false},
		{"control + alt + f5", KeyCombo{Ctrl: true, Alt: true, Key: "f5"}, false},
		{"x", KeyCombo{}, true},          // no modifier
		{"ctrl+alt", KeyCombo{}, true},   // no key
		{"bogus+alt+x", KeyCombo{}, true}, // unknown modifier
		{"", KeyCombo{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.combo, func(t *testing.T) {
			got, err := ParseHotkey(tt.combo)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHotkey(%q) = %+v, want error", tt.combo, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHotkey(%q): %v", tt.combo, err)
			}
			if got != tt.want {
				t.Errorf("ParseHotkey(%q) = %+v, want %+v", tt.combo, got, tt.want)
			}
		})
	}
}

func TestResolveMode(t *testing.T) {
	cfg := defaultConfig()

	tests := []struct {
		name string
		mode string
		args []string
		want string
	}{
		{"no args keeps config", ModeType, nil, ModeType},
		{"clip arg overrides", ModeType, []string{"clip"}, ModeClip},
		{"other arg keeps config", ModeType, []string{"paste"}, ModeType},
		{"clip config no args", ModeClip, nil, ModeClip},
		{"clip only honored as first arg", ModeType, []string{"x", "clip"}, ModeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.Output.Mode = tt.mode
			if got := ResolveMode(cfg, tt.args); got != tt.want {
				t.Errorf("ResolveMode(%q, %v) = %q, want %q", tt.mode, tt.args, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Hotkey.Combo != "ctrl+alt+x" {
		t.Errorf("default combo = %q, want ctrl+alt+x", cfg.Hotkey.Combo)
	}
	if cfg.Output.Mode != ModeType {
		t.Errorf("default mode = %q, want %q", cfg.Output.Mode, ModeType)
	}
	if cfg.Output.PreTypeDelayMs != 400 {
		t.Errorf("default pre-type delay = %d, want 400", cfg.Output.PreTypeDelayMs)
	}
	if cfg.Output.PollIntervalMs != 38 {
		t.Errorf("default poll interval = %d, want 38", cfg.Output.PollIntervalMs)
	}
}
