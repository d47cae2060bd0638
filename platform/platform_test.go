package platform

import (
	"testing"
)

func TestVKCode(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"x", 0x58},
		{"a", 0x41},
		{"9", 0x39},
		{"f5", 0x74},
		{"space", 0x20},
		{"enter", 0x0D},
	}

	for _, tt := range tests {
		got, err := VKCode(tt.key)
		if err != nil {
			t.Fatalf("VKCode(%q): %v", tt.key, err)
		}
		if got != tt.want {
			t.Errorf("VKCode(%q) = 0x%02X, want 0x%02X", tt.key, got, tt.want)
		}
	}
}

func TestVKCodeUnknownKey(t *testing.T) {
	for _, key := range []string{"", "pause", "ä"} {
		if _, err := VKCode(key); err == nil {
			t.Errorf("VKCode(%q) should fail", key)
		}
	}
}
