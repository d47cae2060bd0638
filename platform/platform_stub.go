//go:build !windows

package platform

import (
	"context"
	"fmt"
	"time"
)

// Stub implementations so the core packages build and test on any platform.
// The real bindings live in the _windows files.

var errUnsupported = fmt.Errorf("only supported on windows")

type stubHotkey struct{}

// NewHotkey creates a hotkey listener; on non-Windows platforms Listen
// always fails.
func NewHotkey() Hotkey {
	return &stubHotkey{}
}

func (h *stubHotkey) Listen(ctx context.Context, combo KeyCombo, pollInterval time.Duration) (<-chan Event, error) {
	return nil, fmt.Errorf("global hotkeys: %w", errUnsupported)
}

type stubTyper struct{}

func NewTyper() Typer {
	return &stubTyper{}
}

func (t *stubTyper) Type(text string) error {
	return fmt.Errorf("keystroke injection: %w", errUnsupported)
}

type stubClipboard struct{}

func NewClipboard() Clipboard {
	return &stubClipboard{}
}

func (c *stubClipboard) Get() (string, error) {
	return "", fmt.Errorf("clipboard: %w", errUnsupported)
}

func (c *stubClipboard) Set(text string) error {
	return fmt.Errorf("clipboard: %w", errUnsupported)
}

func notify(title, message string) {
	fmt.Printf("%s: %s\n", title, message)
}
