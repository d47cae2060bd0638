// Package sink delivers a line of text to the outside world, either as
// synthetic keystrokes or via the clipboard. The variant is chosen once at
// startup and never changes for the process lifetime.
package sink

import (
	"fmt"
	"time"

	"markestedt/typeline/platform"
)

// Sink emits one line of text as an externally visible effect.
type Sink interface {
	Emit(text string) error
	// Name identifies the variant for logs and the activation history.
	Name() string
}

// Keystroke types the line into the foreground window. The delay before the
// first keystroke gives the user time to move focus from wherever they
// pressed the hotkey to the window that should receive the text.
type Keystroke struct {
	typer platform.Typer
	delay time.Duration
}

// NewKeystroke creates the keystroke-injection sink.
func NewKeystroke(typer platform.Typer, delay time.Duration) *Keystroke {
	return &Keystroke{typer: typer, delay: delay}
}

func (k *Keystroke) Emit(text string) error {
	time.Sleep(k.delay)
	if err := k.typer.Type(text); err != nil {
		return fmt.Errorf("failed to type text: %w", err)
	}
	return nil
}

func (k *Keystroke) Name() string { return "type" }

// Clipboard places the line on the system clipboard.
type Clipboard struct {
	clip platform.Clipboard
}

// NewClipboard creates the clipboard sink.
func NewClipboard(clip platform.Clipboard) *Clipboard {
	return &Clipboard{clip: clip}
}

func (c *Clipboard) Emit(text string) error {
	if err := c.clip.Set(text); err != nil {
		return fmt.Errorf("failed to set clipboard: %w", err)
	}
	return nil
}

func (c *Clipboard) Name() string { return "clip" }
