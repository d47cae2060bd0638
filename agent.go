package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"markestedt/typeline/config"
	"markestedt/typeline/cursor"
	"markestedt/typeline/platform"
	"markestedt/typeline/sink"
	"markestedt/typeline/storage"
	"markestedt/typeline/wordlist"
)

// broadcaster pushes finished activations to the dashboard feed.
type broadcaster interface {
	BroadcastActivation(*storage.Activation)
}

// Agent coordinates hotkey events, the word list and the output sink. It is
// the only writer of the cursor: advanced per consumed line, reset on
// wraparound, persisted exactly once when the run loop ends.
type Agent struct {
	cfg    *config.Config
	hotkey platform.Hotkey
	out    sink.Sink
	words  *wordlist.List
	store  *cursor.Store
	pos    uint64

	db   *storage.DB // optional activation history
	feed broadcaster // optional dashboard feed

	// Set when a rewind fails; further activations are refused but the
	// process still shuts down cleanly.
	halted bool
}

// NewAgent creates a new agent instance. pos is the cursor value loaded at
// startup; the word list must already be skipped to it. db and feed may be
// nil.
func NewAgent(cfg *config.Config, out sink.Sink, store *cursor.Store, words *wordlist.List, pos uint64, db *storage.DB, feed broadcaster) *Agent {
	return &Agent{
		cfg:    cfg,
		hotkey: platform.NewHotkey(),
		out:    out,
		words:  words,
		store:  store,
		pos:    pos,
		db:     db,
		feed:   feed,
	}
}

// Run starts the agent's main event loop and blocks until the context is
// cancelled or the platform delivers a shutdown event.
func (a *Agent) Run(ctx context.Context) error {
	combo, err := config.ParseHotkey(a.cfg.Hotkey.Combo)
	if err != nil {
		return fmt.Errorf("failed to parse hotkey: %w", err)
	}

	vkCode, err := platform.VKCode(combo.Key)
	if err != nil {
		return fmt.Errorf("failed to get VK code: %w", err)
	}

	pkCombo := platform.KeyCombo{
		Ctrl:  combo.Ctrl,
		Shift: combo.Shift,
		Alt:   combo.Alt,
		Win:   combo.Win,
		Key:   vkCode,
	}

	pollInterval := time.Duration(a.cfg.Output.PollIntervalMs) * time.Millisecond
	events, err := a.hotkey.Listen(ctx, pkCombo, pollInterval)
	if err != nil {
		return fmt.Errorf("failed to register hotkey: %w", err)
	}

	// Whatever ends the loop, the cursor is written back once.
	defer a.persistCursor()

	slog.Info("TypeLine started", "hotkey", a.cfg.Hotkey.Combo, "mode", a.out.Name(), "cursor", a.pos)

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt := <-events:
			switch evt.Type {
			case platform.Activation:
				a.activate()
			case platform.Shutdown:
				slog.Info("Shutdown requested by platform")
				return nil
			}
		}
	}
}

// activate runs one synchronous activation cycle: read the next line, emit
// it, advance the cursor. An exhausted list resets the cursor and rewinds
// instead, emitting nothing for that cycle.
func (a *Agent) activate() {
	if a.halted {
		slog.Error("Ignoring activation, word list rewind failed earlier")
		return
	}

	line, ok, err := a.words.Next()
	if err != nil {
		slog.Error("Failed to read next line", "error", err)
		a.record(&storage.Activation{
			LineNumber:   int64(a.pos) + 1,
			Mode:         a.out.Name(),
			ErrorMessage: err.Error(),
		})
		return
	}

	if !ok {
		// End of the list: wrap around. This cycle emits nothing; the
		// next activation starts from line one again.
		a.pos = 0
		if err := a.words.Rewind(); err != nil {
			slog.Error("Failed to rewind word list", "error", err)
			a.halted = true
			a.record(&storage.Activation{
				Mode:         a.out.Name(),
				Wrapped:      true,
				ErrorMessage: err.Error(),
			})
			return
		}
		slog.Info("Word list exhausted, wrapped to start")
		a.record(&storage.Activation{
			Mode:    a.out.Name(),
			Wrapped: true,
			Success: true,
		})
		return
	}

	// The line is consumed as soon as it is read; emission failure does
	// not rewind the cursor.
	a.pos++

	start := time.Now()
	emitErr := a.out.Emit(line)
	latency := time.Since(start).Milliseconds()

	act := &storage.Activation{
		LineText:       line,
		LineNumber:     int64(a.pos),
		CharacterCount: len(line),
		Mode:           a.out.Name(),
		EmitLatencyMs:  latency,
		Success:        emitErr == nil,
	}
	if emitErr != nil {
		act.ErrorMessage = emitErr.Error()
		slog.Error("Failed to emit line", "line", a.pos, "error", emitErr)
	} else {
		slog.Info("Emitted line", "line", a.pos, "chars", len(line), "latency_ms", latency)
	}
	a.record(act)
}

// record stores the activation in the history and pushes it to the
// dashboard feed; both are best-effort extras on top of the core loop.
func (a *Agent) record(act *storage.Activation) {
	act.Timestamp = time.Now()
	if a.db != nil {
		if err := a.db.SaveActivation(act); err != nil {
			slog.Warn("Failed to save activation history", "error", err)
		}
	}
	if a.feed != nil {
		a.feed.BroadcastActivation(act)
	}
}

// Cursor returns the current cursor position.
func (a *Agent) Cursor() uint64 {
	return a.pos
}

// persistCursor writes the final cursor value back to the record.
// Best-effort: a failure here is logged, not surfaced, matching the
// shutdown contract.
func (a *Agent) persistCursor() {
	if err := a.store.Save(a.pos); err != nil {
		slog.Error("Failed to persist cursor", "cursor", a.pos, "error", err)
		return
	}
	slog.Info("Cursor persisted", "cursor", a.pos)
}
