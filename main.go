package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"markestedt/typeline/config"
	"markestedt/typeline/cursor"
	"markestedt/typeline/platform"
	"markestedt/typeline/sink"
	"markestedt/typeline/storage"
	"markestedt/typeline/systray"
	"markestedt/typeline/web"
	"markestedt/typeline/wordlist"
)

func main() {
	// Setup logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	configPath, _ := config.ConfigPath()
	slog.Info("Configuration loaded", "path", configPath)

	// The positional "clip" argument overrides the configured output mode
	mode := config.ResolveMode(cfg, os.Args[1:])

	// Open the cursor record and restore the position
	store, err := cursor.OpenOrCreate(cfg.Words.CursorFile)
	if err != nil {
		fatalStartup("File Open Error", err)
	}
	defer store.Close()

	pos, err := store.Load()
	if err != nil {
		fatalStartup("File Read Error", err)
	}

	// Open the word list and skip the already-consumed lines
	words, wordsFile, err := wordlist.Open(cfg.Words.File)
	if err != nil {
		fatalStartup("File Open Error", err)
	}
	defer wordsFile.Close()

	if err := words.Skip(pos); err != nil {
		fatalStartup("File Read Error", err)
	}

	// Select the output sink
	var out sink.Sink
	if mode == config.ModeClip {
		out = sink.NewClipboard(platform.NewClipboard())
	} else {
		out = sink.NewKeystroke(platform.NewTyper(), time.Duration(cfg.Output.PreTypeDelayMs)*time.Millisecond)
	}

	// Activation history is an extra; run without it if it fails
	var db *storage.DB
	if db, err = storage.Open(filepath.Dir(configPath)); err != nil {
		slog.Warn("Activation history unavailable", "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	// Dashboard
	var srv *web.Server
	webEnabled := cfg.Web.Enabled && db != nil
	if webEnabled {
		srv = web.NewServer(db, cfg, mode)
		go func() {
			if err := srv.Start(); err != nil {
				slog.Error("Dashboard server stopped", "error", err)
			}
		}()
	}

	// Setup signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	agent := NewAgent(cfg, out, store, words, pos, db, feedOrNil(srv))

	// Tray icon owns the Quit affordance
	tray := systray.NewManager(cfg.Web.Port, webEnabled, nil)
	go func() {
		select {
		case <-tray.WaitForQuit():
			cancel()
		case <-ctx.Done():
		}
	}()

	// The tray must run on the main thread; the agent runs beside it
	done := make(chan error, 1)
	go func() {
		done <- agent.Run(ctx)
		tray.Stop()
	}()

	tray.Run()

	if err := <-done; err != nil {
		// The only errors Run returns are startup failures: a bad combo or
		// a hotkey another process already owns.
		platform.Notify("RegisterHotKey Error", err.Error())
		slog.Error("Agent error", "error", err)
		os.Exit(1)
	}

	slog.Info("TypeLine stopped")
}

// fatalStartup surfaces an unrecoverable startup error as a modal notice
// and exits without entering the run loop.
func fatalStartup(title string, err error) {
	slog.Error(title, "error", err)
	platform.Notify(title, err.Error())
	os.Exit(1)
}

// feedOrNil avoids handing the agent a typed-nil broadcaster.
func feedOrNil(srv *web.Server) broadcaster {
	if srv == nil {
		return nil
	}
	return srv
}
