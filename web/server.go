package web

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"markestedt/typeline/config"
	"markestedt/typeline/storage"
)

//go:embed static/*
var staticFiles embed.FS

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Local-only dashboard
	},
}

// Server serves the read-only dashboard: activation history, stats and a
// live websocket feed. It never mutates configuration or the word list.
type Server struct {
	db   *storage.DB
	cfg  *config.Config
	mode string
	hub  *Hub
}

// NewServer creates a new dashboard server
func NewServer(db *storage.DB, cfg *config.Config, mode string) *Server {
	hub := NewHub()
	go hub.Run()

	return &Server{
		db:   db,
		cfg:  cfg,
		mode: mode,
		hub:  hub,
	}
}

// Handler returns the dashboard's HTTP handler
func (s *Server) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/ws", s.handleWebSocket)

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(staticFS)))

	return mux, nil
}

// Start starts the dashboard server (blocking)
func (s *Server) Start() error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("localhost:%d", s.cfg.Web.Port)
	slog.Info("Starting dashboard", "url", fmt.Sprintf("http://%s", addr))

	return http.ListenAndServe(addr, handler)
}

// BroadcastActivation pushes an activation onto the live feed
func (s *Server) BroadcastActivation(a *storage.Activation) {
	s.hub.BroadcastMessage(Message{
		Type: MessageTypeActivation,
		Data: ActivationMessage{
			ID:         a.ID,
			LineNumber: a.LineNumber,
			CharCount:  a.CharacterCount,
			Mode:       a.Mode,
			Wrapped:    a.Wrapped,
			Success:    a.Success,
			Timestamp:  a.Timestamp.Format("2006-01-02T15:04:05Z"),
		},
	})
}

// handleWebSocket upgrades the connection and attaches it to the hub
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade WebSocket connection", "error", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
