package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"markestedt/typeline/config"
	"markestedt/typeline/storage"
)

func testServer(t *testing.T) (*Server, *storage.DB) {
	t.Helper()
	db, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Hotkey.Combo = "ctrl+alt+x"
	cfg.Words.File = "words.txt"
	cfg.Words.CursorFile = "skipline.dat"
	cfg.Web.Port = 0

	return NewServer(db, cfg, config.ModeType), db
}

func doGet(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	handler, err := srv.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleStatus(t *testing.T) {
	srv, _ := testServer(t)

	rec := doGet(t, srv, "/api/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got struct {
		Hotkey    string `json:"hotkey"`
		Mode      string `json:"mode"`
		WordsFile string `json:"wordsFile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Hotkey != "ctrl+alt+x" || got.Mode != "type" || got.WordsFile != "words.txt" {
		t.Errorf("status = %+v", got)
	}
}

func TestHandleHistory(t *testing.T) {
	srv, db := testServer(t)

	for i, text := range []string{"alpha", "beta"} {
		a := &storage.Activation{
			LineText:       text,
			LineNumber:     int64(i + 1),
			CharacterCount: len(text),
			Mode:           "type",
			Success:        true,
		}
		if err := db.SaveActivation(a); err != nil {
			t.Fatalf("SaveActivation: %v", err)
		}
	}

	rec := doGet(t, srv, "/api/history?limit=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got struct {
		Total int `json:"total"`
		Items []struct {
			LineText string `json:"lineText"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Total != 2 || len(got.Items) != 2 {
		t.Fatalf("history = %+v, want 2 items", got)
	}
	if got.Items[0].LineText != "beta" {
		t.Errorf("first item = %q, want newest (beta)", got.Items[0].LineText)
	}
}

func TestHandleStats(t *testing.T) {
	srv, db := testServer(t)

	a := &storage.Activation{LineText: "alpha", LineNumber: 1, CharacterCount: 5, Mode: "type", Success: true}
	if err := db.SaveActivation(a); err != nil {
		t.Fatalf("SaveActivation: %v", err)
	}

	rec := doGet(t, srv, "/api/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got struct {
		TotalActivations int `json:"totalActivations"`
		TotalCharacters  int `json:"totalCharacters"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TotalActivations != 1 || got.TotalCharacters != 5 {
		t.Errorf("stats = %+v", got)
	}
}

func TestHandlersRejectNonGet(t *testing.T) {
	srv, _ := testServer(t)
	handler, err := srv.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}

	for _, path := range []string{"/api/status", "/api/history", "/api/stats"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("POST %s = %d, want 405", path, rec.Code)
		}
	}
}
