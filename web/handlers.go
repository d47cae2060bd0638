package web

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// handleStatus returns the agent's configuration surface (sanitized: paths
// and hotkey only, nothing writable)
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := struct {
		Hotkey     string `json:"hotkey"`
		Mode       string `json:"mode"`
		WordsFile  string `json:"wordsFile"`
		CursorFile string `json:"cursorFile"`
	}{
		Hotkey:     s.cfg.Hotkey.Combo,
		Mode:       s.mode,
		WordsFile:  s.cfg.Words.File,
		CursorFile: s.cfg.Words.CursorFile,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

// handleHistory returns paginated activations, newest first
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 50
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	activations, err := s.db.GetActivations(limit, offset)
	if err != nil {
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	total, err := s.db.GetActivationCount()
	if err != nil {
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	type item struct {
		ID         int64  `json:"id"`
		Timestamp  string `json:"timestamp"`
		LineText   string `json:"lineText"`
		LineNumber int64  `json:"lineNumber"`
		CharCount  int    `json:"charCount"`
		Mode       string `json:"mode"`
		LatencyMs  int64  `json:"latencyMs"`
		Wrapped    bool   `json:"wrapped"`
		Success    bool   `json:"success"`
		Error      string `json:"error,omitempty"`
	}

	resp := struct {
		Total int    `json:"total"`
		Items []item `json:"items"`
	}{Total: total, Items: make([]item, 0, len(activations))}

	for _, a := range activations {
		resp.Items = append(resp.Items, item{
			ID:         a.ID,
			Timestamp:  a.Timestamp.Format("2006-01-02T15:04:05Z"),
			LineText:   a.LineText,
			LineNumber: a.LineNumber,
			CharCount:  a.CharacterCount,
			Mode:       a.Mode,
			LatencyMs:  a.EmitLatencyMs,
			Wrapped:    a.Wrapped,
			Success:    a.Success,
			Error:      a.ErrorMessage,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleStats returns overall and daily aggregates
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}

	overall, err := s.db.GetOverallStats()
	if err != nil {
		http.Error(w, "Failed to load stats", http.StatusInternalServerError)
		return
	}

	daily, err := s.db.GetDailyStats(days)
	if err != nil {
		http.Error(w, "Failed to load stats", http.StatusInternalServerError)
		return
	}

	type dailyItem struct {
		Date        string `json:"date"`
		Activations int    `json:"activations"`
		Characters  int    `json:"characters"`
		Successes   int    `json:"successes"`
		Failures    int    `json:"failures"`
		Wraps       int    `json:"wraps"`
	}

	resp := struct {
		TotalActivations int         `json:"totalActivations"`
		TotalCharacters  int         `json:"totalCharacters"`
		SuccessCount     int         `json:"successCount"`
		FailureCount     int         `json:"failureCount"`
		WrapCount        int         `json:"wrapCount"`
		AvgLatencyMs     float64     `json:"avgLatencyMs"`
		Daily            []dailyItem `json:"daily"`
	}{
		TotalActivations: overall.TotalActivations,
		TotalCharacters:  overall.TotalCharacters,
		SuccessCount:     overall.SuccessCount,
		FailureCount:     overall.FailureCount,
		WrapCount:        overall.WrapCount,
		AvgLatencyMs:     overall.AvgEmitLatencyMs,
		Daily:            make([]dailyItem, 0, len(daily)),
	}

	for _, d := range daily {
		resp.Daily = append(resp.Daily, dailyItem{
			Date:        d.Date,
			Activations: d.TotalActivations,
			Characters:  d.TotalCharacters,
			Successes:   d.SuccessCount,
			Failures:    d.FailureCount,
			Wraps:       d.WrapCount,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
