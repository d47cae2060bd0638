package storage

import (
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndGetActivations(t *testing.T) {
	db := testDB(t)

	lines := []string{"alpha", "beta", "gamma"}
	for i, text := range lines {
		a := &Activation{
			LineText:       text,
			LineNumber:     int64(i + 1),
			CharacterCount: len(text),
			Mode:           "type",
			EmitLatencyMs:  12,
			Success:        true,
		}
		if err := db.SaveActivation(a); err != nil {
			t.Fatalf("SaveActivation(%q): %v", text, err)
		}
		if a.ID == 0 {
			t.Errorf("SaveActivation(%q) did not assign an ID", text)
		}
	}

	got, err := db.GetActivations(10, 0)
	if err != nil {
		t.Fatalf("GetActivations: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("GetActivations returned %d rows, want 3", len(got))
	}
	// Newest first
	if got[0].LineText != "gamma" || got[2].LineText != "alpha" {
		t.Errorf("order = [%s %s %s], want newest first", got[0].LineText, got[1].LineText, got[2].LineText)
	}

	count, err := db.GetActivationCount()
	if err != nil {
		t.Fatalf("GetActivationCount: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestGetActivationsPagination(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 5; i++ {
		a := &Activation{
			LineText:   "line",
			LineNumber: int64(i + 1),
			Mode:       "clip",
			Success:    true,
		}
		if err := db.SaveActivation(a); err != nil {
			t.Fatalf("SaveActivation: %v", err)
		}
	}

	page, err := db.GetActivations(2, 2)
	if err != nil {
		t.Fatalf("GetActivations: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("page size = %d, want 2", len(page))
	}
}

func TestWrappedActivation(t *testing.T) {
	db := testDB(t)

	a := &Activation{Mode: "type", Wrapped: true, Success: true}
	if err := db.SaveActivation(a); err != nil {
		t.Fatalf("SaveActivation: %v", err)
	}

	got, err := db.GetActivations(1, 0)
	if err != nil {
		t.Fatalf("GetActivations: %v", err)
	}
	if len(got) != 1 || !got[0].Wrapped {
		t.Errorf("wrapped flag lost: %+v", got)
	}
}

func TestOverallStats(t *testing.T) {
	db := testDB(t)

	samples := []*Activation{
		{LineText: "alpha", LineNumber: 1, CharacterCount: 5, Mode: "type", EmitLatencyMs: 10, Success: true},
		{LineText: "beta", LineNumber: 2, CharacterCount: 4, Mode: "type", EmitLatencyMs: 20, Success: true},
		{LineText: "", LineNumber: 3, Mode: "type", ErrorMessage: "boom"},
		{Mode: "type", Wrapped: true, Success: true},
	}
	for _, a := range samples {
		if err := db.SaveActivation(a); err != nil {
			t.Fatalf("SaveActivation: %v", err)
		}
	}

	stats, err := db.GetOverallStats()
	if err != nil {
		t.Fatalf("GetOverallStats: %v", err)
	}

	if stats.TotalActivations != 4 {
		t.Errorf("TotalActivations = %d, want 4", stats.TotalActivations)
	}
	if stats.TotalCharacters != 9 {
		t.Errorf("TotalCharacters = %d, want 9", stats.TotalCharacters)
	}
	if stats.SuccessCount != 3 || stats.FailureCount != 1 {
		t.Errorf("success/failure = %d/%d, want 3/1", stats.SuccessCount, stats.FailureCount)
	}
	if stats.WrapCount != 1 {
		t.Errorf("WrapCount = %d, want 1", stats.WrapCount)
	}
}

func TestDailyStats(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 3; i++ {
		a := &Activation{LineText: "x", LineNumber: int64(i + 1), CharacterCount: 1, Mode: "clip", Success: true}
		if err := db.SaveActivation(a); err != nil {
			t.Fatalf("SaveActivation: %v", err)
		}
	}

	daily, err := db.GetDailyStats(7)
	if err != nil {
		t.Fatalf("GetDailyStats: %v", err)
	}
	if len(daily) != 1 {
		t.Fatalf("daily rows = %d, want 1", len(daily))
	}
	if daily[0].TotalActivations != 3 {
		t.Errorf("TotalActivations = %d, want 3", daily[0].TotalActivations)
	}
}
