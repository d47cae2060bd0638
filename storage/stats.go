package storage

import (
	"fmt"
)

// DailyStats represents statistics for a single day
type DailyStats struct {
	Date             string
	TotalActivations int
	TotalCharacters  int
	SuccessCount     int
	FailureCount     int
	WrapCount        int
}

// OverallStats represents overall statistics
type OverallStats struct {
	TotalActivations int
	TotalCharacters  int
	SuccessCount     int
	FailureCount     int
	WrapCount        int
	AvgEmitLatencyMs float64
}

// GetDailyStats retrieves statistics grouped by date for the last N days
func (db *DB) GetDailyStats(days int) ([]DailyStats, error) {
	query := `
		SELECT
			DATE(timestamp) as date,
			COUNT(*) as total_activations,
			COALESCE(SUM(character_count), 0) as total_characters,
			SUM(CASE WHEN success = 1 THEN 1 ELSE 0 END) as success_count,
			SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END) as failure_count,
			SUM(CASE WHEN wrapped = 1 THEN 1 ELSE 0 END) as wrap_count
		FROM activations
		WHERE timestamp >= datetime('now', '-' || ? || ' days')
		GROUP BY DATE(timestamp)
		ORDER BY date DESC
	`

	rows, err := db.conn.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer rows.Close()

	var stats []DailyStats
	for rows.Next() {
		var s DailyStats
		err := rows.Scan(&s.Date, &s.TotalActivations, &s.TotalCharacters, &s.SuccessCount, &s.FailureCount, &s.WrapCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// GetOverallStats retrieves aggregate statistics across all activations
func (db *DB) GetOverallStats() (*OverallStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(character_count), 0),
			COALESCE(SUM(CASE WHEN success = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN wrapped = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(emit_latency_ms), 0)
		FROM activations
	`

	var s OverallStats
	err := db.conn.QueryRow(query).Scan(
		&s.TotalActivations, &s.TotalCharacters, &s.SuccessCount,
		&s.FailureCount, &s.WrapCount, &s.AvgEmitLatencyMs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query overall stats: %w", err)
	}

	return &s, nil
}
