package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Activation represents one hotkey-triggered emission cycle
type Activation struct {
	ID             int64
	Timestamp      time.Time
	LineText       string
	LineNumber     int64
	CharacterCount int
	Mode           string
	EmitLatencyMs  int64
	Wrapped        bool
	Success        bool
	ErrorMessage   string
}

// SaveActivation saves an activation to the database
func (db *DB) SaveActivation(a *Activation) error {
	query := `
		INSERT INTO activations (
			line_text, line_number, character_count,
			mode, emit_latency_ms, wrapped, success, error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.conn.Exec(query,
		a.LineText, a.LineNumber, a.CharacterCount,
		a.Mode, a.EmitLatencyMs, a.Wrapped, a.Success, a.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to save activation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	a.ID = id
	return nil
}

// GetActivations retrieves activations with pagination, newest first
func (db *DB) GetActivations(limit, offset int) ([]Activation, error) {
	query := `
		SELECT
			id, timestamp, line_text, line_number, character_count,
			mode, emit_latency_ms, wrapped, success, error_message
		FROM activations
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.conn.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query activations: %w", err)
	}
	defer rows.Close()

	var activations []Activation
	for rows.Next() {
		var a Activation
		var errorMessage sql.NullString

		err := rows.Scan(
			&a.ID, &a.Timestamp, &a.LineText, &a.LineNumber, &a.CharacterCount,
			&a.Mode, &a.EmitLatencyMs, &a.Wrapped, &a.Success, &errorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activation: %w", err)
		}

		if errorMessage.Valid {
			a.ErrorMessage = errorMessage.String
		}

		activations = append(activations, a)
	}

	return activations, rows.Err()
}

// GetActivationCount returns the total number of activations
func (db *DB) GetActivationCount() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM activations").Scan(&count)
	return count, err
}
