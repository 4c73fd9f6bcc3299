package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"uno-server/internal/uno"
)

// MatchStore records completed games. Only finished results are persisted;
// a running game lives purely in memory and dies with the process.
type MatchStore struct {
	db *sql.DB
}

func NewMatchStore(db *sql.DB) *MatchStore {
	return &MatchStore{
		db: db,
	}
}

// MatchRecord is one completed game as stored.
type MatchRecord struct {
	ID         int64            `json:"id"`
	FinishedAt time.Time        `json:"finishedAt"`
	WinnerSeat int              `json:"winnerSeat"`
	Results    []uno.SeatResult `json:"results"`
}

// SaveMatch persists a finished game with its ranked standings.
func (ms *MatchStore) SaveMatch(ctx context.Context, winnerSeat int, results []uno.SeatResult) error {
	resultData, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to serialize results: %w", err)
	}

	query := `
		INSERT INTO match_results (finished_at, winner_seat, results)
		VALUES ($1, $2, $3)
	`

	if _, err := ms.db.ExecContext(ctx, query, time.Now().UTC(), winnerSeat, string(resultData)); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

// RecentMatches returns up to limit completed games, newest first.
func (ms *MatchStore) RecentMatches(ctx context.Context, limit int) ([]MatchRecord, error) {
	query := `
		SELECT id, finished_at, winner_seat, results
		FROM match_results
		ORDER BY finished_at DESC, id DESC
		LIMIT $1
	`

	rows, err := ms.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var resultData string
		if err := rows.Scan(&rec.ID, &rec.FinishedAt, &rec.WinnerSeat, &resultData); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		if err := json.Unmarshal([]byte(resultData), &rec.Results); err != nil {
			return nil, fmt.Errorf("failed to deserialize results for match %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match rows: %w", err)
	}
	return records, nil
}
