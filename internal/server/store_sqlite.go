package server

import (
	"context"
	"database/sql"
	"errors"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Submit(ctx context.Context, userID, nickname string, score int) error {
	// submitted_at is not part of the SET list, so on a keep-higher update
	// the original submission time survives for the tie-break.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leaderboard (nickname, score, user_id)
		VALUES (?, ?, ?)
		ON CONFLICT(nickname) DO UPDATE SET
			score = excluded.score,
			user_id = excluded.user_id
		WHERE excluded.score > leaderboard.score
	`, nickname, score, userID)
	return err
}

func (s *SQLiteStore) TopN(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT nickname, score FROM leaderboard
		ORDER BY score DESC, submitted_at ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Nickname, &e.Score); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Highscore(ctx context.Context, userID string) (int, error) {
	var high int
	err := s.db.QueryRowContext(ctx, `
		SELECT highscore FROM highscores WHERE user_id = ?
	`, userID).Scan(&high)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return high, err
}

func (s *SQLiteStore) SetHighscore(ctx context.Context, userID string, score int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO highscores (user_id, highscore)
		VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET highscore = excluded.highscore
		WHERE excluded.highscore > highscores.highscore
	`, userID, score)
	return err
}

func (s *SQLiteStore) Nickname(ctx context.Context, userID string) (string, error) {
	var nickname string
	err := s.db.QueryRowContext(ctx, `
		SELECT nickname FROM leaderboard
		WHERE user_id = ?
		ORDER BY submitted_at DESC
		LIMIT 1
	`, userID).Scan(&nickname)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return nickname, err
}
