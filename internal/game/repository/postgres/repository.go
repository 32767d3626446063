package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hendriwan/wordduel-service/internal/game/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureUser(ctx context.Context, id, email string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, plan, daily_create_count, daily_streak, created_at, updated_at)
		VALUES ($1, $2, 'free', 0, 0, now(), now())
		ON CONFLICT (id) DO NOTHING
	`, id, email)
	if err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, plan, current_subscription_id, daily_create_count,
		       last_create_date, daily_streak, created_at, updated_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Plan, &user.CurrentSubscriptionID,
		&user.DailyCreateCount, &user.LastCreateDate, &user.DailyStreak,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ConsumeCreateQuota re-derives eligibility inside the update predicate so
// two concurrent requests cannot both pass a stale read. Zero rows
// affected means the caller is over quota.
func (r *PostgresRepository) ConsumeCreateQuota(ctx context.Context, userID, todayISO string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET daily_create_count = CASE
		        WHEN last_create_date IS DISTINCT FROM $2::date THEN 1
		        ELSE daily_create_count + 1
		    END,
		    last_create_date = $2::date,
		    updated_at = now()
		WHERE id = $1
		  AND deleted_at IS NULL
		  AND (
		      plan = 'pro'
		      OR current_subscription_id IS NOT NULL
		      OR last_create_date IS DISTINCT FROM $2::date
		      OR daily_create_count < 1
		  )
	`, userID, todayISO)
	if err != nil {
		return false, fmt.Errorf("failed to consume create quota: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) CreatePuzzle(ctx context.Context, p *domain.Puzzle) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO puzzles (id, creator_user_id, word_hash, word_ciphertext, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.CreatorUserID, p.WordHash, p.WordCiphertext, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create puzzle: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	query := `
		SELECT id, creator_user_id, word_hash, word_ciphertext, created_at
		FROM puzzles
		WHERE id = $1
		LIMIT 1;
	`

	return r.scanPuzzle(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) GetPuzzleByCreator(ctx context.Context, id, creatorUserID string) (*domain.Puzzle, error) {
	query := `
		SELECT id, creator_user_id, word_hash, word_ciphertext, created_at
		FROM puzzles
		WHERE id = $1 AND creator_user_id = $2
		LIMIT 1;
	`

	return r.scanPuzzle(r.db.QueryRow(ctx, query, id, creatorUserID))
}

func (r *PostgresRepository) scanPuzzle(row pgx.Row) (*domain.Puzzle, error) {
	var p domain.Puzzle
	err := row.Scan(&p.ID, &p.CreatorUserID, &p.WordHash, &p.WordCiphertext, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}

	return &p, nil
}

func (r *PostgresRepository) CountPuzzlesByCreator(ctx context.Context, creatorUserID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM puzzles WHERE creator_user_id = $1`, creatorUserID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count puzzles: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) ListPuzzleHistory(ctx context.Context, creatorUserID string, limit int) ([]domain.PuzzleHistoryItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.created_at, count(a.id) AS players_count, p.word_ciphertext
		FROM puzzles p
		LEFT JOIN puzzle_attempts a ON a.puzzle_id = p.id
		WHERE p.creator_user_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC
		LIMIT $2
	`, creatorUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzle history: %w", err)
	}
	defer rows.Close()

	var items []domain.PuzzleHistoryItem
	for rows.Next() {
		var item domain.PuzzleHistoryItem
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.PlayersCount, &item.WordCiphertext); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) ListPuzzleScores(ctx context.Context, puzzleID string, limit int) ([]domain.PuzzleScore, error) {
	rows, err := r.db.Query(ctx, `
		SELECT attempts_count, won, created_at
		FROM puzzle_attempts
		WHERE puzzle_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, puzzleID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzle scores: %w", err)
	}
	defer rows.Close()

	var scores []domain.PuzzleScore
	for rows.Next() {
		var s domain.PuzzleScore
		if err := rows.Scan(&s.AttemptsCount, &s.Won, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		scores = append(scores, s)
	}

	return scores, rows.Err()
}

func (r *PostgresRepository) GetPuzzleAttempt(ctx context.Context, puzzleID, playerUserID string) (*domain.PuzzleAttempt, error) {
	query := `
		SELECT id, puzzle_id, player_user_id, attempts_count, won, created_at
		FROM puzzle_attempts
		WHERE puzzle_id = $1 AND player_user_id = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, puzzleID, playerUserID)

	var a domain.PuzzleAttempt
	err := row.Scan(&a.ID, &a.PuzzleID, &a.PlayerUserID, &a.AttemptsCount, &a.Won, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get puzzle attempt: %w", err)
	}

	return &a, nil
}

func (r *PostgresRepository) InsertPuzzleAttempt(ctx context.Context, a *domain.PuzzleAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO puzzle_attempts (id, puzzle_id, player_user_id, attempts_count, won, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (puzzle_id, player_user_id) DO NOTHING
	`, a.ID, a.PuzzleID, a.PlayerUserID, a.AttemptsCount, a.Won, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert puzzle attempt: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetDailyWord(ctx context.Context, dateISO string) (*domain.DailyWord, error) {
	query := `
		SELECT date, word_hash, word_ciphertext
		FROM daily_words
		WHERE date = $1::date
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, dateISO)

	var w domain.DailyWord
	var date time.Time
	err := row.Scan(&date, &w.WordHash, &w.WordCiphertext)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get daily word: %w", err)
	}

	w.Date = date.Format("2006-01-02")

	return &w, nil
}

func (r *PostgresRepository) UpsertDailyWord(ctx context.Context, w *domain.DailyWord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO daily_words (date, word_hash, word_ciphertext)
		VALUES ($1::date, $2, $3)
		ON CONFLICT (date) DO UPDATE
		SET word_hash = EXCLUDED.word_hash, word_ciphertext = EXCLUDED.word_ciphertext
	`, w.Date, w.WordHash, w.WordCiphertext)
	if err != nil {
		return fmt.Errorf("failed to upsert daily word: %w", err)
	}

	return nil
}

// SeedDailyWords never overwrites: concurrent seeders race on inserts and
// the first write wins for every date.
func (r *PostgresRepository) SeedDailyWords(ctx context.Context, words []domain.DailyWord) error {
	for _, w := range words {
		_, err := r.db.Exec(ctx, `
			INSERT INTO daily_words (date, word_hash, word_ciphertext)
			VALUES ($1::date, $2, $3)
			ON CONFLICT (date) DO NOTHING
		`, w.Date, w.WordHash, w.WordCiphertext)
		if err != nil {
			return fmt.Errorf("failed to seed daily word for %s: %w", w.Date, err)
		}
	}

	return nil
}

func (r *PostgresRepository) GetDailyAttempt(ctx context.Context, dateISO, userID string) (*domain.DailyAttempt, error) {
	query := `
		SELECT date, user_id, attempts_count, won, created_at
		FROM daily_attempts
		WHERE date = $1::date AND user_id = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, dateISO, userID)

	var a domain.DailyAttempt
	var date time.Time
	err := row.Scan(&date, &a.UserID, &a.AttemptsCount, &a.Won, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get daily attempt: %w", err)
	}

	a.Date = date.Format("2006-01-02")

	return &a, nil
}

func (r *PostgresRepository) InsertDailyAttempt(ctx context.Context, a *domain.DailyAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO daily_attempts (date, user_id, attempts_count, won, created_at)
		VALUES ($1::date, $2, $3, $4, $5)
		ON CONFLICT (date, user_id) DO NOTHING
	`, a.Date, a.UserID, a.AttemptsCount, a.Won, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert daily attempt: %w", err)
	}

	return nil
}

func (r *PostgresRepository) HasDailyWinOn(ctx context.Context, dateISO, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM daily_attempts
			WHERE date = $1::date AND user_id = $2 AND won
		)
	`, dateISO, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check daily win: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) IncrementDailyStreak(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET daily_streak = daily_streak + 1, updated_at = now() WHERE id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to increment daily streak: %w", err)
	}

	return nil
}

func (r *PostgresRepository) SetDailyStreak(ctx context.Context, userID string, value int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET daily_streak = $2, updated_at = now() WHERE id = $1
	`, userID, value)
	if err != nil {
		return fmt.Errorf("failed to set daily streak: %w", err)
	}

	return nil
}
