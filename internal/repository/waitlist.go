package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/home-readiness/backend/internal/models"
)

type WaitlistRepository struct {
	db *pgxpool.Pool
}

// NewWaitlistRepository создает репозиторий листа ожидания.
func NewWaitlistRepository(db *pgxpool.Pool) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

// Create добавляет email в лист ожидания.
func (r *WaitlistRepository) Create(ctx context.Context, email string, score *int, source string) (models.WaitlistEntry, error) {
	entry := models.WaitlistEntry{Email: email, Score: score, Source: source}

	err := r.db.QueryRow(ctx,
		`INSERT INTO waitlist (email, score, source)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		entry.Email, entry.Score, entry.Source,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entry, ErrConflict
		}
		return entry, err
	}

	return entry, nil
}

// Count возвращает количество подписок в листе ожидания.
func (r *WaitlistRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM waitlist`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
