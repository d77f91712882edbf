package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/home-readiness/backend/internal/models"
)

type CoachRepository struct {
	db *pgxpool.Pool
}

// NewCoachRepository создает репозиторий коучей.
func NewCoachRepository(db *pgxpool.Pool) *CoachRepository {
	return &CoachRepository{db: db}
}

// GetByEmail возвращает коуча по email.
func (r *CoachRepository) GetByEmail(ctx context.Context, email string) (models.Coach, error) {
	var coach models.Coach

	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at
		 FROM coaches
		 WHERE email = $1`,
		email,
	).Scan(&coach.ID, &coach.Email, &coach.Name, &coach.PasswordHash, &coach.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return coach, ErrNotFound
		}
		return coach, err
	}

	return coach, nil
}
