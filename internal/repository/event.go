package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/home-readiness/backend/internal/models"
)

type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository создает репозиторий аналитических событий.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create сохраняет событие.
func (r *EventRepository) Create(ctx context.Context, eventType models.EventType, properties json.RawMessage) (models.Event, error) {
	event := models.Event{EventType: eventType, Properties: properties}
	if event.Properties == nil {
		event.Properties = json.RawMessage("{}")
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO events (event_type, properties)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		event.EventType, event.Properties,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return event, err
	}

	return event, nil
}
