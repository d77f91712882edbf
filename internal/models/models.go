package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventAssessmentCompleted EventType = "assessment_completed"
	EventWaitlistJoined      EventType = "waitlist_joined"
)

// Assessment — сохраненный результат прохождения оценки готовности.
type Assessment struct {
	ID               uuid.UUID       `json:"id"`
	Income           float64         `json:"income"`
	Savings          float64         `json:"savings"`
	MonthlyDebt      float64         `json:"monthly_debt"`
	CreditScoreRange string          `json:"credit_score_range"`
	TargetPrice      float64         `json:"target_price"`
	Confidence       int             `json:"confidence"`
	JobStability     string          `json:"job_stability"`
	LifeStability    string          `json:"life_stability"`
	Location         string          `json:"location"`
	Timeline         string          `json:"timeline"`
	TotalScore       int             `json:"total_score"`
	FinancialScore   int             `json:"financial_score"`
	EmotionalScore   int             `json:"emotional_score"`
	Decision         string          `json:"decision"`
	Message          string          `json:"message"`
	Recommendations  json.RawMessage `json:"recommendations,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Event — аналитическое событие с произвольными свойствами.
type Event struct {
	ID         uuid.UUID       `json:"id"`
	EventType  EventType       `json:"event_type"`
	Properties json.RawMessage `json:"properties,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// WaitlistEntry — подписка на лист ожидания.
type WaitlistEntry struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Score     *int      `json:"score,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Coach — учетная запись коуча для служебной панели.
type Coach struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
