package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"example.com/home-readiness/backend/internal/models"
)

// TestToAssessmentSummary проверяет проекцию оценки для панели коуча.
func TestToAssessmentSummary(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	summary := toAssessmentSummary(models.Assessment{
		ID:             id,
		Location:       "Denver, CO",
		Timeline:       "6-12 months",
		TotalScore:     72,
		FinancialScore: 65,
		EmotionalScore: 88,
		Decision:       "NOT YET",
		CreatedAt:      createdAt,
	})

	if summary.ID != id.String() {
		t.Fatalf("unexpected id: %s", summary.ID)
	}
	if summary.TotalScore != 72 || summary.FinancialScore != 65 || summary.EmotionalScore != 88 {
		t.Fatalf("unexpected scores: %d/%d/%d", summary.TotalScore, summary.FinancialScore, summary.EmotionalScore)
	}
	if summary.Decision != "NOT YET" {
		t.Fatalf("unexpected decision: %s", summary.Decision)
	}
	if !summary.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created_at: %v", summary.CreatedAt)
	}
}
