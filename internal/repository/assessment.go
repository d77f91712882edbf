package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/home-readiness/backend/internal/models"
)

type AssessmentRepository struct {
	db *pgxpool.Pool
}

// NewAssessmentRepository создает репозиторий результатов оценки.
func NewAssessmentRepository(db *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create сохраняет результат оценки.
func (r *AssessmentRepository) Create(ctx context.Context, assessment models.Assessment) (models.Assessment, error) {
	recommendations := assessment.Recommendations
	if recommendations == nil {
		recommendations = json.RawMessage("[]")
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO assessments (
		     income, savings, monthly_debt, credit_score_range, target_price,
		     confidence, job_stability, life_stability, location, timeline,
		     total_score, financial_score, emotional_score, decision, message,
		     recommendations)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING id, created_at`,
		assessment.Income, assessment.Savings, assessment.MonthlyDebt,
		assessment.CreditScoreRange, assessment.TargetPrice,
		assessment.Confidence, assessment.JobStability, assessment.LifeStability,
		assessment.Location, assessment.Timeline,
		assessment.TotalScore, assessment.FinancialScore, assessment.EmotionalScore,
		assessment.Decision, assessment.Message, recommendations,
	).Scan(&assessment.ID, &assessment.CreatedAt)
	if err != nil {
		return assessment, err
	}

	return assessment, nil
}

// ListRecent возвращает последние результаты оценки для панели коуча.
func (r *AssessmentRepository) ListRecent(ctx context.Context, limit int) ([]models.Assessment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, income, savings, monthly_debt, credit_score_range, target_price,
		        confidence, job_stability, life_stability, location, timeline,
		        total_score, financial_score, emotional_score, decision, message,
		        recommendations, created_at
		 FROM assessments
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assessments := make([]models.Assessment, 0, limit)
	for rows.Next() {
		var assessment models.Assessment
		err = rows.Scan(
			&assessment.ID, &assessment.Income, &assessment.Savings,
			&assessment.MonthlyDebt, &assessment.CreditScoreRange, &assessment.TargetPrice,
			&assessment.Confidence, &assessment.JobStability, &assessment.LifeStability,
			&assessment.Location, &assessment.Timeline,
			&assessment.TotalScore, &assessment.FinancialScore, &assessment.EmotionalScore,
			&assessment.Decision, &assessment.Message,
			&assessment.Recommendations, &assessment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}

	return assessments, rows.Err()
}
