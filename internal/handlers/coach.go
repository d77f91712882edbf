package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/home-readiness/backend/internal/coach"
	"example.com/home-readiness/backend/internal/models"
	"example.com/home-readiness/backend/internal/repository"
)

type CoachHandler struct {
	Assessments *repository.AssessmentRepository
}

// NewCoachHandler создает обработчик чата и панели коуча.
func NewCoachHandler(assessments *repository.AssessmentRepository) *CoachHandler {
	return &CoachHandler{Assessments: assessments}
}

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type AssessmentContext struct {
	Total       int     `json:"total"`
	Financial   int     `json:"financial"`
	Emotional   int     `json:"emotional"`
	Income      float64 `json:"income"`
	Savings     float64 `json:"savings"`
	TargetPrice float64 `json:"targetPrice"`
}

type ChatRequest struct {
	Messages       []ChatMessage      `json:"messages" validate:"required,min=1,dive"`
	Companion      string             `json:"companion"`
	AssessmentData *AssessmentContext `json:"assessmentData"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

// Chat возвращает детерминированный ответ коуча по последнему сообщению.
func (h *CoachHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "messages are required")
	}

	lastMessage := req.Messages[len(req.Messages)-1]

	scoreContext := coach.Context{}
	if req.AssessmentData != nil {
		scoreContext = coach.Context{
			TotalScore:     req.AssessmentData.Total,
			FinancialScore: req.AssessmentData.Financial,
			EmotionalScore: req.AssessmentData.Emotional,
			Income:         req.AssessmentData.Income,
			Savings:        req.AssessmentData.Savings,
			TargetPrice:    req.AssessmentData.TargetPrice,
		}
	}

	response := coach.Respond(lastMessage.Content, coach.Persona(req.Companion), scoreContext)

	return c.JSON(http.StatusOK, ChatResponse{Response: response, Success: true})
}

type AssessmentSummary struct {
	ID             string    `json:"id"`
	Location       string    `json:"location"`
	Timeline       string    `json:"timeline"`
	TotalScore     int       `json:"total_score"`
	FinancialScore int       `json:"financial_score"`
	EmotionalScore int       `json:"emotional_score"`
	Decision       string    `json:"decision"`
	CreatedAt      time.Time `json:"created_at"`
}

type AssessmentListResponse struct {
	Assessments []AssessmentSummary `json:"assessments"`
}

const assessmentListLimit = 50

// ListAssessments возвращает последние оценки для панели коуча.
func (h *CoachHandler) ListAssessments(c echo.Context) error {
	if h.Assessments == nil {
		return serviceUnavailable(c, "assessments are not available")
	}

	assessments, err := h.Assessments.ListRecent(c.Request().Context(), assessmentListLimit)
	if err != nil {
		return serverError(c)
	}

	response := make([]AssessmentSummary, 0, len(assessments))
	for _, assessment := range assessments {
		response = append(response, toAssessmentSummary(assessment))
	}

	return c.JSON(http.StatusOK, AssessmentListResponse{Assessments: response})
}

func toAssessmentSummary(assessment models.Assessment) AssessmentSummary {
	return AssessmentSummary{
		ID:             assessment.ID.String(),
		Location:       assessment.Location,
		Timeline:       assessment.Timeline,
		TotalScore:     assessment.TotalScore,
		FinancialScore: assessment.FinancialScore,
		EmotionalScore: assessment.EmotionalScore,
		Decision:       assessment.Decision,
		CreatedAt:      assessment.CreatedAt,
	}
}
