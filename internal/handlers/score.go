package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/home-readiness/backend/internal/models"
	"example.com/home-readiness/backend/internal/scoring"
	"example.com/home-readiness/backend/internal/sink"
)

type ScoreHandler struct {
	Sink *sink.Sink
}

// NewScoreHandler создает обработчик анкетной оценки готовности.
func NewScoreHandler(dataSink *sink.Sink) *ScoreHandler {
	return &ScoreHandler{Sink: dataSink}
}

type ScoreRequest struct {
	Responses ScoreResponses `json:"responses"`
}

type ScoreResponses struct {
	Income        float64 `json:"income"`
	Savings       float64 `json:"savings"`
	MonthlyDebt   float64 `json:"monthlyDebt"`
	CreditScore   string  `json:"creditScore"`
	TargetPrice   float64 `json:"targetPrice"`
	Confidence    int     `json:"confidence"`
	JobStability  string  `json:"jobStability"`
	LifeStability string  `json:"lifeStability"`
	Location      string  `json:"location"`
	Timeline      string  `json:"timeline"`
}

type ScorePayload struct {
	Total           int                      `json:"total"`
	Financial       int                      `json:"financial"`
	Emotional       int                      `json:"emotional"`
	Message         string                   `json:"message"`
	Decision        scoring.Decision         `json:"decision"`
	Recommendations []scoring.Recommendation `json:"recommendations"`
}

type ScoreResponse struct {
	Score ScorePayload `json:"score"`
}

// Score считает оценку готовности по ответам анкеты и ставит
// результат в очередь на best-effort сохранение.
func (h *ScoreHandler) Score(c echo.Context) error {
	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	if !req.Responses.hasRequiredFields() {
		return badRequest(c, "missing required fields")
	}

	input := req.Responses.toQuestionnaire().ToInput()
	result := scoring.Compute(input)

	h.enqueueAssessment(req.Responses, result)

	return c.JSON(http.StatusOK, ScoreResponse{Score: ScorePayload{
		Total:           result.TotalScore,
		Financial:       result.FinancialScore,
		Emotional:       result.EmotionalScore,
		Message:         result.Message,
		Decision:        result.Decision,
		Recommendations: result.Recommendations,
	}})
}

func (r ScoreResponses) hasRequiredFields() bool {
	return r.Income > 0 && r.TargetPrice > 0 && r.Savings > 0
}

func (r ScoreResponses) toQuestionnaire() scoring.QuestionnaireResponses {
	return scoring.QuestionnaireResponses{
		Income:        r.Income,
		Savings:       r.Savings,
		MonthlyDebt:   r.MonthlyDebt,
		CreditScore:   r.CreditScore,
		TargetPrice:   r.TargetPrice,
		Confidence:    r.Confidence,
		JobStability:  r.JobStability,
		LifeStability: r.LifeStability,
		Location:      r.Location,
		Timeline:      r.Timeline,
	}
}

func (h *ScoreHandler) enqueueAssessment(responses ScoreResponses, result scoring.Result) {
	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		recommendations = nil
	}

	creditRange := responses.CreditScore
	if creditRange == "" {
		creditRange = "Unknown"
	}

	properties, _ := json.Marshal(map[string]interface{}{
		"score":    result.TotalScore,
		"decision": result.Decision,
		"location": responses.Location,
	})

	h.Sink.EnqueueAssessment(models.Assessment{
		Income:           responses.Income,
		Savings:          responses.Savings,
		MonthlyDebt:      responses.MonthlyDebt,
		CreditScoreRange: creditRange,
		TargetPrice:      responses.TargetPrice,
		Confidence:       responses.Confidence,
		JobStability:     responses.JobStability,
		LifeStability:    responses.LifeStability,
		Location:         responses.Location,
		Timeline:         responses.Timeline,
		TotalScore:       result.TotalScore,
		FinancialScore:   result.FinancialScore,
		EmotionalScore:   result.EmotionalScore,
		Decision:         string(result.Decision),
		Message:          result.Message,
		Recommendations:  recommendations,
	}, properties)
}
