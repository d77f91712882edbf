package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/home-readiness/backend/internal/models"
	"example.com/home-readiness/backend/internal/scoring"
	"example.com/home-readiness/backend/internal/sink"
)

type CalculateHandler struct {
	Sink *sink.Sink
}

// NewCalculateHandler создает обработчик плоской legacy-формы расчета.
func NewCalculateHandler(dataSink *sink.Sink) *CalculateHandler {
	return &CalculateHandler{Sink: dataSink}
}

type CalculateRequest struct {
	Income        float64 `json:"income"`
	Expenses      float64 `json:"expenses"`
	DownPayment   float64 `json:"downPayment"`
	LoanAmount    float64 `json:"loanAmount"`
	InterestRate  float64 `json:"interestRate"`
	CreditScore   int     `json:"creditScore"`
	PropertyPrice float64 `json:"propertyPrice"`
	StressLevel   int     `json:"stressLevel"`
	Email         string  `json:"email"`
}

type BreakdownResponse struct {
	Financial int `json:"financial"`
	Emotional int `json:"emotional"`
}

type CalculateResponse struct {
	Score           int                      `json:"score"`
	Affordability   scoring.Affordability    `json:"affordability"`
	Recommendations []scoring.Recommendation `json:"recommendations"`
	Breakdown       BreakdownResponse        `json:"breakdown"`
	Decision        scoring.Decision         `json:"decision"`
}

// Calculate считает оценку и доступность жилья по плоской форме запроса.
func (h *CalculateHandler) Calculate(c echo.Context) error {
	var req CalculateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	if req.Income <= 0 || req.PropertyPrice <= 0 || req.LoanAmount <= 0 {
		return badRequest(c, "missing required fields")
	}

	input := scoring.Input{
		AnnualIncome:  req.Income,
		MonthlyDebt:   req.Expenses,
		DownPayment:   req.DownPayment,
		LoanAmount:    req.LoanAmount,
		AnnualRate:    req.InterestRate,
		CreditScore:   req.CreditScore,
		PropertyPrice: req.PropertyPrice,
		StressLevel:   clampStress(req.StressLevel),
	}

	result := scoring.Compute(input)
	affordability := scoring.EstimateAffordability(req.Income, req.DownPayment, req.LoanAmount, req.InterestRate)

	h.enqueueAssessment(req, result)

	return c.JSON(http.StatusOK, CalculateResponse{
		Score:           result.TotalScore,
		Affordability:   affordability,
		Recommendations: result.Recommendations,
		Breakdown: BreakdownResponse{
			Financial: result.FinancialScore,
			Emotional: result.EmotionalScore,
		},
		Decision: result.Decision,
	})
}

// clampStress приводит уровень стресса к [1,5]; отсутствующее
// значение трактуется как нейтральное.
func clampStress(stress int) int {
	if stress == 0 {
		return 3
	}
	if stress < 1 {
		return 1
	}
	if stress > 5 {
		return 5
	}
	return stress
}

func (h *CalculateHandler) enqueueAssessment(req CalculateRequest, result scoring.Result) {
	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		recommendations = nil
	}

	properties, _ := json.Marshal(map[string]interface{}{
		"score":        result.TotalScore,
		"decision":     result.Decision,
		"income":       req.Income,
		"target_price": req.PropertyPrice,
	})

	h.Sink.EnqueueAssessment(models.Assessment{
		Income:           req.Income,
		Savings:          req.DownPayment,
		MonthlyDebt:      req.Expenses,
		CreditScoreRange: scoring.CreditRangeForScore(req.CreditScore),
		TargetPrice:      req.PropertyPrice,
		TotalScore:       result.TotalScore,
		FinancialScore:   result.FinancialScore,
		EmotionalScore:   result.EmotionalScore,
		Decision:         string(result.Decision),
		Message:          result.Message,
		Recommendations:  recommendations,
	}, properties)
}
