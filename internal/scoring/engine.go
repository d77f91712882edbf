package scoring

import "math"

type Decision string

const (
	DecisionYes    Decision = "YES"
	DecisionNotYet Decision = "NOT YET"
	DecisionNo     Decision = "NO"
)

// Веса итоговой оценки: двухосевая модель 70/30.
const (
	financialWeight = 0.7
	emotionalWeight = 0.3
)

// Result — итог расчета готовности к покупке жилья.
type Result struct {
	TotalScore      int
	FinancialScore  int
	EmotionalScore  int
	Decision        Decision
	Message         string
	Recommendations []Recommendation
}

// Compute считает полную оценку готовности. Функция чистая:
// одинаковый вход всегда дает одинаковый результат.
func Compute(in Input) Result {
	financial := FinancialScore(in)
	emotional := EmotionalScore(in)

	total := int(math.Round(float64(financial)*financialWeight + float64(emotional)*emotionalWeight))
	total = clampScore(total)

	decision := DecisionFor(total)

	return Result{
		TotalScore:      total,
		FinancialScore:  financial,
		EmotionalScore:  emotional,
		Decision:        decision,
		Message:         MessageFor(total),
		Recommendations: Recommendations(in, financial, emotional, total),
	}
}

// DecisionFor классифицирует итоговую оценку по порогам 80 и 60.
func DecisionFor(total int) Decision {
	switch {
	case total >= 80:
		return DecisionYes
	case total >= 60:
		return DecisionNotYet
	default:
		return DecisionNo
	}
}

// MessageFor возвращает текстовую сводку по диапазону итоговой оценки.
func MessageFor(total int) string {
	switch {
	case total >= 90:
		return "Excellent! You're in a prime position to buy your home."
	case total >= 80:
		return "Strong position! You're ready for homeownership."
	case total >= 70:
		return "Good foundation. A few tweaks will optimize your position."
	case total >= 60:
		return "You're close! Some improvements will strengthen your readiness."
	case total >= 50:
		return "Work needed. Focus on key areas to improve your position."
	case total >= 40:
		return "Take time to build your financial foundation."
	default:
		return "Focus on strengthening your finances before buying."
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
