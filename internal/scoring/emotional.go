package scoring

var jobStabilityBonus = map[string]int{
	"Very Unstable": -15,
	"Unstable":      -8,
	"Stable":        0,
	"Very Stable":   10,
}

var lifeStabilityBonus = map[string]int{
	"In Flux":         -10,
	"Somewhat Stable": -5,
	"Stable":          0,
	"Very Stable":     5,
}

// EmotionalScore считает эмоциональную часть оценки [0,100]:
// старт со 100, штраф за стресс и дискомфорт по доле платежа в доходе,
// для анкетной формы — поправки за уверенность, стабильность и сроки.
func EmotionalScore(in Input) int {
	score := 100

	score -= (in.StressLevel - 1) * 10

	monthlyIncome := in.AnnualIncome / 12
	payment := MonthlyPayment(in.LoanAmount, in.AnnualRate, DefaultTermMonths)
	housingRatio := payment / monthlyIncome

	if housingRatio > 0.35 {
		score -= 20
	} else if housingRatio > 0.28 {
		score -= 10
	}

	// Confidence == 0 — поле не передавалось (упрощенная legacy-форма),
	// расширенные поправки пропускаются.
	if in.Confidence > 0 {
		if in.Confidence >= 8 {
			score += 10
		} else if in.Confidence <= 3 {
			score -= 15
		}

		score += jobStabilityBonus[in.JobStability]
		score += lifeStabilityBonus[in.LifeStability]

		switch in.Timeline {
		case "1-3 months":
			// Спешка повышает риск.
			score -= 10
		case "12+ months":
			score += 5
		}
	}

	return clampScore(score)
}
