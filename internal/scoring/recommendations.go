package scoring

import (
	"fmt"
	"math"
	"strconv"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityAction Priority = "action"
)

// Recommendation — один совет с приоритетом.
type Recommendation struct {
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
}

const maxRecommendations = 5

// Recommendations строит упорядоченный список советов: сначала
// финансовые, затем эмоциональные, затем позитивные шаги и заметка
// по локации. Список обрезается до пяти элементов.
func Recommendations(in Input, financial, emotional, total int) []Recommendation {
	recs := make([]Recommendation, 0, maxRecommendations)

	if financial < 70 {
		if in.CreditScore < 700 {
			recs = append(recs, Recommendation{
				Text:     "Improve your credit score by paying bills on time and reducing debt",
				Priority: PriorityHigh,
			})
		}

		downPaymentPercent := in.DownPayment / in.PropertyPrice * 100
		if downPaymentPercent < 20 {
			target := int(math.Round(in.PropertyPrice * 0.2))
			recs = append(recs, Recommendation{
				Text:     fmt.Sprintf("Save for a 20%% down payment ($%s) to avoid PMI", formatDollars(target)),
				Priority: PriorityHigh,
			})
		}

		if in.MonthlyDebt > in.AnnualIncome/12*0.15 {
			recs = append(recs, Recommendation{
				Text:     "Pay down existing debt to improve your debt-to-income ratio",
				Priority: PriorityHigh,
			})
		}
	}

	if emotional < 70 {
		if in.Confidence > 0 && in.Confidence < 6 {
			recs = append(recs, Recommendation{
				Text:     "Spend more time researching the home buying process to build confidence",
				Priority: PriorityMedium,
			})
		}

		if in.JobStability == "Very Unstable" || in.JobStability == "Unstable" {
			recs = append(recs, Recommendation{
				Text:     "Consider stabilizing your job situation before taking on a mortgage",
				Priority: PriorityHigh,
			})
		}

		if in.Timeline == "1-3 months" {
			recs = append(recs, Recommendation{
				Text:     "Give yourself more time - rushing into homeownership increases risk",
				Priority: PriorityMedium,
			})
		}
	}

	if total >= 80 {
		recs = append(recs, Recommendation{
			Text:     "You're ready! Start getting pre-approved for a mortgage",
			Priority: PriorityAction,
		})
		recs = append(recs, Recommendation{
			Text:     "Connect with a trusted real estate agent in your target area",
			Priority: PriorityAction,
		})
	} else if total >= 60 {
		recs = append(recs, Recommendation{
			Text:     "Create a 6-month action plan to address key improvement areas",
			Priority: PriorityMedium,
		})
	}

	if in.Location != "" {
		recs = append(recs, Recommendation{
			Text:     fmt.Sprintf("Research %s market trends and average home prices", in.Location),
			Priority: PriorityLow,
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	return recs
}

func formatDollars(amount int) string {
	digits := strconv.Itoa(amount)

	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}
