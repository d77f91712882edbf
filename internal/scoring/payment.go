package scoring

import "math"

// MonthlyPayment считает аннуитетный платеж по фиксированной ставке.
// Предусловия: principal >= 0, annualRate >= 0, termMonths > 0.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	months := float64(termMonths)
	monthlyRate := annualRate / 12
	if monthlyRate == 0 {
		return principal / months
	}

	growth := math.Pow(1+monthlyRate, months)
	return principal * monthlyRate * growth / (growth - 1)
}

// Affordability — оценка максимально доступной цены жилья.
type Affordability struct {
	MaxPrice              int `json:"maxPrice"`
	MaxMonthlyPayment     int `json:"maxMonthlyPayment"`
	CurrentMonthlyPayment int `json:"currentMonthlyPayment"`
}

// EstimateAffordability считает потолок платежа (28% дохода) и,
// обратив аннуитетную формулу, максимальную сумму кредита.
func EstimateAffordability(annualIncome, downPayment, loanAmount, annualRate float64) Affordability {
	monthlyIncome := annualIncome / 12
	maxMonthlyPayment := monthlyIncome * 0.28

	months := float64(DefaultTermMonths)
	monthlyRate := annualRate / 12

	var maxLoan float64
	if monthlyRate == 0 {
		maxLoan = maxMonthlyPayment * months
	} else {
		maxLoan = maxMonthlyPayment * (1 - math.Pow(1+monthlyRate, -months)) / monthlyRate
	}

	return Affordability{
		MaxPrice:              int(math.Round(maxLoan + downPayment)),
		MaxMonthlyPayment:     int(math.Round(maxMonthlyPayment)),
		CurrentMonthlyPayment: int(math.Round(MonthlyPayment(loanAmount, annualRate, DefaultTermMonths))),
	}
}
