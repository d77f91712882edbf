package scoring

import "math"

// FinancialScore считает финансовую часть оценки [0,100] как сумму
// четырех независимых вкладов: DTI (30), первый взнос (25),
// кредитный рейтинг (25), резервный фонд (20).
func FinancialScore(in Input) int {
	score := 0

	// 1. Отношение долга к доходу с учетом будущей ипотеки.
	monthlyIncome := in.AnnualIncome / 12
	payment := MonthlyPayment(in.LoanAmount, in.AnnualRate, DefaultTermMonths)
	dti := (payment + in.MonthlyDebt) / monthlyIncome

	switch {
	case dti <= 0.28:
		score += 30
	case dti <= 0.36:
		score += 20
	case dti <= 0.43:
		score += 10
	}

	// 2. Процент первого взноса. Минимальный взнос все равно дает
	// 5 баллов: пол, а не ошибка.
	downPaymentPercent := in.DownPayment / in.PropertyPrice * 100

	switch {
	case downPaymentPercent >= 20:
		score += 25
	case downPaymentPercent >= 10:
		score += 15
	case downPaymentPercent >= 5:
		score += 10
	default:
		score += 5
	}

	// 3. Кредитный рейтинг.
	switch {
	case in.CreditScore >= 740:
		score += 25
	case in.CreditScore >= 670:
		score += 18
	case in.CreditScore >= 580:
		score += 10
	default:
		score += 5
	}

	// 4. Резервный фонд в месяцах расходов. Нулевой долг считается
	// как 1, чтобы не делить на ноль.
	emergencyMonths := in.DownPayment * 0.1 / math.Max(in.MonthlyDebt, 1)

	switch {
	case emergencyMonths >= 6:
		score += 20
	case emergencyMonths >= 3:
		score += 12
	case emergencyMonths >= 1:
		score += 6
	}

	return clampScore(score)
}
