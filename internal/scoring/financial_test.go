package scoring

import "testing"

// TestFinancialScoreBreakdown проверяет сумму вкладов на эталонном профиле.
func TestFinancialScoreBreakdown(t *testing.T) {
	in := Input{
		AnnualIncome:  75000,
		MonthlyDebt:   800,
		DownPayment:   50000,
		LoanAmount:    400000,
		AnnualRate:    0.065,
		CreditScore:   760,
		PropertyPrice: 450000,
		StressLevel:   2,
	}

	// DTI 0.53 -> 0, взнос 11.1% -> 15, рейтинг 760 -> 25, резерв 6.25 мес -> 20.
	if got := FinancialScore(in); got != 60 {
		t.Fatalf("expected financial score 60, got %d", got)
	}
}

// TestFinancialScoreZeroDebt проверяет защиту резервного фонда от деления на ноль.
func TestFinancialScoreZeroDebt(t *testing.T) {
	in := Input{
		AnnualIncome:  90000,
		MonthlyDebt:   0,
		DownPayment:   30000,
		LoanAmount:    200000,
		AnnualRate:    0.07,
		CreditScore:   710,
		PropertyPrice: 300000,
		StressLevel:   1,
	}

	// 30000*0.1/max(0,1) = 3000 месяцев, верхний диапазон резерва.
	got := FinancialScore(in)
	if got < 0 || got > 100 {
		t.Fatalf("score out of range: %d", got)
	}

	// Убираем вклад резерва и проверяем, что он был максимальным.
	in.DownPayment = 0
	withoutReserve := FinancialScore(in)
	// Первый взнос 30000 давал также 15 баллов за процент взноса (10%).
	if got-withoutReserve != 20+10 {
		t.Fatalf("expected reserve 20 and down payment 10 points, diff %d", got-withoutReserve)
	}
}

// TestFinancialScoreBestCase проверяет максимум 100 на идеальном профиле.
func TestFinancialScoreBestCase(t *testing.T) {
	in := Input{
		AnnualIncome:  500000,
		MonthlyDebt:   100,
		DownPayment:   200000,
		LoanAmount:    100000,
		AnnualRate:    0.065,
		CreditScore:   800,
		PropertyPrice: 300000,
		StressLevel:   1,
	}

	if got := FinancialScore(in); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

// TestFinancialScoreDownPaymentFloor проверяет, что минимальный взнос дает 5 баллов.
func TestFinancialScoreDownPaymentFloor(t *testing.T) {
	base := Input{
		AnnualIncome:  40000,
		MonthlyDebt:   2000,
		DownPayment:   0,
		LoanAmount:    400000,
		AnnualRate:    0.09,
		CreditScore:   500,
		PropertyPrice: 400000,
		StressLevel:   5,
	}

	// DTI за пределами, рейтинг < 580 -> 5, взнос 0% -> пол 5, резерв 0.
	if got := FinancialScore(base); got != 10 {
		t.Fatalf("expected worst-case score 10, got %d", got)
	}
}
