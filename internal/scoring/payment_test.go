package scoring

import (
	"math"
	"testing"
)

// TestMonthlyPaymentZeroRate проверяет точное деление при нулевой ставке.
func TestMonthlyPaymentZeroRate(t *testing.T) {
	got := MonthlyPayment(360000, 0, 360)
	if got != 1000 {
		t.Fatalf("expected exactly 1000, got %v", got)
	}
}

// TestMonthlyPaymentAnnuity проверяет стандартную аннуитетную формулу.
func TestMonthlyPaymentAnnuity(t *testing.T) {
	got := MonthlyPayment(400000, 0.065, 360)
	if math.Abs(got-2528.27) > 0.01 {
		t.Fatalf("expected about 2528.27, got %v", got)
	}
}

// TestMonthlyPaymentZeroPrincipal проверяет нулевой платеж при нулевом долге.
func TestMonthlyPaymentZeroPrincipal(t *testing.T) {
	if got := MonthlyPayment(0, 0.07, 360); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

// TestEstimateAffordability проверяет расчет доступной цены жилья.
func TestEstimateAffordability(t *testing.T) {
	got := EstimateAffordability(75000, 50000, 400000, 0.065)

	if got.MaxMonthlyPayment != 1750 {
		t.Fatalf("expected max monthly payment 1750, got %d", got.MaxMonthlyPayment)
	}

	// maxLoan = 1750 * (1 - (1 + 0.065/12)^-360) / (0.065/12)
	wantMaxLoan := 1750 * (1 - math.Pow(1+0.065/12, -360)) / (0.065 / 12)
	wantMaxPrice := int(math.Round(wantMaxLoan + 50000))
	if got.MaxPrice != wantMaxPrice {
		t.Fatalf("expected max price %d, got %d", wantMaxPrice, got.MaxPrice)
	}

	if got.CurrentMonthlyPayment != 2528 {
		t.Fatalf("expected current payment 2528, got %d", got.CurrentMonthlyPayment)
	}
}

// TestEstimateAffordabilityZeroRate проверяет защиту от деления на ноль.
func TestEstimateAffordabilityZeroRate(t *testing.T) {
	got := EstimateAffordability(60000, 20000, 100000, 0)

	// 60000/12*0.28 = 1400 в месяц, 360 месяцев без процентов.
	if got.MaxMonthlyPayment != 1400 {
		t.Fatalf("expected max monthly payment 1400, got %d", got.MaxMonthlyPayment)
	}
	if got.MaxPrice != 1400*360+20000 {
		t.Fatalf("expected max price %d, got %d", 1400*360+20000, got.MaxPrice)
	}
}
