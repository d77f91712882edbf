package scoring

import (
	"reflect"
	"testing"
)

// TestComputeReferenceProfile проверяет полный расчет на эталонном профиле.
func TestComputeReferenceProfile(t *testing.T) {
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

	result := Compute(in)

	if result.FinancialScore != 60 {
		t.Fatalf("expected financial 60, got %d", result.FinancialScore)
	}
	if result.EmotionalScore != 70 {
		t.Fatalf("expected emotional 70, got %d", result.EmotionalScore)
	}
	// round(60*0.7 + 70*0.3) = 63.
	if result.TotalScore != 63 {
		t.Fatalf("expected total 63, got %d", result.TotalScore)
	}
	if result.Decision != DecisionNotYet {
		t.Fatalf("expected NOT YET, got %s", result.Decision)
	}
	if result.Message == "" {
		t.Fatal("expected non-empty message")
	}
}

// TestComputeDeterministic проверяет, что одинаковый вход дает одинаковый выход.
func TestComputeDeterministic(t *testing.T) {
	in := Input{
		AnnualIncome:  92000,
		MonthlyDebt:   450,
		DownPayment:   61000,
		LoanAmount:    310000,
		AnnualRate:    0.07,
		CreditScore:   705,
		PropertyPrice: 371000,
		StressLevel:   3,
		Confidence:    7,
		JobStability:  "Stable",
		LifeStability: "Somewhat Stable",
		Timeline:      "3-6 months",
		Location:      "Austin, TX",
	}

	first := Compute(in)
	second := Compute(in)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

// TestComputeScoresWithinBounds проверяет границы [0,100] на крайних входах.
func TestComputeScoresWithinBounds(t *testing.T) {
	inputs := []Input{
		{
			AnnualIncome:  20000,
			MonthlyDebt:   5000,
			DownPayment:   0,
			LoanAmount:    900000,
			AnnualRate:    0.09,
			CreditScore:   300,
			PropertyPrice: 900000,
			StressLevel:   5,
			Confidence:    1,
			JobStability:  "Very Unstable",
			LifeStability: "In Flux",
			Timeline:      "1-3 months",
		},
		{
			AnnualIncome:  900000,
			MonthlyDebt:   0,
			DownPayment:   400000,
			LoanAmount:    100000,
			AnnualRate:    0.065,
			CreditScore:   850,
			PropertyPrice: 500000,
			StressLevel:   1,
			Confidence:    10,
			JobStability:  "Very Stable",
			LifeStability: "Very Stable",
			Timeline:      "12+ months",
		},
	}

	for _, in := range inputs {
		result := Compute(in)
		for name, score := range map[string]int{
			"financial": result.FinancialScore,
			"emotional": result.EmotionalScore,
			"total":     result.TotalScore,
		} {
			if score < 0 || score > 100 {
				t.Fatalf("%s score out of range: %d", name, score)
			}
		}
	}
}

// TestDecisionBoundaries проверяет пороги решения 60 и 80.
func TestDecisionBoundaries(t *testing.T) {
	cases := []struct {
		total int
		want  Decision
	}{
		{100, DecisionYes},
		{80, DecisionYes},
		{79, DecisionNotYet},
		{60, DecisionNotYet},
		{59, DecisionNo},
		{0, DecisionNo},
	}

	for _, tc := range cases {
		if got := DecisionFor(tc.total); got != tc.want {
			t.Fatalf("total %d: expected %s, got %s", tc.total, tc.want, got)
		}
	}
}

// TestDecisionMonotonic проверяет, что решение не убывает с ростом оценки.
func TestDecisionMonotonic(t *testing.T) {
	rank := map[Decision]int{DecisionNo: 0, DecisionNotYet: 1, DecisionYes: 2}

	previous := DecisionFor(0)
	for total := 1; total <= 100; total++ {
		current := DecisionFor(total)
		if rank[current] < rank[previous] {
			t.Fatalf("decision degraded from %s to %s at total %d", previous, current, total)
		}
		previous = current
	}
}

// TestMessageBands проверяет сводку для каждого диапазона оценки.
func TestMessageBands(t *testing.T) {
	bands := []int{95, 85, 75, 65, 55, 45, 20}
	seen := make(map[string]bool)

	for _, total := range bands {
		message := MessageFor(total)
		if message == "" {
			t.Fatalf("empty message for total %d", total)
		}
		if seen[message] {
			t.Fatalf("duplicate message across bands: %q", message)
		}
		seen[message] = true
	}
}
