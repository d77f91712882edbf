package handlers

import "testing"

// TestHasRequiredFields проверяет обязательные поля анкеты.
func TestHasRequiredFields(t *testing.T) {
	complete := ScoreResponses{Income: 80000, Savings: 20000, TargetPrice: 300000}
	if !complete.hasRequiredFields() {
		t.Fatal("expected complete responses to pass")
	}

	missing := []ScoreResponses{
		{Savings: 20000, TargetPrice: 300000},
		{Income: 80000, TargetPrice: 300000},
		{Income: 80000, Savings: 20000},
	}
	for i, responses := range missing {
		if responses.hasRequiredFields() {
			t.Fatalf("case %d: expected missing field to fail", i)
		}
	}
}

// TestToQuestionnaire проверяет маппинг ответов анкеты в данные расчета.
func TestToQuestionnaire(t *testing.T) {
	responses := ScoreResponses{
		Income:        90000,
		Savings:       45000,
		MonthlyDebt:   600,
		CreditScore:   "700-739",
		TargetPrice:   350000,
		Confidence:    7,
		JobStability:  "Very Stable",
		LifeStability: "Stable",
		Location:      "Austin, TX",
		Timeline:      "6-12 months",
	}

	questionnaire := responses.toQuestionnaire()

	if questionnaire.Income != 90000 || questionnaire.Savings != 45000 {
		t.Fatalf("unexpected income/savings: %v/%v", questionnaire.Income, questionnaire.Savings)
	}
	if questionnaire.CreditScore != "700-739" {
		t.Fatalf("unexpected credit range: %s", questionnaire.CreditScore)
	}
	if questionnaire.Confidence != 7 || questionnaire.JobStability != "Very Stable" {
		t.Fatalf("unexpected emotional fields: %d/%s", questionnaire.Confidence, questionnaire.JobStability)
	}
	if questionnaire.Location != "Austin, TX" || questionnaire.Timeline != "6-12 months" {
		t.Fatalf("unexpected location/timeline: %s/%s", questionnaire.Location, questionnaire.Timeline)
	}
}
