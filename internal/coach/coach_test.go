package coach

import (
	"strings"
	"testing"
)

// TestClassifyTopic проверяет определение темы по ключевым словам.
func TestClassifyTopic(t *testing.T) {
	cases := map[string]Topic{
		"How do I fix my credit score?":        TopicCredit,
		"Should I keep saving more?":           TopicSavings,
		"Can I afford this house?":             TopicBudget,
		"Am I ready to buy?":                   TopicTimeline,
		"I'm really worried about this":        TopicStress,
		"I still have a car loan":              TopicDebt,
		"Where do I begin?":                    TopicGettingStarted,
		"How can I get better at this?":        TopicImprovement,
		"Tell me something about homebuying.":  TopicGeneral,
	}

	for message, want := range cases {
		if got := ClassifyTopic(message); got != want {
			t.Fatalf("%q: expected %s, got %s", message, want, got)
		}
	}
}

// TestClassifyTopicOrder проверяет, что первая тема в порядке проверки выигрывает.
func TestClassifyTopicOrder(t *testing.T) {
	// "credit" проверяется раньше "payment".
	if got := ClassifyTopic("credit card payment"); got != TopicCredit {
		t.Fatalf("expected credit to win, got %s", got)
	}
}

// TestRespondDeterministic проверяет детерминированность ответа.
func TestRespondDeterministic(t *testing.T) {
	ctx := Context{TotalScore: 63, FinancialScore: 60, EmotionalScore: 70, Income: 75000, Savings: 50000, TargetPrice: 450000}

	first := Respond("how is my credit?", PersonaAnalyst, ctx)
	second := Respond("how is my credit?", PersonaAnalyst, ctx)

	if first != second {
		t.Fatal("expected identical responses for identical input")
	}
}

// TestResponseForPersonas проверяет, что персоны дают разные ответы на одну тему.
func TestResponseForPersonas(t *testing.T) {
	ctx := Context{TotalScore: 63, FinancialScore: 60, EmotionalScore: 70}

	analyst := ResponseFor(PersonaAnalyst, TopicCredit, ctx)
	optimist := ResponseFor(PersonaOptimist, TopicCredit, ctx)
	navigator := ResponseFor(PersonaNavigator, TopicCredit, ctx)

	if analyst == optimist || optimist == navigator || analyst == navigator {
		t.Fatal("expected distinct responses per persona")
	}
}

// TestResponseForUnknownPersona проверяет фолбэк на navigator.
func TestResponseForUnknownPersona(t *testing.T) {
	ctx := Context{TotalScore: 50}

	got := ResponseFor(Persona("mystery"), TopicDebt, ctx)
	want := ResponseFor(PersonaNavigator, TopicDebt, ctx)

	if got != want {
		t.Fatal("expected unknown persona to fall back to navigator")
	}
}

// TestResponseFillsPlaceholders проверяет подстановку данных оценки.
func TestResponseFillsPlaceholders(t *testing.T) {
	ctx := Context{TotalScore: 63, FinancialScore: 60, EmotionalScore: 70, Income: 75000, Savings: 50000, TargetPrice: 450000}

	got := ResponseFor(PersonaAnalyst, TopicSavings, ctx)

	if strings.Contains(got, "{") {
		t.Fatalf("unfilled placeholder in response: %q", got)
	}
	if !strings.Contains(got, "$90,000") {
		t.Fatalf("expected 20%% target $90,000 in response: %q", got)
	}
	if !strings.Contains(got, "$40,000") {
		t.Fatalf("expected gap $40,000 in response: %q", got)
	}
}
