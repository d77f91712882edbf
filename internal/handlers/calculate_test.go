package handlers

import "testing"

// TestClampStress проверяет нормализацию уровня стресса.
func TestClampStress(t *testing.T) {
	if got := clampStress(0); got != 3 {
		t.Fatalf("expected missing stress to default to 3, got %d", got)
	}

	if got := clampStress(-2); got != 1 {
		t.Fatalf("expected lower clamp 1, got %d", got)
	}
	if got := clampStress(9); got != 5 {
		t.Fatalf("expected upper clamp 5, got %d", got)
	}

	for level := 1; level <= 5; level++ {
		if got := clampStress(level); got != level {
			t.Fatalf("expected %d to pass through, got %d", level, got)
		}
	}
}
