package los

import (
	"testing"

	"github.com/banshee-data/congestion.report/internal/course"
)

func TestClassifyWalkwayTable(t *testing.T) {
	th := DefaultThresholds()

	cases := []struct {
		density float64
		want    Grade
	}{
		{0.0, GradeA},
		{0.36, GradeB}, // boundary belongs to the upper band
		{0.54, GradeC},
		{1.0, GradeD},
		{1.62, GradeE},
		{2.0, GradeF},
		{100.0, GradeF},
	}
	for _, c := range cases {
		got, err := th.Classify(c.density)
		if err != nil {
			t.Fatalf("Classify(%.2f) failed: %v", c.density, err)
		}
		if got != c.want {
			t.Errorf("Classify(%.2f) = %s, want %s", c.density, got, c.want)
		}
	}
}

func TestClassifyNegativeDensity(t *testing.T) {
	_, err := DefaultThresholds().Classify(-0.1)
	if !course.IsInvalidInput(err) {
		t.Errorf("Expected InvalidInputError for negative density, got %v", err)
	}
}

func TestClassifyBeyondConfiguredRanges(t *testing.T) {
	// Rulebook configured only up to grade C: anything beyond its max
	// classifies as the worst configured grade, never silently A.
	th, err := NewThresholds(map[Grade]DensityRange{
		GradeA: {Min: 0, Max: 0.5},
		GradeB: {Min: 0.5, Max: 1.0},
		GradeC: {Min: 1.0, Max: 1.5},
	})
	if err != nil {
		t.Fatalf("NewThresholds failed: %v", err)
	}
	got, err := th.Classify(9.0)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got != GradeC {
		t.Errorf("Expected worst configured grade C, got %s", got)
	}
}

func TestNewThresholdsRejectsEmptyRange(t *testing.T) {
	if _, err := NewThresholds(nil); err == nil {
		t.Error("Expected error for empty threshold map")
	}
	_, err := NewThresholds(map[Grade]DensityRange{GradeA: {Min: 1, Max: 1}})
	if !course.IsInvalidInput(err) {
		t.Errorf("Expected InvalidInputError for empty range, got %v", err)
	}
}
