// Package testutil provides shared fixtures for the analysis test suites.
package testutil

import (
	"fmt"
	"testing"

	"github.com/banshee-data/congestion.report/internal/course"
)

// MakeRoster builds a roster of n runners with linearly spread paces and
// start offsets: runner i has pace basePace+i*paceStep min/km and offset
// i*offsetStepSec seconds.
func MakeRoster(event string, n int, basePace, paceStep, offsetStepSec float64) []course.Runner {
	out := make([]course.Runner, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, course.Runner{
			Event:          event,
			ID:             fmt.Sprintf("%s-%03d", event, i),
			PaceMinPerKm:   basePace + float64(i)*paceStep,
			StartOffsetSec: float64(i) * offsetStepSec,
		})
	}
	return out
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertInvalidInput fails the test unless err is an InvalidInputError.
func AssertInvalidInput(t *testing.T, err error) {
	t.Helper()
	if !course.IsInvalidInput(err) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}
