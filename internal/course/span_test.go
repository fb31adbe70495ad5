package course

import (
	"math"
	"testing"
)

func TestSegmentSpanConversions(t *testing.T) {
	span := SegmentSpan{FromKm: 3.0, ToKm: 5.0}

	if got := span.LengthKm(); got != 2.0 {
		t.Errorf("Expected length 2.0, got %f", got)
	}
	if !span.Valid() {
		t.Error("Expected span to be valid")
	}
	if got := span.AtFraction(0.5); got != 4.0 {
		t.Errorf("Expected midpoint at 4.0 km, got %f", got)
	}
	if got := span.Fraction(4.5); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Expected fraction 0.75 for 4.5 km, got %f", got)
	}

	// Round trip km -> fraction -> km
	for _, km := range []float64{3.0, 3.7, 4.2, 5.0} {
		back := span.AtFraction(span.Fraction(km))
		if math.Abs(back-km) > 1e-9 {
			t.Errorf("Round trip for %f km returned %f", km, back)
		}
	}
}

func TestSegmentSpanInvalid(t *testing.T) {
	if (SegmentSpan{FromKm: 2, ToKm: 2}).Valid() {
		t.Error("Zero-length span should be invalid")
	}
	if (SegmentSpan{FromKm: 3, ToKm: 1}).Valid() {
		t.Error("Inverted span should be invalid")
	}
}

func TestGeometrySpans(t *testing.T) {
	g := SegmentPairGeometry{
		SegID: "seg-7", EventA: "full", EventB: "half",
		FromKmA: 10, ToKmA: 12, FromKmB: 3, ToKmB: 5,
	}
	// The same fraction must address the same physical point on both rulers.
	if a, b := g.SpanA().AtFraction(0.25), g.SpanB().AtFraction(0.25); a != 10.5 || b != 3.5 {
		t.Errorf("Fraction 0.25 mapped to %.2f / %.2f, want 10.50 / 3.50", a, b)
	}
}

func TestRunnerValidate(t *testing.T) {
	good := Runner{Event: "full", ID: "F001", PaceMinPerKm: 5.5, StartOffsetSec: 120}
	if err := good.Validate(); err != nil {
		t.Errorf("Expected valid runner, got %v", err)
	}

	badPace := Runner{Event: "full", ID: "F002", PaceMinPerKm: 0}
	if err := badPace.Validate(); !IsInvalidInput(err) {
		t.Errorf("Expected InvalidInputError for zero pace, got %v", err)
	}

	badOffset := Runner{Event: "full", ID: "F003", PaceMinPerKm: 5.0, StartOffsetSec: -1}
	if err := badOffset.Validate(); !IsInvalidInput(err) {
		t.Errorf("Expected InvalidInputError for negative offset, got %v", err)
	}
}
