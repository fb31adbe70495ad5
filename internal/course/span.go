package course

// SegmentSpan is one event's ruler over a shared physical segment: the
// half-open distance interval [FromKm, ToKm] measured against that event's
// own cumulative course distance. Positions inside the segment are
// exchanged between rulers as the dimensionless fraction s in [0,1]; the
// fraction refers to the same physical point on every ruler even when the
// rulers disagree on absolute kilometres.
type SegmentSpan struct {
	FromKm float64
	ToKm   float64
}

// LengthKm returns the span length on this ruler. A non-positive length
// marks the span unusable for convergence analysis.
func (s SegmentSpan) LengthKm() float64 { return s.ToKm - s.FromKm }

// Valid reports whether the span has positive length.
func (s SegmentSpan) Valid() bool { return s.LengthKm() > 0 }

// AtFraction converts a segment-local fraction to an absolute position on
// this ruler.
func (s SegmentSpan) AtFraction(frac float64) float64 {
	return s.FromKm + frac*s.LengthKm()
}

// Fraction converts an absolute position on this ruler to the
// segment-local fraction. The span must have positive length.
func (s SegmentSpan) Fraction(km float64) float64 {
	return (km - s.FromKm) / s.LengthKm()
}
