package los

import (
	"math"

	"github.com/banshee-data/congestion.report/internal/course"
)

// DensityRange is a half-open density interval [Min, Max) in persons/m².
type DensityRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Thresholds maps each grade to its density range. Built once per batch
// run from the externally parsed rulebook and passed into the classifier;
// never cached at package level, so two runs with different rulebooks
// cannot contaminate each other.
type Thresholds struct {
	ranges map[Grade]DensityRange
}

// NewThresholds builds a Thresholds from an externally parsed
// grade→range mapping. Grades absent from the map are simply not
// configured; at least one grade must be present.
func NewThresholds(ranges map[Grade]DensityRange) (*Thresholds, error) {
	if len(ranges) == 0 {
		return nil, course.Invalidf("thresholds", "no LOS grades configured")
	}
	copied := make(map[Grade]DensityRange, len(ranges))
	for g, r := range ranges {
		if r.Max <= r.Min {
			return nil, course.Invalidf("thresholds", "grade %s has empty range [%.3f, %.3f)", g, r.Min, r.Max)
		}
		copied[g] = r
	}
	return &Thresholds{ranges: copied}, nil
}

// DefaultThresholds is the fallback walkway table (persons/m², after
// Fruin's walkway LOS bands). It is used only when the caller supplies no
// rulebook; operational runs are expected to provide their own.
func DefaultThresholds() *Thresholds {
	t, _ := NewThresholds(map[Grade]DensityRange{
		GradeA: {Min: 0, Max: 0.36},
		GradeB: {Min: 0.36, Max: 0.54},
		GradeC: {Min: 0.54, Max: 0.72},
		GradeD: {Min: 0.72, Max: 1.08},
		GradeE: {Min: 1.08, Max: 1.63},
		GradeF: {Min: 1.63, Max: math.Inf(1)},
	})
	return t
}

// Classify maps a density scalar to the grade whose [Min, Max) range
// contains it. Density beyond every configured range classifies as the
// worst configured grade, so a saturated table never under-reports.
func (t *Thresholds) Classify(density float64) (Grade, error) {
	if density < 0 {
		return GradeA, course.Invalidf("density", "negative density %.3f persons/m2", density)
	}
	worst := GradeA
	worstSeen := false
	for g := GradeA; g <= GradeF; g++ {
		r, ok := t.ranges[g]
		if !ok {
			continue
		}
		if density >= r.Min && density < r.Max {
			return g, nil
		}
		if !worstSeen || g.Worse(worst) {
			worst = g
			worstSeen = true
		}
	}
	return worst, nil
}

// Range returns the configured range for a grade, if any.
func (t *Thresholds) Range(g Grade) (DensityRange, bool) {
	r, ok := t.ranges[g]
	return r, ok
}
