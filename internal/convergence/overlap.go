package convergence

import (
	"math"
	"sort"

	"github.com/banshee-data/congestion.report/internal/course"
	"github.com/banshee-data/congestion.report/internal/kinematics"
)

// Overtaking quantifies co-presence beyond the convergence point: how
// many distinct runners of each event shared the zone with at least one
// runner of the other event for the qualifying duration.
type Overtaking struct {
	CountA int
	CountB int
	// SampleIDsA/B are bounded, id-ordered samples of the involved
	// runners; the counts above are exact regardless of the bound.
	SampleIDsA []string
	SampleIDsB []string
}

// zoneInterval is one runner's presence window in the overlap zone.
type zoneInterval struct {
	id    string
	enter float64
	exit  float64
}

// CountOvertaking counts qualifying runner interactions in the zone from
// the convergence fraction sCp to segment end. A pair interacts when
// their presence windows intersect for at least MinOverlapSeconds; each
// runner counts once no matter how many others they overlapped.
func CountOvertaking(in Input, sCp float64, opts Options) (Overtaking, error) {
	if err := course.ValidateRoster(in.RosterA); err != nil {
		return Overtaking{}, err
	}
	if err := course.ValidateRoster(in.RosterB); err != nil {
		return Overtaking{}, err
	}

	spanA, spanB := in.Geometry.SpanA(), in.Geometry.SpanB()
	intervalsA := zoneIntervals(in.EventA, in.RosterA, spanA.AtFraction(sCp), spanA.ToKm)
	intervalsB := zoneIntervals(in.EventB, in.RosterB, spanB.AtFraction(sCp), spanB.ToKm)

	involvedA := map[string]bool{}
	involvedB := map[string]bool{}
	for _, a := range intervalsA {
		for _, b := range intervalsB {
			start := math.Max(a.enter, b.enter)
			end := math.Min(a.exit, b.exit)
			if end > start && end-start >= opts.MinOverlapSeconds {
				involvedA[a.id] = true
				involvedB[b.id] = true
			}
		}
	}

	return Overtaking{
		CountA:     len(involvedA),
		CountB:     len(involvedB),
		SampleIDsA: sampleIDs(involvedA, opts.SampleLimit),
		SampleIDsB: sampleIDs(involvedB, opts.SampleLimit),
	}, nil
}

// zoneIntervals computes each runner's enter/exit times for the zone
// [cpKm, endKm] on that runner's own ruler.
func zoneIntervals(ev course.Event, roster []course.Runner, cpKm, endKm float64) []zoneInterval {
	out := make([]zoneInterval, len(roster))
	for i, r := range roster {
		out[i] = zoneInterval{
			id:    r.ID,
			enter: kinematics.RunnerArrivalSeconds(ev, r, cpKm),
			exit:  kinematics.RunnerArrivalSeconds(ev, r, endKm),
		}
	}
	return out
}

// sampleIDs returns up to limit ids in lexical order. Sorting makes the
// sample independent of roster order and map iteration.
func sampleIDs(set map[string]bool, limit int) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// Analyze runs the solver and, when a convergence point exists, the
// overtaking counter, producing the complete per-segment record.
func Analyze(in Input, opts Options) (Result, error) {
	res, err := Solve(in, opts)
	if err != nil || !res.HasConvergence {
		return res, err
	}
	ov, err := CountOvertaking(in, res.Fraction, opts)
	if err != nil {
		return res, err
	}
	res.OvertakingA = ov.CountA
	res.OvertakingB = ov.CountB
	res.SampleIDsA = ov.SampleIDsA
	res.SampleIDsB = ov.SampleIDsB
	return res, nil
}
