package convergence

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/banshee-data/congestion.report/internal/course"
	"github.com/banshee-data/congestion.report/internal/kinematics"
	"github.com/banshee-data/congestion.report/internal/units"
)

// Input is the immutable snapshot the solver works from: one shared
// segment and the two events' rosters.
type Input struct {
	Geometry course.SegmentPairGeometry
	EventA   course.Event
	EventB   course.Event
	RosterA  []course.Runner
	RosterB  []course.Runner
}

// Options bound the solver and the overtaking counter.
type Options struct {
	// Epsilon guards the crossing denominator; pace pairs closer to
	// parallel than this produce no candidate.
	Epsilon float64
	// MaxSampledRunners bounds the precision pass to this many runners
	// per event.
	MaxSampledRunners int
	// MinOverlapSeconds is the minimum shared time-in-zone for a runner
	// pair to count as an interaction.
	MinOverlapSeconds float64
	// SampleLimit bounds the runner-id samples reported next to the
	// exact counts.
	SampleLimit int
}

// DefaultOptions returns the operational defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:           1e-9,
		MaxSampledRunners: 20,
		MinOverlapSeconds: 5.0,
		SampleLimit:       10,
	}
}

// Result is the convergence record for one segment pair, recomputed per
// run. ConvergencePointKmA is reported on event A's ruler.
type Result struct {
	SegID  string
	EventA string
	EventB string

	HasConvergence bool

	// Fraction is the unrounded segment-local crossing fraction; valid
	// only when HasConvergence is set. The counter uses it to map the
	// zone onto both rulers without accumulating rounding error.
	Fraction            float64
	ConvergencePointKmA float64
	ZoneStartKmA        float64
	ZoneEndKmA          float64

	OvertakingA int
	OvertakingB int
	SampleIDsA  []string
	SampleIDsB  []string
}

// candidate is one pace/offset hypothesis pair, paces in sec/km.
type candidate struct {
	paceA, offA float64
	paceB, offB float64
}

// Solve locates the segment-local fraction where the two events'
// arrival-time curves cross. Zero-length rulers and empty rosters are
// terminal no-convergence states; inverted rulers and non-positive paces
// are input errors scoped to this segment.
func Solve(in Input, opts Options) (Result, error) {
	res := Result{
		SegID:  in.Geometry.SegID,
		EventA: in.Geometry.EventA,
		EventB: in.Geometry.EventB,
	}

	spanA, spanB := in.Geometry.SpanA(), in.Geometry.SpanB()
	if spanA.LengthKm() < 0 || spanB.LengthKm() < 0 {
		return res, course.Invalidf("segment.span", "%s has an inverted ruler", in.Geometry)
	}
	if !spanA.Valid() || !spanB.Valid() {
		return res, nil // zero-length on either ruler: nothing to converge on
	}
	if len(in.RosterA) == 0 || len(in.RosterB) == 0 {
		return res, nil
	}
	if err := course.ValidateRoster(in.RosterA); err != nil {
		return res, err
	}
	if err := course.ValidateRoster(in.RosterB); err != nil {
		return res, err
	}

	candidates := buildCandidates(in, opts)

	bestS := math.NaN()
	bestDelta := math.Inf(1)
	for _, c := range candidates {
		s, ok := crossingFraction(spanA, spanB, in.EventA.StartSeconds(), in.EventB.StartSeconds(), c, opts.Epsilon)
		if !ok {
			continue
		}
		// Nearest-to-midpoint selection; course-marshal placement
		// depends on this exact tie-break, do not swap in
		// first/earliest.
		if delta := math.Abs(s - 0.5); delta < bestDelta {
			bestDelta = delta
			bestS = s
		}
	}
	if math.IsNaN(bestS) {
		return res, nil // all candidate pairs parallel or out of range
	}

	res.HasConvergence = true
	res.Fraction = bestS
	cp := roundKm(spanA.AtFraction(bestS))
	// Keep the reported point inside the ruler after rounding.
	res.ConvergencePointKmA = math.Min(math.Max(cp, spanA.FromKm), spanA.ToKm)
	res.ZoneStartKmA = res.ConvergencePointKmA
	res.ZoneEndKmA = spanA.ToKm
	return res, nil
}

// crossingFraction solves the linear crossing equation
//
//	startA+offA+paceA·(fromA+s·lenA) = startB+offB+paceB·(fromB+s·lenB)
//
// for s, returning ok=false when the curves are parallel (within epsilon)
// or the crossing falls outside the segment.
func crossingFraction(spanA, spanB course.SegmentSpan, startASec, startBSec float64, c candidate, epsilon float64) (float64, bool) {
	denom := c.paceA*spanA.LengthKm() - c.paceB*spanB.LengthKm()
	if math.Abs(denom) < epsilon {
		return 0, false
	}
	num := (startBSec + c.offB) - (startASec + c.offA) + c.paceB*spanB.FromKm - c.paceA*spanA.FromKm
	s := num / denom
	if s < 0 || s > 1 {
		return 0, false
	}
	return s, true
}

// buildCandidates generates the pace/offset hypothesis pairs: a coarse
// cross product of each roster's pace quantiles with zero offsets, then a
// bounded sample of real runners carrying their true paces and offsets.
func buildCandidates(in Input, opts Options) []candidate {
	var out []candidate

	qa := kinematics.PaceQuantiles(in.RosterA, kinematics.SweepQuantiles)
	qb := kinematics.PaceQuantiles(in.RosterB, kinematics.SweepQuantiles)
	for _, pa := range qa {
		for _, pb := range qb {
			out = append(out, candidate{
				paceA: units.PaceMinPerKmToSecPerKm(pa),
				paceB: units.PaceMinPerKmToSecPerKm(pb),
			})
		}
	}

	rng := rand.New(rand.NewSource(segmentSeed(in.Geometry)))
	sampleA := sampleRunners(in.RosterA, opts.MaxSampledRunners, rng)
	sampleB := sampleRunners(in.RosterB, opts.MaxSampledRunners, rng)
	for _, ra := range sampleA {
		for _, rb := range sampleB {
			out = append(out, candidate{
				paceA: ra.PaceSecPerKm(), offA: ra.StartOffsetSec,
				paceB: rb.PaceSecPerKm(), offB: rb.StartOffsetSec,
			})
		}
	}
	return out
}

// segmentSeed derives a stable per-segment-pair seed so repeated runs of
// the same batch sample the same runners and report identical results.
func segmentSeed(g course.SegmentPairGeometry) int64 {
	h := fnv.New64a()
	h.Write([]byte(g.SegID))
	h.Write([]byte{0})
	h.Write([]byte(g.EventA))
	h.Write([]byte{0})
	h.Write([]byte(g.EventB))
	return int64(h.Sum64())
}

// sampleRunners returns up to max runners. Small rosters are used whole;
// larger ones are sampled without replacement from rng.
func sampleRunners(roster []course.Runner, max int, rng *rand.Rand) []course.Runner {
	if max <= 0 || len(roster) <= max {
		return roster
	}
	out := make([]course.Runner, 0, max)
	for _, idx := range rng.Perm(len(roster))[:max] {
		out = append(out, roster[idx])
	}
	return out
}

// roundKm rounds a course position to 2 decimals (10m resolution) for
// reporting.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
