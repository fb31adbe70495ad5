package convergence

import (
	"math"
	"testing"

	"github.com/banshee-data/congestion.report/internal/course"
	"github.com/banshee-data/congestion.report/internal/testutil"
)

// symmetricInput builds two events with identical start times, congruent
// rulers and identical pace/offset distributions. The offsets are chosen
// so a crossing at exactly s=0.5 exists among the candidate pairs.
func symmetricInput() Input {
	roster := func(event string) []course.Runner {
		var out []course.Runner
		id := 'a'
		for _, pace := range []float64{4.0, 5.0} {
			for _, off := range []float64{0, 30, 60} {
				out = append(out, course.Runner{
					Event: event, ID: event + "-" + string(id),
					PaceMinPerKm: pace, StartOffsetSec: off,
				})
				id++
			}
		}
		return out
	}
	return Input{
		Geometry: course.SegmentPairGeometry{
			SegID: "sym-1", EventA: "east", EventB: "west",
			FromKmA: 0, ToKmA: 1, FromKmB: 0, ToKmB: 1,
			OvertakeFlag: true, WidthM: 4,
		},
		EventA:  course.Event{Name: "east", StartMinutes: 420},
		EventB:  course.Event{Name: "west", StartMinutes: 420},
		RosterA: roster("east"),
		RosterB: roster("west"),
	}
}

func TestSolveSymmetricMidpoint(t *testing.T) {
	res, err := Solve(symmetricInput(), DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !res.HasConvergence {
		t.Fatal("Expected convergence for symmetric input")
	}
	if math.Abs(res.Fraction-0.5) > 1e-9 {
		t.Errorf("Expected midpoint fraction 0.5, got %f", res.Fraction)
	}
	if math.Abs(res.ConvergencePointKmA-0.5) > 1e-9 {
		t.Errorf("Expected convergence point 0.5 km, got %f", res.ConvergencePointKmA)
	}
	if res.ZoneStartKmA != res.ConvergencePointKmA || res.ZoneEndKmA != 1.0 {
		t.Errorf("Unexpected zone [%f, %f]", res.ZoneStartKmA, res.ZoneEndKmA)
	}
}

func TestSolveZeroLengthSpan(t *testing.T) {
	in := symmetricInput()
	in.Geometry.FromKmB, in.Geometry.ToKmB = 2, 2
	res, err := Solve(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.HasConvergence {
		t.Error("Expected no convergence for zero-length ruler")
	}
}

func TestSolveInvertedSpan(t *testing.T) {
	in := symmetricInput()
	in.Geometry.FromKmA, in.Geometry.ToKmA = 5, 3
	_, err := Solve(in, DefaultOptions())
	testutil.AssertInvalidInput(t, err)
}

func TestSolveEmptyRoster(t *testing.T) {
	in := symmetricInput()
	in.RosterB = nil
	res, err := Solve(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.HasConvergence {
		t.Error("Expected no convergence for empty roster")
	}
}

func TestSolveParallelPaces(t *testing.T) {
	// Same single pace on both sides over congruent rulers: every
	// candidate pair is parallel, a terminal no-convergence state.
	in := symmetricInput()
	in.RosterA = []course.Runner{{Event: "east", ID: "e1", PaceMinPerKm: 5.0}}
	in.RosterB = []course.Runner{{Event: "west", ID: "w1", PaceMinPerKm: 5.0}}
	res, err := Solve(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.HasConvergence {
		t.Error("Expected no convergence for all-parallel pace pairs")
	}
}

func TestSolveNonPositivePace(t *testing.T) {
	in := symmetricInput()
	in.RosterA[0].PaceMinPerKm = 0
	_, err := Solve(in, DefaultOptions())
	testutil.AssertInvalidInput(t, err)
}

func TestSolveDeterministicAcrossRuns(t *testing.T) {
	// Large rosters exercise the bounded sampling path; the per-segment
	// seed must make repeated runs identical.
	in := symmetricInput()
	for i := 0; i < 60; i++ {
		in.RosterA = append(in.RosterA, course.Runner{
			Event: "east", ID: "bulk-a", PaceMinPerKm: 4.0 + float64(i%17)*0.07,
			StartOffsetSec: float64((i * 13) % 90),
		})
		in.RosterB = append(in.RosterB, course.Runner{
			Event: "west", ID: "bulk-b", PaceMinPerKm: 4.0 + float64(i%11)*0.09,
			StartOffsetSec: float64((i * 7) % 90),
		})
	}
	first, err := Solve(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	second, err := Solve(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if first.HasConvergence != second.HasConvergence || first.Fraction != second.Fraction {
		t.Errorf("Repeated solves disagree: %+v vs %+v", first, second)
	}
}
