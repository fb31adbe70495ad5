// Package kinematics provides the constant-pace arrival-time model and
// roster pace statistics used by the convergence solver.
package kinematics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/congestion.report/internal/course"
	"github.com/banshee-data/congestion.report/internal/units"
)

// ArrivalTimeSeconds returns the moment (seconds after midnight) a runner
// reaches positionKm on their event's course, assuming constant pace over
// the whole distance. Deliberately ignores acceleration, fatigue and
// terrain; the model only needs to rank arrival order on short shared
// segments.
func ArrivalTimeSeconds(eventStartMin, startOffsetSec, positionKm, paceMinPerKm float64) float64 {
	return units.MinutesToSeconds(eventStartMin) + startOffsetSec +
		units.PaceMinPerKmToSecPerKm(paceMinPerKm)*positionKm
}

// RunnerArrivalSeconds is ArrivalTimeSeconds applied to a roster record.
func RunnerArrivalSeconds(ev course.Event, r course.Runner, positionKm float64) float64 {
	return ArrivalTimeSeconds(ev.StartMinutes, r.StartOffsetSec, positionKm, r.PaceMinPerKm)
}

// SweepQuantiles are the pace quantiles used for the coarse candidate
// sweep in the convergence solver.
var SweepQuantiles = []float64{0.05, 0.25, 0.50, 0.75, 0.95}

// PaceQuantiles returns the requested empirical quantiles of a roster's
// paces in min/km. Returns nil for an empty roster.
func PaceQuantiles(roster []course.Runner, probs []float64) []float64 {
	if len(roster) == 0 {
		return nil
	}
	paces := make([]float64, len(roster))
	for i, r := range roster {
		paces[i] = r.PaceMinPerKm
	}
	sort.Float64s(paces)

	out := make([]float64, len(probs))
	for i, p := range probs {
		out[i] = stat.Quantile(p, stat.Empirical, paces, nil)
	}
	return out
}
