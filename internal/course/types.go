package course

import (
	"fmt"

	"github.com/banshee-data/congestion.report/internal/units"
)

// Event describes one race event for a single run of the analysis.
type Event struct {
	Name string
	// StartMinutes is the scheduled gun time in minutes after midnight.
	StartMinutes float64
	// DistanceKm is the total course distance for this event.
	DistanceKm float64
}

// StartSeconds returns the gun time in seconds after midnight.
func (e Event) StartSeconds() float64 { return units.MinutesToSeconds(e.StartMinutes) }

// Runner is one participant record from the external roster. Immutable for
// the duration of a run.
type Runner struct {
	Event string
	// ID is unique within the runner's event, not globally.
	ID string
	// PaceMinPerKm is the runner's constant pace in minutes per kilometre.
	PaceMinPerKm float64
	DistanceKm   float64
	// StartOffsetSec is the delay between gun time and the runner actually
	// crossing the start line (wave/corral offset).
	StartOffsetSec float64
}

// PaceSecPerKm returns the pace converted to seconds per kilometre.
func (r Runner) PaceSecPerKm() float64 {
	return units.PaceMinPerKmToSecPerKm(r.PaceMinPerKm)
}

// Validate checks the roster invariants for a single runner.
func (r Runner) Validate() error {
	if r.PaceMinPerKm <= 0 {
		return Invalidf("runner.pace", "runner %s/%s has non-positive pace %.3f min/km",
			r.Event, r.ID, r.PaceMinPerKm)
	}
	if r.StartOffsetSec < 0 {
		return Invalidf("runner.start_offset", "runner %s/%s has negative start offset %.1fs",
			r.Event, r.ID, r.StartOffsetSec)
	}
	return nil
}

// ValidateRoster validates every runner in a roster, failing on the first
// violation.
func ValidateRoster(roster []Runner) error {
	for _, r := range roster {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SegmentPairGeometry describes one physical course segment shared by two
// events, with each event's own distance ruler over the same path.
type SegmentPairGeometry struct {
	SegID  string
	EventA string
	EventB string

	FromKmA float64
	ToKmA   float64
	FromKmB float64
	ToKmB   float64

	// OvertakeFlag marks segments eligible for convergence analysis.
	// Segments where overtaking is prohibited (or physically impossible)
	// are skipped, not failed.
	OvertakeFlag bool

	// WidthM is the usable course width in metres, used for rate unit
	// conversions downstream.
	WidthM float64
}

// SpanA returns event A's ruler view of the segment.
func (g SegmentPairGeometry) SpanA() SegmentSpan {
	return SegmentSpan{FromKm: g.FromKmA, ToKm: g.ToKmA}
}

// SpanB returns event B's ruler view of the segment.
func (g SegmentPairGeometry) SpanB() SegmentSpan {
	return SegmentSpan{FromKm: g.FromKmB, ToKm: g.ToKmB}
}

func (g SegmentPairGeometry) String() string {
	return fmt.Sprintf("segment %s (%s %.2f-%.2fkm / %s %.2f-%.2fkm)",
		g.SegID, g.EventA, g.FromKmA, g.ToKmA, g.EventB, g.FromKmB, g.ToKmB)
}
