package analysis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/banshee-data/congestion.report/internal/bins"
	"github.com/banshee-data/congestion.report/internal/convergence"
)

// Field-name duplication for the deprecated summary aliases happens in
// bins.EncodeSummaries; this file only assembles the report envelope the
// reporting and UI-export adapters consume.

// convergenceJSON is the wire form of a convergence record. The
// convergence point is omitted entirely when no crossing exists rather
// than emitted as a zero, which reads as "converges at segment start".
type convergenceJSON struct {
	SegID          string `json:"seg_id"`
	EventA         string `json:"event_a"`
	EventB         string `json:"event_b"`
	HasConvergence bool   `json:"has_convergence"`

	ConvergencePointKmA *float64 `json:"convergence_point_km_a,omitempty"`
	ZoneStartKmA        *float64 `json:"zone_start_km_a,omitempty"`
	ZoneEndKmA          *float64 `json:"zone_end_km_a,omitempty"`

	OvertakingA int      `json:"overtaking_a"`
	OvertakingB int      `json:"overtaking_b"`
	SampleIDsA  []string `json:"sample_ids_a,omitempty"`
	SampleIDsB  []string `json:"sample_ids_b,omitempty"`
}

type reportJSON struct {
	RunID         string            `json:"run_id"`
	EngineVersion string            `json:"engine_version"`
	StartedAt     time.Time         `json:"started_at"`
	CompletedAt   time.Time         `json:"completed_at"`
	Convergence   []convergenceJSON `json:"convergence"`
	Summaries     json.RawMessage   `json:"summaries"`
	SegmentErrors map[string]string `json:"segment_errors,omitempty"`
}

// EncodeReport serialises a batch report for the reporting and UI-export
// adapters.
func EncodeReport(r *Report, opts bins.EncodeOptions) ([]byte, error) {
	summaries, err := bins.EncodeSummaries(r.Summaries, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode flag summaries: %w", err)
	}

	out := reportJSON{
		RunID:         r.RunID,
		EngineVersion: r.EngineVersion,
		StartedAt:     r.StartedAt,
		CompletedAt:   r.CompletedAt,
		Convergence:   make([]convergenceJSON, len(r.Convergence)),
		Summaries:     summaries,
		SegmentErrors: r.SegmentErrors,
	}
	for i, c := range r.Convergence {
		out.Convergence[i] = encodeConvergence(c)
	}
	return json.Marshal(out)
}

func encodeConvergence(c convergence.Result) convergenceJSON {
	row := convergenceJSON{
		SegID:          c.SegID,
		EventA:         c.EventA,
		EventB:         c.EventB,
		HasConvergence: c.HasConvergence,
		OvertakingA:    c.OvertakingA,
		OvertakingB:    c.OvertakingB,
		SampleIDsA:     c.SampleIDsA,
		SampleIDsB:     c.SampleIDsB,
	}
	if c.HasConvergence {
		cp, zs, ze := c.ConvergencePointKmA, c.ZoneStartKmA, c.ZoneEndKmA
		row.ConvergencePointKmA = &cp
		row.ZoneStartKmA = &zs
		row.ZoneEndKmA = &ze
	}
	return row
}
