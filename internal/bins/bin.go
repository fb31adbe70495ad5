// Package bins consumes the externally produced time×distance occupancy
// grid: schema validation of the bin table, the single authoritative
// per-segment flag reduction, and rate unit conversions. The grid itself
// is built upstream; nothing here re-derives density, LOS or severity.
package bins

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/banshee-data/congestion.report/internal/course"
	"github.com/banshee-data/congestion.report/internal/los"
)

// Bin is one cell of the upstream occupancy grid: a half-open time
// interval × distance interval on a segment, carrying aggregate density
// and flow rate plus the classification attached upstream.
type Bin struct {
	SegmentID    string       `json:"segment_id"`
	TStart       time.Time    `json:"t_start"`
	TEnd         time.Time    `json:"t_end"`
	StartKm      float64      `json:"start_km"`
	EndKm        float64      `json:"end_km"`
	Density      float64      `json:"density"` // persons/m²
	Rate         float64      `json:"rate"`    // persons/s
	LOS          los.Grade    `json:"los"`
	FlagSeverity los.Severity `json:"flag_severity"`
	FlagReason   string       `json:"flag_reason,omitempty"`
}

// Table is an immutable, fully materialised bin table for one run.
type Table []Bin

// requiredColumns is the upstream schema contract. flag_reason is
// optional (empty for unflagged bins).
var requiredColumns = []string{
	"segment_id", "t_start", "t_end", "start_km", "end_km",
	"density", "rate", "los", "flag_severity",
}

// MissingUpstreamDataError reports bin-table rows that lack required
// columns. The table is safety-relevant output, so missing fields are
// never silently defaulted.
type MissingUpstreamDataError struct {
	Missing []string
}

func (e *MissingUpstreamDataError) Error() string {
	return fmt.Sprintf("bin table missing required columns: %s", strings.Join(e.Missing, ", "))
}

// DecodeTable decodes a JSON array of bin rows, enforcing the schema
// contract. Any required column absent from any row fails the whole
// table with the full list of missing columns; rows are then checked
// against the per-bin invariants.
func DecodeTable(data []byte) (Table, error) {
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode bin table: %w", err)
	}

	missing := map[string]bool{}
	for _, row := range rows {
		for _, col := range requiredColumns {
			if _, ok := row[col]; !ok {
				missing[col] = true
			}
		}
	}
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for col := range missing {
			names = append(names, col)
		}
		sort.Strings(names)
		return nil, &MissingUpstreamDataError{Missing: names}
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to decode bin rows: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks the per-bin invariants across the whole table.
func (t Table) Validate() error {
	for i, b := range t {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("bin %d (segment %s): %w", i, b.SegmentID, err)
		}
	}
	return nil
}

// Validate checks a single bin's invariants.
func (b Bin) Validate() error {
	if b.SegmentID == "" {
		return course.Invalidf("bin.segment_id", "empty segment id")
	}
	if !b.TStart.Before(b.TEnd) {
		return course.Invalidf("bin.t_start", "interval [%s, %s) is empty or inverted",
			b.TStart.Format(time.RFC3339), b.TEnd.Format(time.RFC3339))
	}
	if b.StartKm > b.EndKm {
		return course.Invalidf("bin.start_km", "start %.3f km beyond end %.3f km", b.StartKm, b.EndKm)
	}
	if b.Density < 0 {
		return course.Invalidf("bin.density", "negative density %.3f", b.Density)
	}
	if b.Rate < 0 {
		return course.Invalidf("bin.rate", "negative rate %.3f", b.Rate)
	}
	return nil
}
