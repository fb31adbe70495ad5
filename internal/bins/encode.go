package bins

import (
	"encoding/json"
	"fmt"

	"github.com/banshee-data/congestion.report/internal/los"
)

// EncodeOptions controls summary serialisation.
type EncodeOptions struct {
	// IncludeLegacyAliases emits the deprecated field names alongside the
	// canonical ones for the current transition window. Consumers are
	// migrating to the canonical names; drop the aliases by turning this
	// off once the window closes.
	IncludeLegacyAliases bool

	// SegmentWidthsM supplies course width per segment so the deprecated
	// persons/(m·min) rate alias can be derived. Segments absent from the
	// map omit that alias.
	SegmentWidthsM map[string]float64
}

// DefaultEncodeOptions returns the transition-window defaults: aliases on.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{IncludeLegacyAliases: true}
}

// summaryJSON is the wire form of a SegmentFlagSummary. Canonical names
// first; pointer fields are the deprecated aliases, present only during
// the transition window. Alias duplication lives here and nowhere else —
// business logic upstream only ever sees canonical fields.
type summaryJSON struct {
	SegmentID     string       `json:"segment_id"`
	FlaggedBins   int          `json:"flagged_bins"`
	WorstSeverity los.Severity `json:"worst_severity"`
	WorstLOS      los.Grade    `json:"worst_los"`
	PeakDensity   float64      `json:"peak_density"`
	PeakRate      float64      `json:"peak_rate"`

	// Deprecated aliases.
	SegID          *string       `json:"seg_id,omitempty"`
	NFlagged       *int          `json:"n_flagged,omitempty"`
	MaxSeverity    *los.Severity `json:"max_severity,omitempty"`
	MaxLOS         *los.Grade    `json:"max_los,omitempty"`
	PeakDensityPM2 *float64      `json:"peak_density_pm2,omitempty"`
	RatePerMPerMin *float64      `json:"rate_per_m_per_min,omitempty"`
}

// EncodeSummaries serialises flag summaries to JSON for the reporting and
// UI-export adapters.
func EncodeSummaries(summaries []SegmentFlagSummary, opts EncodeOptions) ([]byte, error) {
	out := make([]summaryJSON, len(summaries))
	for i, s := range summaries {
		row := summaryJSON{
			SegmentID:     s.SegmentID,
			FlaggedBins:   s.FlaggedBins,
			WorstSeverity: s.WorstSeverity,
			WorstLOS:      s.WorstLOS,
			PeakDensity:   s.PeakDensity,
			PeakRate:      s.PeakRate,
		}
		if opts.IncludeLegacyAliases {
			segID := s.SegmentID
			nFlagged := s.FlaggedBins
			maxSev := s.WorstSeverity
			maxLOS := s.WorstLOS
			peakDensity := s.PeakDensity
			row.SegID = &segID
			row.NFlagged = &nFlagged
			row.MaxSeverity = &maxSev
			row.MaxLOS = &maxLOS
			row.PeakDensityPM2 = &peakDensity

			if width, ok := opts.SegmentWidthsM[s.SegmentID]; ok {
				legacyRate, err := RateToPerMeterPerMinute(s.PeakRate, width)
				if err != nil {
					return nil, fmt.Errorf("segment %s: %w", s.SegmentID, err)
				}
				row.RatePerMPerMin = &legacyRate
			}
		}
		out[i] = row
	}
	return json.Marshal(out)
}
