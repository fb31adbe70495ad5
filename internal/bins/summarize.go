package bins

import (
	"sort"

	"github.com/banshee-data/congestion.report/internal/los"
)

// SegmentFlagSummary is the per-segment reduction of an already-classified
// bin table: how many bins carried a flag, the worst severity and LOS seen,
// and the peak density/rate. Derived per run and discarded after use.
type SegmentFlagSummary struct {
	SegmentID     string
	FlaggedBins   int
	WorstSeverity los.Severity
	WorstLOS      los.Grade
	PeakDensity   float64
	PeakRate      float64
}

// SummarizeFlags reduces a bin table into per-segment summaries, sorted by
// segment id. This is the single authoritative reduction path: both the
// narrative report and the UI export must consume these records so the two
// cannot diverge. Severity and LOS are never re-derived here, only
// compared by ordinal across bins classified upstream.
func SummarizeFlags(table Table) []SegmentFlagSummary {
	bySegment := map[string]*SegmentFlagSummary{}
	for _, b := range table {
		s, ok := bySegment[b.SegmentID]
		if !ok {
			s = &SegmentFlagSummary{SegmentID: b.SegmentID}
			bySegment[b.SegmentID] = s
		}
		if b.FlagSeverity.Worse(los.SeverityNone) {
			s.FlaggedBins++
		}
		if b.FlagSeverity.Worse(s.WorstSeverity) {
			s.WorstSeverity = b.FlagSeverity
		}
		if b.LOS.Worse(s.WorstLOS) {
			s.WorstLOS = b.LOS
		}
		if b.Density > s.PeakDensity {
			s.PeakDensity = b.Density
		}
		if b.Rate > s.PeakRate {
			s.PeakRate = b.Rate
		}
	}

	out := make([]SegmentFlagSummary, 0, len(bySegment))
	for _, s := range bySegment {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SegmentID < out[j].SegmentID })
	return out
}
