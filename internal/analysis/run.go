// Package analysis orchestrates one batch run over a course: convergence
// and overtaking for every overtake-eligible segment pair, plus the flag
// reduction of the upstream bin table. All inputs must be fully
// materialised before Run is called; nothing here performs I/O.
package analysis

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/congestion.report/internal/bins"
	"github.com/banshee-data/congestion.report/internal/convergence"
	"github.com/banshee-data/congestion.report/internal/course"
	"github.com/banshee-data/congestion.report/internal/monitoring"
	"github.com/banshee-data/congestion.report/internal/timeutil"
	"github.com/banshee-data/congestion.report/internal/version"
)

// Input is the immutable snapshot for one batch run.
type Input struct {
	// Events by name.
	Events map[string]course.Event
	// Rosters by event name.
	Rosters map[string][]course.Runner
	// Geometries lists every shared segment pair; only those with
	// OvertakeFlag set are analysed for convergence.
	Geometries []course.SegmentPairGeometry
	// BinTable is the upstream occupancy grid, already decoded and
	// validated via bins.DecodeTable or bins.Table.Validate.
	BinTable bins.Table
}

// Options configures one batch run.
type Options struct {
	// Workers bounds parallel segment analysis; segment pairs are
	// independent so any positive count is safe.
	Workers int
	// Convergence carries the solver and counter bounds.
	Convergence convergence.Options
	// Clock stamps the report; tests pin it.
	Clock timeutil.Clock
}

// DefaultOptions returns the batch defaults.
func DefaultOptions() Options {
	return Options{
		Workers:     4,
		Convergence: convergence.DefaultOptions(),
		Clock:       timeutil.SystemClock{},
	}
}

// Report is the output of one batch run, consumed by the reporting and
// UI-export adapters.
type Report struct {
	RunID string
	// EngineVersion records the build that produced the report, for
	// reproducibility when comparing runs.
	EngineVersion string
	StartedAt     time.Time
	CompletedAt   time.Time

	// Convergence holds one record per analysed segment pair, ordered
	// by segment id.
	Convergence []convergence.Result
	// Summaries is the authoritative per-segment flag reduction.
	Summaries []bins.SegmentFlagSummary
	// SegmentErrors records segments whose analysis failed, by segment
	// id. A failed segment never aborts the rest of the batch.
	SegmentErrors map[string]string
}

// segmentOutcome carries one worker's result back to the collector.
type segmentOutcome struct {
	segID  string
	result convergence.Result
	err    error
}

// Run executes one batch: validates the bin table, reduces it to flag
// summaries, and analyses every overtake-eligible segment pair across a
// bounded worker pool. Cancellation is cooperative between segments.
func Run(ctx context.Context, in Input, opts Options) (*Report, error) {
	clock := opts.Clock
	if clock == nil {
		clock = timeutil.SystemClock{}
	}
	report := &Report{
		RunID:         uuid.New().String(),
		EngineVersion: version.Version,
		StartedAt:     clock.Now(),
		SegmentErrors: map[string]string{},
	}

	if err := in.BinTable.Validate(); err != nil {
		return nil, fmt.Errorf("bin table rejected: %w", err)
	}
	report.Summaries = bins.SummarizeFlags(in.BinTable)

	eligible := make([]course.SegmentPairGeometry, 0, len(in.Geometries))
	for _, g := range in.Geometries {
		if g.OvertakeFlag {
			eligible = append(eligible, g)
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(eligible) {
		workers = len(eligible)
	}

	jobs := make(chan course.SegmentPairGeometry)
	outcomes := make(chan segmentOutcome, len(eligible))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range jobs {
				outcomes <- analyseSegment(in, g, opts.Convergence)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, g := range eligible {
			select {
			case <-ctx.Done():
				return
			case jobs <- g:
			}
		}
	}()

	wg.Wait()
	close(outcomes)

	for out := range outcomes {
		if out.err != nil {
			monitoring.Logf("segment %s analysis failed: %v", out.segID, out.err)
			report.SegmentErrors[out.segID] = out.err.Error()
			continue
		}
		report.Convergence = append(report.Convergence, out.result)
	}
	sort.Slice(report.Convergence, func(i, j int) bool {
		return report.Convergence[i].SegID < report.Convergence[j].SegID
	})

	report.CompletedAt = clock.Now()
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// analyseSegment assembles the solver input for one geometry and runs
// convergence plus overtaking. Unknown event names are input errors
// scoped to the segment, as are roster violations surfaced by the solver.
func analyseSegment(in Input, g course.SegmentPairGeometry, opts convergence.Options) segmentOutcome {
	evA, okA := in.Events[g.EventA]
	evB, okB := in.Events[g.EventB]
	if !okA || !okB {
		return segmentOutcome{
			segID: g.SegID,
			err:   course.Invalidf("segment.events", "%s references unknown event", g),
		}
	}

	res, err := convergence.Analyze(convergence.Input{
		Geometry: g,
		EventA:   evA,
		EventB:   evB,
		RosterA:  in.Rosters[g.EventA],
		RosterB:  in.Rosters[g.EventB],
	}, opts)
	if err != nil {
		return segmentOutcome{segID: g.SegID, err: err}
	}
	monitoring.Debugf("segment %s: convergence=%v point=%.2fkm overtaking=%d/%d",
		g.SegID, res.HasConvergence, res.ConvergencePointKmA, res.OvertakingA, res.OvertakingB)
	return segmentOutcome{segID: g.SegID, result: res}
}
