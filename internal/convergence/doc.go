// Package convergence locates where two events' runner streams begin to
// interleave on a shared course segment, and counts the runners involved.
//
// Each event measures the shared segment against its own distance ruler,
// so the solver works in the segment-local fraction s in [0,1] and maps
// results back to event A's ruler for reporting. Arrival-time curves are
// linear under the constant-pace model, so each candidate pace/offset
// pair yields at most one crossing; candidates come from a coarse pace
// quantile sweep plus a bounded sample of real roster entries.
//
// Finding no crossing is a legitimate terminal outcome, reported as
// Result.HasConvergence=false, never as an error.
package convergence
