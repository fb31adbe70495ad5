// Package course holds the domain value types for multi-event race
// analysis: events, runner rosters, and shared-segment geometry.
//
// A physical course segment shared by two events is addressed by two
// different distance rulers (each event measures the segment against its
// own cumulative course distance). SegmentSpan models one ruler's view and
// provides the conversions between absolute kilometres and the
// segment-local fraction s in [0,1]; all cross-ruler arithmetic in the
// analysis layers goes through it.
package course
