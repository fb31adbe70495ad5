// Package los implements Level-of-Service grading of crowd density and the
// operational severity scale attached to flagged bins. Both scales are
// single ordinal enums so that every "worst of" reduction in the system
// compares the same ordinals.
package los

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Grade is a Level-of-Service category, A (free flow) to F (jammed).
// The zero value is GradeA. Ordering is total: A < B < C < D < E < F.
type Grade int

const (
	GradeA Grade = iota
	GradeB
	GradeC
	GradeD
	GradeE
	GradeF
)

var gradeNames = [...]string{"A", "B", "C", "D", "E", "F"}

func (g Grade) String() string {
	if g < GradeA || g > GradeF {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return gradeNames[g]
}

// Worse reports whether g is a worse (more congested) grade than other.
func (g Grade) Worse(other Grade) bool { return g > other }

// ParseGrade converts a letter grade to a Grade. Case-insensitive.
func ParseGrade(s string) (Grade, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return GradeA, nil
	case "B":
		return GradeB, nil
	case "C":
		return GradeC, nil
	case "D":
		return GradeD, nil
	case "E":
		return GradeE, nil
	case "F":
		return GradeF, nil
	}
	return GradeA, fmt.Errorf("unknown LOS grade %q", s)
}

// MarshalJSON encodes the grade as its letter.
func (g Grade) MarshalJSON() ([]byte, error) { return json.Marshal(g.String()) }

// UnmarshalJSON decodes a letter grade.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseGrade(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Severity is the operational alert level attached to a bin or segment
// summary. Ordering is total: none < watch < alert < critical.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWatch
	SeverityAlert
	SeverityCritical
)

var severityNames = [...]string{"none", "watch", "alert", "critical"}

func (s Severity) String() string {
	if s < SeverityNone || s > SeverityCritical {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Worse reports whether s outranks other on the severity scale.
func (s Severity) Worse(other Severity) bool { return s > other }

// ParseSeverity converts a severity name to a Severity. "caution" is an
// accepted legacy spelling of watch.
func ParseSeverity(v string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "none", "":
		return SeverityNone, nil
	case "watch", "caution":
		return SeverityWatch, nil
	case "alert":
		return SeverityAlert, nil
	case "critical":
		return SeverityCritical, nil
	}
	return SeverityNone, fmt.Errorf("unknown flag severity %q", v)
}

// MarshalJSON encodes the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// UnmarshalJSON decodes a severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := ParseSeverity(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
