// Package units provides the shared pace and time unit conversions for
// the analysis core. Rosters carry pace in min/km and events carry start
// times in minutes after midnight; the solvers work in seconds, and every
// conversion between the two goes through here.
package units

// SecondsPerMinute is the scale between roster units and solver units.
const SecondsPerMinute = 60.0

// MinutesToSeconds converts a clock offset in minutes to seconds.
func MinutesToSeconds(minutes float64) float64 {
	return minutes * SecondsPerMinute
}

// PaceMinPerKmToSecPerKm converts a roster pace to solver units.
func PaceMinPerKmToSecPerKm(pace float64) float64 {
	return pace * SecondsPerMinute
}

// PaceSecPerKmToMinPerKm converts a solver pace back to roster units.
func PaceSecPerKmToMinPerKm(pace float64) float64 {
	return pace / SecondsPerMinute
}
