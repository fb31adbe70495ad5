package bins

import "github.com/banshee-data/congestion.report/internal/course"

// Canonical flow rate is persons per second across the full course width.
// The deprecated reporting unit persons/(metre·minute) normalises by
// course width; both conversions refuse a non-positive width rather than
// silently treating it as zero.

// RateToPerMeterPerMinute converts persons/s to persons/(m·min).
func RateToPerMeterPerMinute(ratePerSec, widthM float64) (float64, error) {
	if widthM <= 0 {
		return 0, course.Invalidf("width_m", "non-positive width %.3f m for rate conversion", widthM)
	}
	return ratePerSec / widthM * 60, nil
}

// RateFromPerMeterPerMinute converts persons/(m·min) back to persons/s.
func RateFromPerMeterPerMinute(ratePerMPerMin, widthM float64) (float64, error) {
	if widthM <= 0 {
		return 0, course.Invalidf("width_m", "non-positive width %.3f m for rate conversion", widthM)
	}
	return ratePerMPerMin * widthM / 60, nil
}
