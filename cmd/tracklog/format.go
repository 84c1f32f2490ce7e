package main

import (
	"fmt"
	"math"
)

// FormatDuration renders a duration in seconds as "3h 45m". Sub-minute
// durations render as seconds; negative durations keep their sign so bad
// source data stays visible.
func FormatDuration(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	total := int(math.Round(seconds))
	if total < 60 {
		return fmt.Sprintf("%s%ds", sign, total)
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%s%dm", sign, minutes)
	}
	return fmt.Sprintf("%s%dh %dm", sign, hours, minutes)
}

// FormatDistance renders meters as nautical miles, the customary unit for
// sailing logs.
func FormatDistance(meters float64) string {
	const metersPerNauticalMile = 1852.0
	return fmt.Sprintf("%.1f nm", meters/metersPerNauticalMile)
}
