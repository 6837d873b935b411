// services/schedule/utils.go
package schedule

import (
	"fmt"
	"time"

	"github.com/yonid4/when-sub002/utils"
)

// sameDay reports whether t and day fall on the same calendar date, each in
// its own location.
func sameDay(t, day time.Time) bool {
	return t.Format(utils.DayFormat) == day.Format(utils.DayFormat)
}

// dayStart returns midnight of the given day in the day's location.
func dayStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

// minuteOfDay converts a minutes-from-midnight offset into an absolute time on day.
func minuteOfDay(day time.Time, minutes int) time.Time {
	return dayStart(day).Add(time.Duration(minutes) * time.Minute)
}

// roundToStep rounds a minutes-from-midnight value to the nearest multiple of step.
func roundToStep(minutes, step int) int {
	if step <= 0 {
		return minutes
	}
	return ((minutes + step/2) / step) * step
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rangeLabel renders a human-readable label for a time range.
func rangeLabel(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", formatTime(minutesFromMidnight(start)), formatTime(minutesFromMidnight(end)))
}

func minutesFromMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// formatTime converts minutes from midnight into a human-readable time string.
func formatTime(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, ampm)
}
