package domain

import (
	"strconv"
	"strings"
	"time"
)

const drawingTimeLayout = "Monday, January 2, 2006 at 15:04"

// FormatRemaining renders a countdown as "2 days, 3 hours, 45 minutes".
// Zero units are omitted, and anything under a minute (or already past)
// renders as "0 minutes".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int64(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int64(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int64(d / time.Minute)

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, ", ")
}

// FormatDrawingTime renders a drawing time as "Sunday, October 25, 2026 at 00:00".
func FormatDrawingTime(t time.Time) string {
	return t.Format(drawingTimeLayout)
}

func plural(n int64, unit string) string {
	s := strconv.FormatInt(n, 10) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
