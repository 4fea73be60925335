package schedules

import (
	"doccare-service/internal/pkg/constvars"
	"time"
)

type interval struct {
	Start time.Time
	End   time.Time
}

type clock struct {
	H int
	M int
}

// buildSlotIntervals expands every calendar day in [startDate, endDate]
// into fixed 30 minute slots fully contained in [from, to).
func buildSlotIntervals(startDate, endDate time.Time, from, to clock, loc *time.Location) []interval {
	step := time.Duration(constvars.ScheduleSlotIntervalInMinutes) * time.Minute

	var out []interval
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), from.H, from.M, 0, 0, loc)
		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), to.H, to.M, 0, 0, loc)

		for slotStart := dayStart; !slotStart.Add(step).After(dayEnd); slotStart = slotStart.Add(step) {
			out = append(out, interval{Start: slotStart.UTC(), End: slotStart.Add(step).UTC()})
		}
	}
	return out
}
