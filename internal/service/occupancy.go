package service

import "roomsign/internal/models"

const minutesPerDay = 24 * 60

// Virtual "now" values used when the displayed day is not today: a day fully
// in the past sees every event as over, a day fully in the future sees every
// event as still upcoming.
const (
	nowPastDay   = minutesPerDay
	nowFutureDay = -1
)

// Status computes the occupancy state at nowMin (minutes since local
// midnight) over start-sorted events. An event occupies its half-open
// interval [start, end): a meeting ending exactly at nowMin has already
// released the room. With no current event the room is free until the
// earliest later start, or 23:59 when nothing else happens that day.
func Status(events []models.CalendarEvent, nowMin int) models.OccupancyResult {
	for _, ev := range events {
		if nowMin >= ev.StartMinutes() && nowMin < ev.EndMinutes() {
			return models.OccupancyResult{
				Occupied:  true,
				UntilHour: ev.EndHour,
				UntilMin:  ev.EndMin,
			}
		}
	}

	nextStart := minutesPerDay
	for _, ev := range events {
		if s := ev.StartMinutes(); s > nowMin && s < nextStart {
			nextStart = s
		}
	}
	if nextStart < minutesPerDay {
		return models.OccupancyResult{UntilHour: nextStart / 60, UntilMin: nextStart % 60}
	}
	return models.OccupancyResult{UntilHour: 23, UntilMin: 59}
}
