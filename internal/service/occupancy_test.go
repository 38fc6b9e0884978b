package service

import (
	"testing"

	"roomsign/internal/models"
)

func ev(sh, sm, eh, em int, summary string) models.CalendarEvent {
	return models.CalendarEvent{StartHour: sh, StartMin: sm, EndHour: eh, EndMin: em, Summary: summary}
}

func TestStatus_HalfOpenInterval(t *testing.T) {
	events := []models.CalendarEvent{ev(9, 0, 10, 0, "Standup")}

	// 09:59 — still inside
	got := Status(events, 599)
	if !got.Occupied || got.UntilHour != 10 || got.UntilMin != 0 {
		t.Fatalf("at 09:59 expected occupied until 10:00, got %+v", got)
	}

	// 10:00 sharp — event has released the room
	got = Status(events, 600)
	if got.Occupied {
		t.Fatalf("at 10:00 expected free, got %+v", got)
	}
	if got.UntilHour != 23 || got.UntilMin != 59 {
		t.Fatalf("no later event: expected free until 23:59, got %+v", got)
	}

	// 09:00 sharp — start is inclusive
	got = Status(events, 540)
	if !got.Occupied {
		t.Fatalf("at 09:00 expected occupied, got %+v", got)
	}
}

func TestStatus_FreeUntilNextStart(t *testing.T) {
	events := []models.CalendarEvent{
		ev(9, 0, 10, 0, "Standup"),
		ev(13, 30, 14, 0, "1:1"),
	}
	got := Status(events, 660) // 11:00
	if got.Occupied {
		t.Fatalf("expected free, got %+v", got)
	}
	if got.UntilHour != 13 || got.UntilMin != 30 {
		t.Fatalf("expected free until 13:30, got %+v", got)
	}
}

func TestStatus_EmptyDay(t *testing.T) {
	got := Status(nil, 480)
	if got.Occupied || got.UntilHour != 23 || got.UntilMin != 59 {
		t.Fatalf("expected free until 23:59, got %+v", got)
	}
}

func TestStatus_VirtualNowOverrides(t *testing.T) {
	events := []models.CalendarEvent{ev(9, 0, 10, 0, "Standup")}

	// past day: everything is over
	got := Status(events, nowPastDay)
	if got.Occupied || got.UntilHour != 23 || got.UntilMin != 59 {
		t.Fatalf("past day: expected free until 23:59, got %+v", got)
	}

	// future day: everything is still upcoming
	got = Status(events, nowFutureDay)
	if got.Occupied {
		t.Fatalf("future day: expected free, got %+v", got)
	}
	if got.UntilHour != 9 || got.UntilMin != 0 {
		t.Fatalf("future day: expected free until 09:00, got %+v", got)
	}
}

func TestStatus_OverlappingEventsFirstWins(t *testing.T) {
	events := []models.CalendarEvent{
		ev(9, 0, 12, 0, "Workshop"),
		ev(10, 0, 11, 0, "Nested"),
	}
	got := Status(events, 630) // 10:30, inside both
	if !got.Occupied || got.UntilHour != 12 {
		t.Fatalf("expected first (earliest) event to win, got %+v", got)
	}
}
