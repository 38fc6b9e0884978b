package ics

import (
	"strings"
	"testing"
	"time"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load Europe/Berlin: %v", err)
	}
	return loc
}

// fixed reference instant: 2026-01-29 12:00 in Berlin (UTC+1 in January)
func noonBerlin(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 1, 29, 12, 0, 0, 0, berlin(t))
}

func vevent(lines ...string) string {
	return "BEGIN:VEVENT\n" + strings.Join(lines, "\n") + "\nEND:VEVENT\n"
}

func TestBlocks(t *testing.T) {
	doc := "BEGIN:VCALENDAR\n" +
		vevent("SUMMARY:One") +
		vevent("SUMMARY:Two") +
		"END:VCALENDAR\n"
	blocks := Blocks(doc)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	for i, b := range blocks {
		if !strings.HasPrefix(b, "BEGIN:VEVENT") || !strings.HasSuffix(b, "END:VEVENT") {
			t.Fatalf("block %d missing markers: %q", i, b)
		}
	}
}

func TestBlocks_UnmatchedEndStopsWithoutError(t *testing.T) {
	doc := vevent("SUMMARY:Complete") + "BEGIN:VEVENT\nSUMMARY:Truncated"
	blocks := Blocks(doc)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !strings.Contains(blocks[0], "SUMMARY:Complete") {
		t.Fatalf("wrong block kept: %q", blocks[0])
	}
}

func TestBlocks_DegenerateInputTerminates(t *testing.T) {
	// end marker before begin, plus overlapping-looking markers
	doc := "END:VEVENT" + vevent("SUMMARY:A") + "BEGIN:VEVENT"
	blocks := Blocks(doc)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
}

func TestExtract_SameDayEvent(t *testing.T) {
	doc := vevent(
		"DTSTART:20260129T090000",
		"DTEND:20260129T100000",
		"SUMMARY:Standup",
	)
	events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.StartHour != 9 || ev.StartMin != 0 || ev.EndHour != 10 || ev.EndMin != 0 {
		t.Fatalf("unexpected times: %+v", ev)
	}
	if ev.Summary != "Standup" {
		t.Fatalf("unexpected summary: %q", ev.Summary)
	}
}

func TestExtract_UTCSuffixConvertsToLocal(t *testing.T) {
	doc := vevent(
		"DTSTART:20260129T080000Z",
		"DTEND:20260129T090000Z",
		"SUMMARY:Sync",
	)
	events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	// Berlin is UTC+1 in January
	if events[0].StartHour != 9 || events[0].StartMin != 0 {
		t.Fatalf("expected start 09:00 local, got %02d:%02d", events[0].StartHour, events[0].StartMin)
	}
	if events[0].EndHour != 10 || events[0].EndMin != 0 {
		t.Fatalf("expected end 10:00 local, got %02d:%02d", events[0].EndHour, events[0].EndMin)
	}
}

func TestExtract_MalformedUTCKeepsNaiveReading(t *testing.T) {
	doc := vevent(
		"DTSTART:20260129T0900ZZ", // unparseable as any UTC layout
		"SUMMARY:Odd",
	)
	events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].StartHour != 9 || events[0].StartMin != 0 {
		t.Fatalf("expected naive 09:00, got %02d:%02d", events[0].StartHour, events[0].StartMin)
	}
}

func TestExtract_AllDayDefaults(t *testing.T) {
	doc := vevent(
		"DTSTART;VALUE=DATE:20260129",
		"SUMMARY:Offsite",
	)
	events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.StartHour != 0 || ev.StartMin != 0 {
		t.Fatalf("expected start 00:00, got %02d:%02d", ev.StartHour, ev.StartMin)
	}
	if ev.EndHour != 23 || ev.EndMin != 59 {
		t.Fatalf("expected end 23:59, got %02d:%02d", ev.EndHour, ev.EndMin)
	}
}

func TestExtract_IndependentEndDefault(t *testing.T) {
	// timed start but no DTEND at all: end still defaults to 23:59
	doc := vevent(
		"DTSTART:20260129T140000",
		"SUMMARY:OpenEnd",
	)
	events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.StartHour != 14 || ev.EndHour != 23 || ev.EndMin != 59 {
		t.Fatalf("unexpected times: %+v", ev)
	}
}

func TestExtract_ParameterizedFieldsAndLastOccurrenceWins(t *testing.T) {
	doc := vevent(
		"DTSTART;TZID=Europe/Berlin:20260129T080000",
		"SUMMARY:First",
		"DTSTART;TZID=Europe/Berlin:20260129T090000",
		"SUMMARY:Team: weekly review",
	)
	events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].StartHour != 9 {
		t.Fatalf("last DTSTART should win, got start %02d:%02d", events[0].StartHour, events[0].StartMin)
	}
	// value is everything after the final colon
	if events[0].Summary != "weekly review" {
		t.Fatalf("unexpected summary: %q", events[0].Summary)
	}
}

func TestExtract_OtherDaysDiscarded(t *testing.T) {
	doc := vevent("DTSTART:20260128T090000", "SUMMARY:Yesterday") +
		vevent("DTSTART:20260129T090000", "SUMMARY:Today") +
		vevent("DTSTART:20260130T090000", "SUMMARY:Tomorrow")
	events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Summary != "Today" {
		t.Fatalf("kept the wrong event: %q", events[0].Summary)
	}
}

func TestExtract_SortedByStartTime(t *testing.T) {
	doc := vevent("DTSTART:20260129T150000", "SUMMARY:Late") +
		vevent("DTSTART:20260129T080000", "SUMMARY:Early") +
		vevent("DTSTART:20260129T120000", "SUMMARY:Mid")
	events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t))
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, want := range []string{"Early", "Mid", "Late"} {
		if events[i].Summary != want {
			t.Fatalf("position %d: got %q, want %q", i, events[i].Summary, want)
		}
	}
}

func TestExtract_FoldedSummary(t *testing.T) {
	doc := "BEGIN:VEVENT\r\nDTSTART:20260129T090000\r\nSUMMARY:Board\r\n  meeting\r\nEND:VEVENT\r\n"
	events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Summary != "Board meeting" {
		t.Fatalf("unexpected summary: %q", events[0].Summary)
	}
}

func TestExtract_DefaultsToNowDateWhenNoExplicitDate(t *testing.T) {
	doc := vevent("DTSTART:20260129T090000", "SUMMARY:Today")
	events := Extract([]byte(doc), "", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	// unparseable explicit date is ignored the same way
	events = Extract([]byte(doc), "29.01.2026", berlin(t), noonBerlin(t))
	if len(events) != 1 {
		t.Fatalf("expected 1 event with unparseable date, got %d", len(events))
	}
}

func TestExtract_GarbageNeverPanicsOrErrors(t *testing.T) {
	for _, doc := range []string{
		"",
		"not a calendar at all",
		"BEGIN:VEVENT",
		"BEGIN:VEVENT\nDTSTART\nEND:VEVENT",
		"BEGIN:VEVENT\nDTSTART:xx\nSUMMARY\nEND:VEVENT",
	} {
		if events := Extract([]byte(doc), "2026-01-29", berlin(t), noonBerlin(t)); len(events) != 0 {
			t.Fatalf("doc %q: expected no events, got %d", doc, len(events))
		}
	}
}
