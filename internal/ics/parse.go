package ics

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"roomsign/internal/models"
)

const (
	compactDate = "20060102"
	inputDate   = "2006-01-02"

	// All-day convention: a missing start means start-of-day, a missing end
	// means end-of-day. The defaults are independent of each other.
	defaultStartHour, defaultStartMin = 0, 0
	defaultEndHour, defaultEndMin     = 23, 59
)

// clockRe picks the hour/minute out of a DTSTART/DTEND value such as
// "20260129T090000". No match means the value is date-only (all-day form).
var clockRe = regexp.MustCompile(`T(\d{2})(\d{2})`)

// utcLayouts are tried in order for UTC-suffixed values. The strict form
// comes first; the looser forms absorb exports that drop seconds or use
// extended notation. If none parses, the naive reading is kept.
var utcLayouts = []string{
	"20060102T150405Z",
	"20060102T1504Z",
	time.RFC3339,
}

// Extract parses a raw calendar document and returns the events on the
// target day, sorted by start time, converted to loc.
//
// onDate ("2006-01-02") overrides the filter date; empty or unparseable
// means "now's date in loc". Malformed calendar content never produces an
// error — unparseable blocks and fields degrade to the documented defaults
// or are dropped, so the caller always gets a usable (possibly empty) list.
func Extract(body []byte, onDate string, loc *time.Location, now time.Time) []models.CalendarEvent {
	if loc == nil {
		loc = time.Local
	}
	today := now.In(loc).Format(compactDate)
	if d := strings.TrimSpace(onDate); d != "" {
		if t, err := time.ParseInLocation(inputDate, d, loc); err == nil {
			today = t.Format(compactDate)
		}
	}

	var events []models.CalendarEvent
	for _, block := range Blocks(Unfold(string(body))) {
		dtStart, dtEnd, summary := blockFields(block)
		if eventDate(dtStart) != today {
			continue
		}
		sh, sm := resolveClock(dtStart, loc, defaultStartHour, defaultStartMin)
		eh, em := resolveClock(dtEnd, loc, defaultEndHour, defaultEndMin)
		events = append(events, models.CalendarEvent{
			StartHour: sh,
			StartMin:  sm,
			EndHour:   eh,
			EndMin:    em,
			Summary:   summary,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartMinutes() < events[j].StartMinutes()
	})
	return events
}

// blockFields extracts the DTSTART, DTEND and SUMMARY values of one VEVENT
// block. Recognition is deliberately loose: any line starting with one of the
// three keywords counts, the last occurrence wins, and the value is whatever
// follows the final colon (which skips parameter forms like "DTSTART;TZID=…:").
// Real-world calendar exports vary too much for a strict key-value grammar.
func blockFields(block string) (dtStart, dtEnd, summary string) {
	for _, line := range splitLines(block) {
		switch {
		case strings.HasPrefix(line, "DTSTART"):
			dtStart = afterLastColon(line)
		case strings.HasPrefix(line, "DTEND"):
			dtEnd = afterLastColon(line)
		case strings.HasPrefix(line, "SUMMARY"):
			summary = afterLastColon(line)
		}
	}
	return dtStart, dtEnd, summary
}

func afterLastColon(line string) string {
	if idx := strings.LastIndexByte(line, ':'); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return strings.TrimSpace(line)
}

// eventDate returns the naive YYYYMMDD date portion of a DTSTART value. The
// same-day filter compares this before any zone conversion.
func eventDate(value string) string {
	if len(value) >= 8 {
		return value[:8]
	}
	return value
}

// resolveClock resolves the local hour/minute of a DTSTART/DTEND value.
// Date-only values fall back to the given defaults. A UTC marker reinterprets
// the value as a UTC instant converted into loc; if that fails on every
// accepted layout, the naive reading is kept rather than dropping the event.
func resolveClock(value string, loc *time.Location, defHour, defMin int) (int, int) {
	m := clockRe.FindStringSubmatch(value)
	if m == nil {
		return defHour, defMin
	}
	hour, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if strings.Contains(value, "Z") {
		if t, ok := parseUTC(value); ok {
			local := t.In(loc)
			hour, min = local.Hour(), local.Minute()
		}
	}
	return hour, min
}

func parseUTC(value string) (time.Time, bool) {
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
