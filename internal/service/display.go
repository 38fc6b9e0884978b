package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"roomsign/internal/ics"
	"roomsign/internal/logger"
	"roomsign/internal/models"
	"roomsign/internal/repository"
)

// ErrResourceNotFound is returned when no resource exists at all. An unknown
// device id with a non-empty store resolves to the first resource instead, so
// a freshly flashed sign still gets something to show.
var ErrResourceNotFound = errors.New("resource not found")

const (
	statusLabelMax = 20
	labelMax       = 12

	maxUpcomingEvents = 3

	refreshFloor          = 60
	refreshCeil           = 7200
	defaultRefreshSeconds = 300

	notOccupiedLabel = "NOT OCCUPIED"

	displayTimeLayout = "02.01.2006 15:04"
)

// DisplayService turns a resource's calendar feed into the payload its sign
// renders. Every call recomputes from scratch; there is no cross-request
// state to invalidate.
type DisplayService struct {
	resources repository.ResourceRepo
	fetcher   ics.Fetcher
	defaultTZ *time.Location
	log       *logger.Logger
	nowFn     func() time.Time
}

func NewDisplayService(resources repository.ResourceRepo, fetcher ics.Fetcher, defaultTZ *time.Location, log *logger.Logger) *DisplayService {
	return &DisplayService{
		resources: resources,
		fetcher:   fetcher,
		defaultTZ: defaultTZ,
		log:       log,
		nowFn:     time.Now,
	}
}

// GetDisplayData assembles the full render payload for one device.
//
// Feed problems are absorbed: an unreachable or malformed calendar yields
// zero events and therefore a "not occupied" sign, which beats a crashed one.
// Only a fully empty resource store surfaces as ErrResourceNotFound.
func (s *DisplayService) GetDisplayData(ctx context.Context, deviceID int, onDate string) (models.DisplayPayload, error) {
	r, err := s.resolveResource(ctx, deviceID)
	if err != nil {
		return models.DisplayPayload{}, err
	}

	loc := resolveLocation(r.Timezone, s.defaultTZ)
	now := s.nowFn().In(loc)
	filterDate, override := resolveDisplayDay(onDate, now, loc)

	var events []models.CalendarEvent
	body, err := s.fetcher.Fetch(ctx, r.ICSURL)
	if err != nil {
		if s.log != nil {
			s.log.Warnw("feed_fetch_failed", "device_id", r.ID, "err", err)
		}
	} else {
		events = ics.Extract(body, filterDate, loc, now)
	}

	nowMin := now.Hour()*60 + now.Minute()
	if override != nil {
		nowMin = *override
	}
	occ := Status(events, nowMin)

	return assemblePayload(r, events, occ, now, nowMin), nil
}

// resolveResource finds the record for a device id, falling back to the
// first configured resource when the id is unknown.
func (s *DisplayService) resolveResource(ctx context.Context, deviceID int) (models.Resource, error) {
	r, err := s.resources.GetByID(ctx, deviceID)
	if err != nil {
		return models.Resource{}, err
	}
	if r == nil {
		r, err = s.resources.First(ctx)
		if err != nil {
			return models.Resource{}, err
		}
	}
	if r == nil {
		return models.Resource{}, ErrResourceNotFound
	}
	return *r, nil
}

// resolveLocation loads the resource's IANA zone, falling back to the
// site-wide default for an invalid or missing name. Never implicit UTC.
func resolveLocation(name string, fallback *time.Location) *time.Location {
	if n := strings.TrimSpace(name); n != "" {
		if loc, err := time.LoadLocation(n); err == nil {
			return loc
		}
	}
	if fallback != nil {
		return fallback
	}
	return time.Local
}

// resolveDisplayDay interprets an optional explicit display date. A day in
// the past pins the virtual "now" after the last minute (free all day); a day
// in the future pins it before the first (everything upcoming). An
// unparseable date is ignored and today is shown.
func resolveDisplayDay(onDate string, now time.Time, loc *time.Location) (filterDate string, override *int) {
	d := strings.TrimSpace(onDate)
	if d == "" {
		return "", nil
	}
	t, err := time.ParseInLocation("2006-01-02", d, loc)
	if err != nil {
		return "", nil
	}
	filterDate = t.Format("2006-01-02")
	displayYmd := t.Format("20060102")
	todayYmd := now.Format("20060102")
	switch {
	case displayYmd < todayYmd:
		v := nowPastDay
		override = &v
	case displayYmd > todayYmd:
		v := nowFutureDay
		override = &v
	}
	return filterDate, override
}

// assemblePayload combines resource configuration, the day's events and the
// occupancy state into the payload a sign renders. now is the real wall-clock
// instant in the resource's zone (night mode and the countdown always follow
// real time); nowMin may be a virtual minute when a past/future day is shown.
func assemblePayload(r models.Resource, events []models.CalendarEvent, occ models.OccupancyResult, now time.Time, nowMin int) models.DisplayPayload {
	var current *models.CalendarEvent
	for i := range events {
		if nowMin >= events[i].StartMinutes() && nowMin < events[i].EndMinutes() {
			current = &events[i]
			break
		}
	}

	var nexts []models.CalendarEvent
	for _, ev := range events {
		if ev.StartMinutes() > nowMin {
			nexts = append(nexts, ev)
		}
	}
	if len(nexts) > maxUpcomingEvents {
		nexts = nexts[:maxUpcomingEvents]
	}

	var statusLabel, statusUntil string
	occupied := false
	if occ.Occupied && current != nil {
		statusLabel = current.Summary
		statusUntil = timeRange(*current)
		occupied = true
	} else {
		statusLabel = notOccupiedLabel
		statusUntil = fmt.Sprintf("until %02d:%02d", occ.UntilHour, occ.UntilMin)
	}
	statusLabel = truncateLabel(statusLabel, statusLabelMax)
	roomName := truncateLabel(r.Name, labelMax)

	refresh := defaultRefreshSeconds
	if r.RefreshIntervalSec >= refreshFloor {
		refresh = clampInt(r.RefreshIntervalSec, refreshFloor, refreshCeil)
	}
	// Night mode doubles the interval to save battery, capped at the ceiling.
	realNowMin := now.Hour()*60 + now.Minute()
	if inNightWindow(realNowMin, r.NightModeFrom, r.NightModeTo) {
		refresh = clampInt(refresh*2, refreshFloor, refreshCeil)
	}
	intervalMin := (refresh + 59) / 60
	if intervalMin < 1 {
		intervalMin = 1
	}
	intervalLabel := fmt.Sprintf("Update every %d min.", intervalMin)

	upcoming := make([]models.DisplayEvent, 0, len(nexts))
	for _, ev := range nexts {
		upcoming = append(upcoming, models.DisplayEvent{
			Time:    timeRange(ev),
			Summary: truncateLabel(ev.Summary, labelMax),
		})
	}

	secondsUntilNext := 0
	if len(nexts) > 0 {
		nextStart := time.Date(now.Year(), now.Month(), now.Day(),
			nexts[0].StartHour, nexts[0].StartMin, 0, 0, now.Location())
		if d := int(nextStart.Sub(now).Seconds()); d > 0 {
			secondsUntilNext = d
		}
	}

	return models.DisplayPayload{
		RoomName:              roomName,
		StatusLabel:           statusLabel,
		StatusUntil:           statusUntil,
		Occupied:              occupied,
		Events:                upcoming,
		UpdateIntervalLabel:   intervalLabel,
		QRURL:                 r.QRURL,
		RefreshSeconds:        refresh,
		DisplayTime:           now.Format(displayTimeLayout),
		ContentHash:           contentHash(roomName, statusLabel, statusUntil, occupied, intervalLabel, refresh, r.DebugDisplay, r.QRURL, upcoming),
		SecondsUntilNextEvent: secondsUntilNext,
		DebugDisplay:          r.DebugDisplay,
		WifiSSID:              r.WifiSSID,
		WifiPass:              r.WifiPass,
	}
}

// contentHash joins every field that changes what the sign shows (including
// the effective refresh interval and the debug flag, so a night-mode switch
// or a debug toggle forces a redraw) and digests it to 8 hex characters. The
// firmware compares this against its previous poll to skip redundant redraws,
// so the join order is part of the wire contract.
func contentHash(roomName, statusLabel, statusUntil string, occupied bool, intervalLabel string, refreshSeconds int, debug bool, qrURL string, events []models.DisplayEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%s|%s|%s|%d|%s|%s|",
		roomName, statusLabel, statusUntil, boolFlag(occupied),
		intervalLabel, refreshSeconds, boolFlag(debug), qrURL)
	for _, ev := range events {
		fmt.Fprintf(&b, "%s=%s;", ev.Time, ev.Summary)
	}
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])[:8]
}

// truncateLabel cuts text to at most max characters, rune-aware, replacing
// the overflow with a literal three-dot ellipsis. max <= 0 is a passthrough.
func truncateLabel(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	keep := max - 3
	if keep < 1 {
		keep = 1
	}
	return string(runes[:keep]) + "..."
}

// inNightWindow reports whether nowMin falls inside the configured night
// window. The window is half-open [from, to); from > to wraps past midnight.
// An empty from or to disables night mode, and from == to is an empty window.
func inNightWindow(nowMin int, from, to string) bool {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		return false
	}
	fromMin := clampInt(clockToMinutes(from), 0, minutesPerDay)
	toMin := clampInt(clockToMinutes(to), 0, minutesPerDay)
	if fromMin > toMin {
		return nowMin >= fromMin || nowMin < toMin
	}
	return nowMin >= fromMin && nowMin < toMin
}

// clockToMinutes parses "HH:MM" (or "H:MM", or a bare hour) into minutes of
// day. Unparseable parts count as zero.
func clockToMinutes(s string) int {
	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	m := 0
	if len(parts) > 1 {
		m, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return h*60 + m
}

func timeRange(ev models.CalendarEvent) string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", ev.StartHour, ev.StartMin, ev.EndHour, ev.EndMin)
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
