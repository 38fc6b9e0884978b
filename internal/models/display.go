package models

// CalendarEvent is one occurrence already filtered to the target calendar day
// and converted to the display time zone. All-day events carry the
// 00:00/23:59 defaults.
type CalendarEvent struct {
	StartHour int    `json:"start_hour"`
	StartMin  int    `json:"start_min"`
	EndHour   int    `json:"end_hour"`
	EndMin    int    `json:"end_min"`
	Summary   string `json:"summary"`
}

// StartMinutes returns the start time as minutes since local midnight.
func (e CalendarEvent) StartMinutes() int { return e.StartHour*60 + e.StartMin }

// EndMinutes returns the end time as minutes since local midnight.
func (e CalendarEvent) EndMinutes() int { return e.EndHour*60 + e.EndMin }

// OccupancyResult says whether the room is inside an event right now and
// until when that status holds. Recomputed on every request, never persisted.
type OccupancyResult struct {
	Occupied  bool `json:"occupied"`
	UntilHour int  `json:"until_h"`
	UntilMin  int  `json:"until_m"`
}

// DisplayEvent is one upcoming entry on the sign, already truncated.
type DisplayEvent struct {
	Time    string `json:"time"` // "HH:MM-HH:MM"
	Summary string `json:"summary"`
}

// DisplayPayload is everything a sign needs for one full redraw. The firmware
// compares ContentHash against the previous poll and skips the redraw when it
// is unchanged.
type DisplayPayload struct {
	RoomName              string         `json:"room_name"`
	StatusLabel           string         `json:"status_label"`
	StatusUntil           string         `json:"status_until"`
	Occupied              bool           `json:"occupied"`
	Events                []DisplayEvent `json:"events"`
	UpdateIntervalLabel   string         `json:"update_interval_label"`
	QRURL                 string         `json:"qr_url"`
	RefreshSeconds        int            `json:"refresh_seconds"`
	DisplayTime           string         `json:"display_time"`
	ContentHash           string         `json:"content_hash"`
	SecondsUntilNextEvent int            `json:"seconds_until_next_event"`
	DebugDisplay          bool           `json:"debug_display"`
	WifiSSID              string         `json:"wifi_ssid"`
	WifiPass              string         `json:"wifi_pass"`
}
