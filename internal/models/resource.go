package models

// Resource is the per-sign configuration record. Each e-paper sign is bound
// to exactly one resource via its device id.
type Resource struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ICSURL             string `json:"ics_url"`
	QRURL              string `json:"qr_url"`
	Timezone           string `json:"timezone"` // IANA name, empty = site default
	Template           string `json:"template"`
	RefreshIntervalSec int    `json:"refresh_interval_sec"`
	NightModeFrom      string `json:"night_mode_from"` // "HH:MM", empty disables
	NightModeTo        string `json:"night_mode_to"`   // "HH:MM", empty disables
	DebugDisplay       bool   `json:"debug_display"`
	WifiSSID           string `json:"wifi_ssid"`
	WifiPass           string `json:"wifi_pass"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
