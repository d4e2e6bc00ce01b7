package models

// PlayerStatus is the playback state returned by GET fppd/status.
// Numeric-looking fields arrive as strings on the wire (seconds_played,
// playlist index) and are kept as strings here.
type PlayerStatus struct {
	Fppd             string `json:"fppd"`
	Status           int    `json:"status"`
	StatusName       string `json:"status_name"`
	Mode             int    `json:"mode"`
	ModeName         string `json:"mode_name"`
	Volume           int    `json:"volume"`
	CurrentSequence  string `json:"current_sequence"`
	CurrentSong      string `json:"current_song"`
	SecondsPlayed    string `json:"seconds_played"`
	SecondsRemaining string `json:"seconds_remaining"`
	Time             string `json:"time"`
	UptimeSeconds    int64  `json:"uptimeTotalSeconds"`

	CurrentPlaylist struct {
		Playlist string `json:"playlist"`
		Type     string `json:"type"`
		Index    string `json:"index"`
		Count    string `json:"count"`
	} `json:"current_playlist"`
}
