package model

import "time"

// NotifiedAlert records the last alert sent for one athlete.
type NotifiedAlert struct {
	Date     string   `json:"date"`
	Severity Severity `json:"severity"`
}

// AlertState tracks which alerts have already been delivered.
type AlertState struct {
	Notified  map[string]NotifiedAlert `json:"notified"`
	TotalSent int                      `json:"total_sent"`
	UpdatedAt time.Time                `json:"updated_at"`
}
