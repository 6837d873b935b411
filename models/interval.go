package models

import "time"

// Interval is one participant's claimed time range on a given day.
type Interval struct {
	ParticipantID    string    `json:"participantId"`
	ParticipantLabel string    `json:"participantLabel,omitempty"` // display name; may be empty
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"` // must be after Start
	SourceID         string    `json:"sourceId"`
}

// IntervalRecord is the wire form in which the backing store hands over
// interval rows, one per participant claim.
type IntervalRecord struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name,omitempty"`
	StartTimeUTC string `json:"start_time_utc"` // RFC 3339
	EndTimeUTC   string `json:"end_time_utc"`   // RFC 3339
}
