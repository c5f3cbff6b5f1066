package entity

import "time"

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "SCHEDULED"
	SessionStatusLive      SessionStatus = "LIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusCancelled SessionStatus = "CANCELLED"
)

type Session struct {
	Id              string
	ExpertId        string
	ExpertName      string
	ClientId        string
	ClientName      string
	Date            time.Time
	DurationMinutes int
	Status          SessionStatus
	Topic           string
	Notes           string
	Subtotal        float64
	ServiceFee      float64
	Price           float64 // Subtotal plus ServiceFee
}

// IsUpcoming reports whether the session still lies ahead of the client.
func (s *Session) IsUpcoming() bool {
	return s.Status == SessionStatusScheduled || s.Status == SessionStatusLive
}
