package dto

import "time"

type SessionResponse struct {
	Id              string    `json:"id"`
	ExpertId        string    `json:"expert_id"`
	ExpertName      string    `json:"expert_name"`
	ClientId        string    `json:"client_id"`
	ClientName      string    `json:"client_name"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Topic           string    `json:"topic"`
	Notes           string    `json:"notes,omitempty"`
	Subtotal        float64   `json:"subtotal"`
	ServiceFee      float64   `json:"service_fee"`
	Price           float64   `json:"price"`
}

type ListSessionsResponse struct {
	Upcoming []*SessionResponse `json:"upcoming"`
	Past     []*SessionResponse `json:"past"`
}

type BookSessionRequest struct {
	ExpertId        string    `json:"expert_id" validate:"required"`
	Date            time.Time `json:"date" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=15,max=240"`
	Topic           string    `json:"topic" validate:"required,max=200"`
}

type GenerateSummaryRequest struct {
	// Empty transcript falls back to the sample transcript.
	Transcript string `json:"transcript" validate:"max=100000"`
}

type SessionSummaryResponse struct {
	SessionId   string   `json:"session_id"`
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
	Source      string   `json:"source"`
}

type TranscriptResponse struct {
	Transcript string `json:"transcript"`
}
