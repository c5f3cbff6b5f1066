package dto

import "time"

// SendMessageRequest posts a chat line. Type defaults to text; file messages
// carry attachment metadata only.
type SendMessageRequest struct {
	Type     string `json:"type" validate:"omitempty,oneof=text file"`
	Text     string `json:"text" validate:"max=2000"`
	FileName string `json:"file_name" validate:"required_if=Type file,max=255"`
	FileSize string `json:"file_size" validate:"max=32"`
}

type MessageResponse struct {
	Id         string    `json:"id"`
	SessionId  string    `json:"session_id"`
	SenderId   string    `json:"sender_id"`
	SenderRole string    `json:"sender_role"`
	Type       string    `json:"type"`
	Text       string    `json:"text"`
	FileName   string    `json:"file_name,omitempty"`
	FileSize   string    `json:"file_size,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}
