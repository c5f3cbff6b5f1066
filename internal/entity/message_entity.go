package entity

import "time"

type MessageType string

const (
	MessageTypeText MessageType = "text"
	MessageTypeFile MessageType = "file"
)

// SessionMessage is one line of the in-session chat. File messages carry
// attachment metadata only; the bytes are never stored.
type SessionMessage struct {
	Id         string
	SessionId  string
	SenderId   string
	SenderRole UserRole
	Type       MessageType
	Text       string
	FileName   string
	FileSize   string
	SentAt     time.Time
}

func (m *SessionMessage) IsFile() bool {
	return m.Type == MessageTypeFile
}
