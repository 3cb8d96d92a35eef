package domain

import "strings"

type MessageID int

// Message is an immutable record of one text communication.
// The date is an opaque caller-supplied string; the model never parses it.
type Message struct {
	ID         MessageID
	ChatID     ChatID
	SenderID   UserID
	ReceiverID UserID
	Date       string
	Text       string
}

// ContainsPattern reports whether pattern occurs as a substring of the
// message text. The empty pattern matches every message.
func (m Message) ContainsPattern(pattern string) bool {
	return strings.Contains(m.Text, pattern)
}
