package realm

import "github.com/talgya/star-realms/internal/leaders"

// MessageKind groups player-facing messages.
type MessageKind uint8

const (
	MessageLeader MessageKind = iota
)

// Message is a player-facing notification.
type Message struct {
	Kind   MessageKind       `json:"kind"`
	Text   string            `json:"text"`
	Leader *leaders.LeaderID `json:"leader,omitempty"` // Leader shown with the message
}

// MessageList collects a realm's notifications for the current turn.
type MessageList struct {
	messages []Message
}

// Add appends a message.
func (l *MessageList) Add(m Message) {
	l.messages = append(l.messages, m)
}

// Len returns the number of messages.
func (l *MessageList) Len() int {
	return len(l.messages)
}

// All returns the collected messages.
func (l *MessageList) All() []Message {
	return l.messages
}

// Clear empties the list, typically at the start of a turn.
func (l *MessageList) Clear() {
	l.messages = nil
}
