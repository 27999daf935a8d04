// Package transcript holds the conversation history for one chat session.
package transcript

import (
	"time"

	"github.com/google/uuid"

	"github.com/fabfab/docchat/gateway"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation. Immutable once appended.
type Message struct {
	ID        string
	Role      string
	Content   string
	Citations []gateway.Citation
	CreatedAt time.Time
}

// Log is an append-only record of messages, owned by the interaction
// controller. It is written from a single logical thread of execution and
// does no locking.
type Log struct {
	messages []Message
}

func NewLog() *Log {
	return &Log{}
}

// Append records a new message and returns it with its generated id.
func (l *Log) Append(role, content string, citations []gateway.Citation) Message {
	msg := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Citations: append([]gateway.Citation(nil), citations...),
		CreatedAt: time.Now(),
	}
	l.messages = append(l.messages, msg)
	return msg
}

// Messages returns a copy of the transcript in append order.
func (l *Log) Messages() []Message {
	return append([]Message(nil), l.messages...)
}

// Len reports the number of recorded messages.
func (l *Log) Len() int {
	return len(l.messages)
}
