package widget

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

// Message authors
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn. Assistant content is Markdown, user content is
// plain text. Messages are never mutated once appended to the log.
type Message struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// NewMessage creates a message with a fresh unique ID.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func newMessageAt(role Role, content string, at time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: at,
	}
}
