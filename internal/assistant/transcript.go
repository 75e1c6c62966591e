package assistant

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

// Transcript is the ordered, session-scoped chat history. It lives in
// memory only and is gone after a restart.
type Transcript struct {
	mu       sync.Mutex
	messages []models.ChatMessage
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// AddUserMessage appends the user's turn and returns it.
func (t *Transcript) AddUserMessage(text string) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		FromUser:  true,
		CreatedAt: time.Now(),
	}
	t.append(msg)
	return msg
}

// AddReply appends the assistant's answer and returns it.
func (t *Transcript) AddReply(reply *Reply) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      reply.Text,
		CreatedAt: time.Now(),
		Links:     reply.Links,
	}
	t.append(msg)
	return msg
}

// AddFailure appends an error bubble carrying the failure message.
func (t *Transcript) AddFailure(message string) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      message,
		CreatedAt: time.Now(),
		Failed:    true,
	}
	t.append(msg)
	return msg
}

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []models.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) append(msg models.ChatMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
}
