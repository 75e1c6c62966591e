package models

import "time"

// LinkKind classifies a navigable chat link
type LinkKind string

const (
	LinkRepository LinkKind = "repository"
	LinkUser       LinkKind = "user"
	LinkExternal   LinkKind = "external"
)

// MessageLink is a structured navigation target attached to a chat message.
// Links are metadata from the resolved context, never parsed out of the
// reply text.
type MessageLink struct {
	Label  string   `json:"label"`
	Target string   `json:"target"`
	Kind   LinkKind `json:"kind"`
}

// ChatMessage is one turn in the assistant conversation. The transcript is
// session-scoped and never persisted across restarts.
type ChatMessage struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	FromUser  bool          `json:"is_from_user"`
	CreatedAt time.Time     `json:"created_at"`
	Links     []MessageLink `json:"links,omitempty"`
	Pending   bool          `json:"is_pending"`
	Failed    bool          `json:"is_error"`
}
