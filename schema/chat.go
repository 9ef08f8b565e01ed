package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ChatCollection = "chats"
)

const (
	ChatStatusActive    = "active"
	ChatStatusFinalized = "finalized"
)

// MaxChatMessageLength bounds a single chat message, counted in
// characters after trimming.
const MaxChatMessageLength = 500

// ChatMessage is one entry of the embedded, append-only message array.
// Insertion order is chronological order; there is no edit or delete.
type ChatMessage struct {
	ID          string    `json:"id" bson:"id"`
	SenderID    string    `json:"sender_id" bson:"sender_id"`
	SenderName  string    `json:"sender_name" bson:"sender_name"`
	SenderEmail string    `json:"sender_email" bson:"sender_email"`
	Message     string    `json:"message" bson:"message"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

// Chat is the private conversation between a requester and the helper
// who accepted the request. Exactly one chat may exist per request,
// enforced by a unique index on request_id.
type Chat struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RequestID    string             `json:"request_id" bson:"request_id"`
	RequestTitle string             `json:"request_title" bson:"request_title"`

	// exactly two member ids, fixed for the chat's lifetime
	Members      []string          `json:"members" bson:"members"`
	MemberNames  map[string]string `json:"member_names" bson:"member_names"`
	MemberEmails map[string]string `json:"member_emails" bson:"member_emails"`

	Messages []ChatMessage `json:"messages" bson:"messages"`

	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// HasMember reports whether userID is one of the two chat members.
func (c Chat) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}
