package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	HelpRequestCollection = "helpRequests"
)

// help request lifecycle states
const (
	HelpStatusActive    = "active"
	HelpStatusAccepted  = "accepted"
	HelpStatusFinalized = "finalized"

	// legacy terminal states kept for old documents; never produced by
	// the accept/chat flow but treated as inactive when filtering
	HelpStatusFulfilled = "fulfilled"
	HelpStatusCancelled = "cancelled"
)

// help request categories
const (
	HelpCategoryMedical   = "medical"
	HelpCategoryAcademic  = "academic"
	HelpCategoryTransport = "transport"
	HelpCategoryOther     = "other"
)

var HelpCategories = []string{
	HelpCategoryMedical,
	HelpCategoryAcademic,
	HelpCategoryTransport,
	HelpCategoryOther,
}

// IsValidHelpCategory reports whether c is one of the known categories.
func IsValidHelpCategory(c string) bool {
	for _, v := range HelpCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Identity is the denormalized requester/helper identity captured at
// write time. Later profile changes do not propagate into old documents.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HelpRequest is a posted need for assistance.
type HelpRequest struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Location       string             `json:"location" bson:"location"`
	Category       string             `json:"category" bson:"category"`
	Urgent         bool               `json:"urgent" bson:"urgent"`
	IsReturnNeeded bool               `json:"is_return_needed" bson:"is_return_needed"`

	RequesterID    string `json:"requester_id" bson:"requester_id"`
	RequesterName  string `json:"requester_name" bson:"requester_name"`
	RequesterEmail string `json:"requester_email" bson:"requester_email"`

	Status string `json:"status" bson:"status"`

	// set together with ChatID once a helper accepts
	AcceptedBy      string `json:"accepted_by,omitempty" bson:"accepted_by,omitempty"`
	AcceptedByName  string `json:"accepted_by_name,omitempty" bson:"accepted_by_name,omitempty"`
	AcceptedByEmail string `json:"accepted_by_email,omitempty" bson:"accepted_by_email,omitempty"`
	ChatID          string `json:"chat_id,omitempty" bson:"chat_id,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Inactive reports whether a request should be hidden from active listings.
func (h HelpRequest) Inactive() bool {
	return h.Status != HelpStatusActive
}
