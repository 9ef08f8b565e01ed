package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campus-aid/campus-aid-api/schema"
)

var (
	ErrHelpRequestNotFound = fmt.Errorf("help request not found")
	ErrHelpRequestNotOpen  = fmt.Errorf("the request is either closed or not open for you")
	ErrInvalidHelpRequest  = fmt.Errorf("invalid help request content")
)

// HelpRequestParams is the requester-supplied content of a new request.
// Descriptive fields are immutable after creation.
type HelpRequestParams struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Category       string `json:"category"`
	Urgent         bool   `json:"urgent"`
	IsReturnNeeded bool   `json:"is_return_needed"`
}

type HelpRequestOperator interface {
	CreateHelpRequest(requester schema.Identity, params HelpRequestParams) (*schema.HelpRequest, error)
	GetHelpRequest(id string) (*schema.HelpRequest, error)
	ListActiveHelpRequests(category string) ([]schema.HelpRequest, error)
	ListHelpRequestsByStatus(status string) ([]schema.HelpRequest, error)
	SetHelpRequestAccepted(id string, helper schema.Identity, chatID string) error
	SetHelpRequestFinalized(id string) error
	DeleteHelpRequest(id, requesterID string) error
}

// CreateHelpRequest inserts a new request with status `active` and no
// helper fields set.
func (m *mongoDB) CreateHelpRequest(requester schema.Identity, params HelpRequestParams) (*schema.HelpRequest, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrInvalidHelpRequest
	}
	if !schema.IsValidHelpCategory(params.Category) {
		return nil, ErrInvalidHelpRequest
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	help := schema.HelpRequest{
		Title:          strings.TrimSpace(params.Title),
		Description:    params.Description,
		Location:       params.Location,
		Category:       params.Category,
		Urgent:         params.Urgent,
		IsReturnNeeded: params.IsReturnNeeded,
		RequesterID:    requester.ID,
		RequesterName:  requester.Name,
		RequesterEmail: requester.Email,
		Status:         schema.HelpStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)
	result, err := c.InsertOne(ctx, help)
	if err != nil {
		return nil, err
	}
	help.ID = result.InsertedID.(primitive.ObjectID)

	return &help, nil
}

func (m *mongoDB) GetHelpRequest(id string) (*schema.HelpRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrHelpRequestNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	var help schema.HelpRequest
	if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&help); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrHelpRequestNotFound
		}
		return nil, err
	}

	return &help, nil
}

// ListActiveHelpRequests returns all requests with status `active`,
// newest first, optionally restricted to one category. Malformed
// documents are dropped from the result rather than failing the query.
func (m *mongoDB) ListActiveHelpRequests(category string) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	query := bson.M{"status": schema.HelpStatusActive}
	if category != "" {
		query["category"] = category
	}

	cursor, err := c.Find(ctx, query, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	helps := []schema.HelpRequest{}
	for cursor.Next(ctx) {
		var help schema.HelpRequest
		if err := cursor.Decode(&help); err != nil {
			logMalformedDocument(schema.HelpRequestCollection, err)
			continue
		}
		if help.Title == "" || help.RequesterID == "" {
			logMalformedDocument(schema.HelpRequestCollection, fmt.Errorf("document %s missing required fields", help.ID.Hex()))
			continue
		}
		helps = append(helps, help)
	}

	return helps, cursor.Err()
}

// ListHelpRequestsByStatus returns all requests in one lifecycle state,
// newest first. It feeds the reconciliation pass.
func (m *mongoDB) ListHelpRequestsByStatus(status string) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	cursor, err := c.Find(ctx, bson.M{"status": status}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	helps := []schema.HelpRequest{}
	for cursor.Next(ctx) {
		var help schema.HelpRequest
		if err := cursor.Decode(&help); err != nil {
			logMalformedDocument(schema.HelpRequestCollection, err)
			continue
		}
		helps = append(helps, help)
	}

	return helps, cursor.Err()
}

// SetHelpRequestAccepted transitions a request from `active` to
// `accepted` and attaches the helper identity and chat reference. The
// update is conditional on the current status so that of two concurrent
// accepts only one can succeed; the loser gets ErrHelpRequestNotOpen.
func (m *mongoDB) SetHelpRequestAccepted(id string, helper schema.Identity, chatID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrHelpRequestNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{
			"_id":          oid,
			"status":       schema.HelpStatusActive,
			"requester_id": bson.M{"$ne": helper.ID},
		},
		bson.M{"$set": bson.M{
			"status":            schema.HelpStatusAccepted,
			"accepted_by":       helper.ID,
			"accepted_by_name":  helper.Name,
			"accepted_by_email": helper.Email,
			"chat_id":           chatID,
			"updated_at":        time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrHelpRequestNotOpen
	}

	return nil
}

// SetHelpRequestFinalized transitions a request from `accepted` to the
// terminal `finalized` status.
func (m *mongoDB) SetHelpRequestFinalized(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrHelpRequestNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": oid, "status": schema.HelpStatusAccepted},
		bson.M{"$set": bson.M{
			"status":     schema.HelpStatusFinalized,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		// already finalized is fine; the reconcile pass re-runs this
		var help schema.HelpRequest
		if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&help); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrHelpRequestNotFound
			}
			return err
		}
		if help.Status == schema.HelpStatusFinalized {
			return nil
		}
		return ErrHelpRequestNotOpen
	}

	return nil
}

// DeleteHelpRequest removes a request. Only the original requester may
// delete; a mismatched requester is indistinguishable from not-found.
func (m *mongoDB) DeleteHelpRequest(id, requesterID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrHelpRequestNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": oid, "requester_id": requesterID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrHelpRequestNotFound
	}

	return nil
}
