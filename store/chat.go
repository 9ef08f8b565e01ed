package store

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campus-aid/campus-aid-api/schema"
)

var (
	ErrChatNotFound   = fmt.Errorf("chat not found")
	ErrChatExists     = fmt.Errorf("a chat already exists for this request")
	ErrChatFinalized  = fmt.Errorf("chat is finalized")
	ErrEmptyMessage   = fmt.Errorf("message is empty")
	ErrMessageTooLong = fmt.Errorf("message exceeds %d characters", schema.MaxChatMessageLength)
)

// isDuplicateKeyError reports whether err is a mongo unique index
// violation (error code 11000).
func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}

type ChatOperator interface {
	CreateChat(requestID, requestTitle string, requester, helper schema.Identity) (*schema.Chat, error)
	GetChat(id string) (*schema.Chat, error)
	GetChatByRequest(requestID string) (*schema.Chat, error)
	ListUserChats(userID string) ([]schema.Chat, error)
	AppendChatMessage(chatID, text string, sender schema.Identity) (*schema.ChatMessage, error)
	SetChatFinalized(chatID string) error
}

// CreateChat inserts a new chat between the requester and the accepting
// helper, with an empty message list. The unique index on request_id
// turns a duplicate creation into ErrChatExists.
func (m *mongoDB) CreateChat(requestID, requestTitle string, requester, helper schema.Identity) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	chat := schema.Chat{
		RequestID:    requestID,
		RequestTitle: requestTitle,
		Members:      []string{requester.ID, helper.ID},
		MemberNames: map[string]string{
			requester.ID: requester.Name,
			helper.ID:    helper.Name,
		},
		MemberEmails: map[string]string{
			requester.ID: requester.Email,
			helper.ID:    helper.Email,
		},
		Messages:  []schema.ChatMessage{},
		Status:    schema.ChatStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	c := m.client.Database(m.database).Collection(schema.ChatCollection)
	result, err := c.InsertOne(ctx, chat)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrChatExists
		}
		return nil, err
	}
	chat.ID = result.InsertedID.(primitive.ObjectID)

	return &chat, nil
}

func (m *mongoDB) GetChat(id string) (*schema.Chat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrChatNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatCollection)

	var chat schema.Chat
	if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	return &chat, nil
}

// GetChatByRequest finds the chat attached to a request. It is the
// idempotency probe of the accept flow: a request may never gain a
// second chat.
func (m *mongoDB) GetChatByRequest(requestID string) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatCollection)

	var chat schema.Chat
	if err := c.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	return &chat, nil
}

// ListUserChats returns every chat the user is a member of, newest
// first. It backs the cross-request inbox overlay.
func (m *mongoDB) ListUserChats(userID string) ([]schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatCollection)

	cursor, err := c.Find(ctx, bson.M{"members": userID}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	chats := []schema.Chat{}
	for cursor.Next(ctx) {
		var chat schema.Chat
		if err := cursor.Decode(&chat); err != nil {
			logMalformedDocument(schema.ChatCollection, err)
			continue
		}
		chats = append(chats, chat)
	}

	return chats, cursor.Err()
}

// AppendChatMessage pushes one message onto the chat's embedded message
// array. The text must be non-empty after trimming and within the length
// bound; the chat must still be active.
func (m *mongoDB) AppendChatMessage(chatID, text string, sender schema.Identity) (*schema.ChatMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(trimmed) > schema.MaxChatMessageLength {
		return nil, ErrMessageTooLong
	}

	oid, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return nil, ErrChatNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	message := schema.ChatMessage{
		ID:          uuid.New().String(),
		SenderID:    sender.ID,
		SenderName:  sender.Name,
		SenderEmail: sender.Email,
		Message:     trimmed,
		Timestamp:   now,
	}

	c := m.client.Database(m.database).Collection(schema.ChatCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": oid, "status": schema.ChatStatusActive},
		bson.M{
			"$push": bson.M{"messages": message},
			"$set":  bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		var chat schema.Chat
		if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&chat); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrChatNotFound
			}
			return nil, err
		}
		return nil, ErrChatFinalized
	}

	return &message, nil
}

// SetChatFinalized moves a chat to its terminal status. Finalizing an
// already finalized chat is a no-op so the repair pass can re-run it.
func (m *mongoDB) SetChatFinalized(chatID string) error {
	oid, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return ErrChatNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": oid, "status": schema.ChatStatusActive},
		bson.M{"$set": bson.M{
			"status":     schema.ChatStatusFinalized,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		var chat schema.Chat
		if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&chat); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrChatNotFound
			}
			return err
		}
	}

	return nil
}
