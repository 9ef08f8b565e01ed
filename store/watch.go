package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campus-aid/campus-aid-api/schema"
)

// Watcher - live-query subscriptions over mongo change streams. Every
// watch delivers an initial snapshot, then a fresh snapshot after each
// change. Cancelling the context ends delivery, closes the channel and
// releases the server-side stream.
type Watcher interface {
	WatchActiveHelpRequests(ctx context.Context, category string) (<-chan []schema.HelpRequest, error)
	WatchChat(ctx context.Context, chatID string) (<-chan schema.Chat, error)
	WatchUserChats(ctx context.Context, userID string) (<-chan []schema.Chat, error)
}

// WatchActiveHelpRequests streams the live list of active requests,
// newest first, optionally restricted to one category.
func (m *mongoDB) WatchActiveHelpRequests(ctx context.Context, category string) (<-chan []schema.HelpRequest, error) {
	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	stream, err := c.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	out := make(chan []schema.HelpRequest, 1)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		deliver := func() bool {
			helps, err := m.ListActiveHelpRequests(category)
			if err != nil {
				log.WithField("prefix", mongoLogPrefix).WithError(err).Error("refresh active help request snapshot")
				return false
			}
			select {
			case out <- helps:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !deliver() {
			return
		}
		for stream.Next(ctx) {
			if !deliver() {
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Error("help request change stream closed")
		}
	}()

	return out, nil
}

// WatchChat streams the full chat document, including all messages, on
// every change.
func (m *mongoDB) WatchChat(ctx context.Context, chatID string) (<-chan schema.Chat, error) {
	oid, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return nil, ErrChatNotFound
	}

	chat, err := m.GetChat(chatID)
	if err != nil {
		return nil, err
	}

	c := m.client.Database(m.database).Collection(schema.ChatCollection)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"documentKey._id": oid}}},
	}
	stream, err := c.Watch(ctx, pipeline,
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	out := make(chan schema.Chat, 1)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		select {
		case out <- *chat:
		case <-ctx.Done():
			return
		}

		for stream.Next(ctx) {
			var event struct {
				FullDocument schema.Chat `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				logMalformedDocument(schema.ChatCollection, err)
				continue
			}
			if event.FullDocument.ID.IsZero() {
				continue
			}
			select {
			case out <- event.FullDocument:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Error("chat change stream closed")
		}
	}()

	return out, nil
}

// WatchUserChats streams the live list of every chat the user belongs
// to. It drives the cross-request inbox overlay.
func (m *mongoDB) WatchUserChats(ctx context.Context, userID string) (<-chan []schema.Chat, error) {
	c := m.client.Database(m.database).Collection(schema.ChatCollection)

	stream, err := c.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	out := make(chan []schema.Chat, 1)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		deliver := func() bool {
			chats, err := m.ListUserChats(userID)
			if err != nil {
				log.WithField("prefix", mongoLogPrefix).WithError(err).Error("refresh user chat snapshot")
				return false
			}
			select {
			case out <- chats:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !deliver() {
			return
		}
		for stream.Next(ctx) {
			if !deliver() {
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Error("user chat change stream closed")
		}
	}()

	return out, nil
}
