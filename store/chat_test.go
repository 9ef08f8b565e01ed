package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campus-aid/campus-aid-api/schema"
)

type ChatTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database

	finalizedChatID primitive.ObjectID
}

func NewChatTestSuite(connURI, dbName string) *ChatTestSuite {
	return &ChatTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ChatTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *ChatTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	s.finalizedChatID = primitive.NewObjectID()
	now := time.Now().UTC()

	if _, err := s.testDatabase.Collection(schema.ChatCollection).InsertMany(ctx, []interface{}{
		schema.Chat{
			ID:           s.finalizedChatID,
			RequestID:    primitive.NewObjectID().Hex(),
			RequestTitle: "Closed request",
			Members:      []string{testRequester.ID, testHelper.ID},
			MemberNames: map[string]string{
				testRequester.ID: testRequester.Name,
				testHelper.ID:    testHelper.Name,
			},
			Messages:  []schema.ChatMessage{},
			Status:    schema.ChatStatusFinalized,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *ChatTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ChatTestSuite) TestCreateChatEnforcesOnePerRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	requestID := primitive.NewObjectID().Hex()
	chat, err := store.CreateChat(requestID, "Need bandage", testRequester, testHelper)
	s.NoError(err)
	s.Equal(schema.ChatStatusActive, chat.Status)
	s.Len(chat.Members, 2)
	s.Equal(testRequester.Name, chat.MemberNames[testRequester.ID])
	s.Len(chat.Messages, 0)

	// a second chat for the same request hits the unique index
	_, err = store.CreateChat(requestID, "Need bandage", testRequester, testStranger)
	s.Equal(ErrChatExists, err)

	fetched, err := store.GetChatByRequest(requestID)
	s.NoError(err)
	s.Equal(chat.ID, fetched.ID)
	s.True(fetched.HasMember(testHelper.ID))
	s.False(fetched.HasMember(testStranger.ID))
}

func (s *ChatTestSuite) TestGetChatNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetChat(primitive.NewObjectID().Hex())
	s.Equal(ErrChatNotFound, err)

	_, err = store.GetChat("not-an-object-id")
	s.Equal(ErrChatNotFound, err)

	_, err = store.GetChatByRequest(primitive.NewObjectID().Hex())
	s.Equal(ErrChatNotFound, err)
}

func (s *ChatTestSuite) TestListUserChats() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CreateChat(primitive.NewObjectID().Hex(), "Ride share", testRequester, testHelper)
	s.NoError(err)

	chats, err := store.ListUserChats(testHelper.ID)
	s.NoError(err)
	for _, chat := range chats {
		s.True(chat.HasMember(testHelper.ID))
	}
	s.NotEmpty(chats)

	chats, err = store.ListUserChats("nobody")
	s.NoError(err)
	s.Len(chats, 0)
}

func (s *ChatTestSuite) TestAppendChatMessage() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	chat, err := store.CreateChat(primitive.NewObjectID().Hex(), "Need notes", testRequester, testHelper)
	s.NoError(err)

	message, err := store.AppendChatMessage(chat.ID.Hex(), "  is tomorrow ok?  ", testHelper)
	s.NoError(err)
	s.Equal("is tomorrow ok?", message.Message)
	s.Equal(testHelper.ID, message.SenderID)
	s.NotEmpty(message.ID)

	_, err = store.AppendChatMessage(chat.ID.Hex(), "sure, see you at noon", testRequester)
	s.NoError(err)

	// messages are stored in insertion order
	fetched, err := store.GetChat(chat.ID.Hex())
	s.NoError(err)
	s.Len(fetched.Messages, 2)
	s.Equal("is tomorrow ok?", fetched.Messages[0].Message)
	s.Equal("sure, see you at noon", fetched.Messages[1].Message)
}

func (s *ChatTestSuite) TestAppendChatMessageValidation() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	chat, err := store.CreateChat(primitive.NewObjectID().Hex(), "Spare pen", testRequester, testHelper)
	s.NoError(err)

	_, err = store.AppendChatMessage(chat.ID.Hex(), "   ", testRequester)
	s.Equal(ErrEmptyMessage, err)

	_, err = store.AppendChatMessage(chat.ID.Hex(), strings.Repeat("a", schema.MaxChatMessageLength+1), testRequester)
	s.Equal(ErrMessageTooLong, err)

	// exactly at the bound is accepted
	_, err = store.AppendChatMessage(chat.ID.Hex(), strings.Repeat("a", schema.MaxChatMessageLength), testRequester)
	s.NoError(err)

	// the bound counts characters, not bytes
	_, err = store.AppendChatMessage(chat.ID.Hex(), strings.Repeat("ğ", schema.MaxChatMessageLength), testRequester)
	s.NoError(err)

	_, err = store.AppendChatMessage(chat.ID.Hex(), strings.Repeat("ğ", schema.MaxChatMessageLength+1), testRequester)
	s.Equal(ErrMessageTooLong, err)
}

func (s *ChatTestSuite) TestAppendChatMessageToFinalizedChat() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.AppendChatMessage(s.finalizedChatID.Hex(), "anyone there?", testRequester)
	s.Equal(ErrChatFinalized, err)

	var chat schema.Chat
	err = s.testDatabase.Collection(schema.ChatCollection).FindOne(context.Background(), bson.M{
		"_id": s.finalizedChatID,
	}).Decode(&chat)
	s.NoError(err)
	s.Len(chat.Messages, 0)
}

func (s *ChatTestSuite) TestSetChatFinalized() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	chat, err := store.CreateChat(primitive.NewObjectID().Hex(), "Done deal", testRequester, testHelper)
	s.NoError(err)

	err = store.SetChatFinalized(chat.ID.Hex())
	s.NoError(err)

	fetched, err := store.GetChat(chat.ID.Hex())
	s.NoError(err)
	s.Equal(schema.ChatStatusFinalized, fetched.Status)

	// idempotent for the repair pass
	err = store.SetChatFinalized(chat.ID.Hex())
	s.NoError(err)

	err = store.SetChatFinalized(primitive.NewObjectID().Hex())
	s.Equal(ErrChatNotFound, err)
}

func TestChatTestSuite(t *testing.T) {
	suite.Run(t, NewChatTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
