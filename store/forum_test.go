package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campus-aid/campus-aid-api/schema"
)

type ForumTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewForumTestSuite(connURI, dbName string) *ForumTestSuite {
	return &ForumTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ForumTestSuite) SetupSuite() {
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
}

// CleanMongoDB drop the whole test mongodb
func (s *ForumTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ForumTestSuite) TestCreateAndListQuestions() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateQuestion(testRequester, QuestionParams{
		Title: "Where is the lost and found?",
		Body:  "Lost my student card yesterday near the gym.",
	})
	s.NoError(err)
	s.Equal(testRequester.ID, created.AuthorID)
	s.Len(created.Answers, 0)

	// newest first
	questions, err := store.ListQuestions()
	s.NoError(err)
	s.NotEmpty(questions)
	s.Equal(created.ID, questions[0].ID)

	_, err = store.CreateQuestion(testRequester, QuestionParams{Title: "no body"})
	s.Equal(ErrInvalidQuestion, err)
}

func (s *ForumTestSuite) TestAppendAnswer() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	question, err := store.CreateQuestion(testRequester, QuestionParams{
		Title: "Which bus goes downtown?",
		Body:  "From the north gate, ideally.",
	})
	s.NoError(err)

	answer, err := store.AppendAnswer(question.ID.Hex(), "Line 12, every 20 minutes.", testHelper)
	s.NoError(err)
	s.Equal(testHelper.ID, answer.AuthorID)

	fetched, err := store.GetQuestion(question.ID.Hex())
	s.NoError(err)
	s.Len(fetched.Answers, 1)
	s.Equal("Line 12, every 20 minutes.", fetched.Answers[0].Body)

	_, err = store.AppendAnswer(question.ID.Hex(), "   ", testHelper)
	s.Equal(ErrInvalidAnswer, err)

	_, err = store.AppendAnswer(primitive.NewObjectID().Hex(), "nobody asked", testHelper)
	s.Equal(ErrQuestionNotFound, err)
}

func TestForumTestSuite(t *testing.T) {
	suite.Run(t, NewForumTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
