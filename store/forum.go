package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campus-aid/campus-aid-api/schema"
)

var (
	ErrQuestionNotFound = fmt.Errorf("question not found")
	ErrInvalidQuestion  = fmt.Errorf("invalid question content")
	ErrInvalidAnswer    = fmt.Errorf("invalid answer content")
)

// QuestionParams is the author-supplied content of a new forum question.
type QuestionParams struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

type ForumOperator interface {
	CreateQuestion(author schema.Identity, params QuestionParams) (*schema.Question, error)
	GetQuestion(id string) (*schema.Question, error)
	ListQuestions() ([]schema.Question, error)
	AppendAnswer(questionID, body string, author schema.Identity) (*schema.Answer, error)
}

func (m *mongoDB) CreateQuestion(author schema.Identity, params QuestionParams) (*schema.Question, error) {
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Body) == "" {
		return nil, ErrInvalidQuestion
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	question := schema.Question{
		Title:       strings.TrimSpace(params.Title),
		Body:        params.Body,
		Category:    params.Category,
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
		Answers:     []schema.Answer{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	c := m.client.Database(m.database).Collection(schema.QuestionCollection)
	result, err := c.InsertOne(ctx, question)
	if err != nil {
		return nil, err
	}
	question.ID = result.InsertedID.(primitive.ObjectID)

	return &question, nil
}

func (m *mongoDB) GetQuestion(id string) (*schema.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrQuestionNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.QuestionCollection)

	var question schema.Question
	if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&question); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	return &question, nil
}

func (m *mongoDB) ListQuestions() ([]schema.Question, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.QuestionCollection)

	cursor, err := c.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []schema.Question{}
	for cursor.Next(ctx) {
		var question schema.Question
		if err := cursor.Decode(&question); err != nil {
			logMalformedDocument(schema.QuestionCollection, err)
			continue
		}
		questions = append(questions, question)
	}

	return questions, cursor.Err()
}

// AppendAnswer pushes one answer onto a question's embedded answer list.
func (m *mongoDB) AppendAnswer(questionID, body string, author schema.Identity) (*schema.Answer, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, ErrInvalidAnswer
	}

	oid, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return nil, ErrQuestionNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	answer := schema.Answer{
		ID:          uuid.New().String(),
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
		Body:        trimmed,
		CreatedAt:   now,
	}

	c := m.client.Database(m.database).Collection(schema.QuestionCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"answers": answer},
			"$set":  bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrQuestionNotFound
	}

	return &answer, nil
}
