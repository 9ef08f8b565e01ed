package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	QuestionCollection = "questions"
)

// Answer is one entry of a question's embedded answer list.
type Answer struct {
	ID          string    `json:"id" bson:"id"`
	AuthorID    string    `json:"author_id" bson:"author_id"`
	AuthorName  string    `json:"author_name" bson:"author_name"`
	AuthorEmail string    `json:"author_email" bson:"author_email"`
	Body        string    `json:"body" bson:"body"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Question is a forum post in the lightweight campus Q&A board.
type Question struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title    string             `json:"title" bson:"title"`
	Body     string             `json:"body" bson:"body"`
	Category string             `json:"category" bson:"category"`

	AuthorID    string `json:"author_id" bson:"author_id"`
	AuthorName  string `json:"author_name" bson:"author_name"`
	AuthorEmail string `json:"author_email" bson:"author_email"`

	Answers []Answer `json:"answers" bson:"answers"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
