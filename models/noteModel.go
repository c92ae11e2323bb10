package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is immutable once created; there is no update operation.
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type CreateNoteRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
}
