package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notes-api/database"
	"notes-api/models"
)

var (
	ErrEmptyTitle = errors.New("title is required")
	ErrEmptyQuery = errors.New("search query is required")
	ErrInvalidID  = errors.New("invalid note id")
	ErrNotFound   = errors.New("note not found")
)

const collectionName = "notes"

// NoteRepository performs all note document operations against the store.
type NoteRepository struct {
	client *database.Client
}

func NewNoteRepository(client *database.Client) *NoteRepository {
	return &NoteRepository{client: client}
}

func (r *NoteRepository) collection() (*mongo.Collection, error) {
	return r.client.OpenCollection(collectionName)
}

// Create inserts a new note with a server-assigned id and creation time.
// Title and body are trimmed; an empty trimmed title is rejected.
func (r *NoteRepository) Create(ctx context.Context, title string, body string) (*models.Note, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	noteCollection, err := r.collection()
	if err != nil {
		return nil, err
	}

	note := models.Note{
		ID:    primitive.NewObjectID(),
		Title: title,
		Body:  body,
		// millisecond precision so the value round-trips through the store
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := noteCollection.InsertOne(ctx, note); err != nil {
		return nil, fmt.Errorf("inserting note: %w", err)
	}
	return &note, nil
}

// ListAll returns every note, newest first.
func (r *NoteRepository) ListAll(ctx context.Context) ([]models.Note, error) {
	noteCollection, err := r.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := noteCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("finding notes: %w", err)
	}

	notes := []models.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	return notes, nil
}

// GetByID validates the identifier before touching the store, so malformed
// ids never reach MongoDB.
func (r *NoteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	noteCollection, err := r.collection()
	if err != nil {
		return nil, err
	}

	var note models.Note
	if err := noteCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&note); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching note %s: %w", id, err)
	}
	return &note, nil
}

// Search performs a case-insensitive substring match against title or body,
// newest first. The query is regex-escaped: it is plain containment, not a
// pattern match.
func (r *NoteRepository) Search(ctx context.Context, query string) ([]models.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	noteCollection, err := r.collection()
	if err != nil {
		return nil, err
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": bson.M{"$regex": pattern}},
		{"body": bson.M{"$regex": pattern}},
	}}

	cursor, err := noteCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("searching notes: %w", err)
	}

	notes := []models.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	return notes, nil
}

// DeleteByID reports whether exactly one note was removed. A missing note
// is not an error.
func (r *NoteRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}

	noteCollection, err := r.collection()
	if err != nil {
		return false, err
	}

	result, err := noteCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("deleting note %s: %w", id, err)
	}
	return result.DeletedCount == 1, nil
}

// Count returns the live number of notes in the store.
func (r *NoteRepository) Count(ctx context.Context) (int64, error) {
	noteCollection, err := r.collection()
	if err != nil {
		return 0, err
	}

	count, err := noteCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting notes: %w", err)
	}
	return count, nil
}
