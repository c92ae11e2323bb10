package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotConnected is returned by Database and OpenCollection until a
// connection has been established.
var ErrNotConnected = errors.New("database not connected")

type State int

const (
	Disconnected State = iota
	Connected
	Failed
)

const defaultDatabaseName = "notes"

// Client wraps the MongoDB connection and the database handle derived
// from the connection string.
type Client struct {
	state  State
	client *mongo.Client
	db     *mongo.Database
}

// Connect attempts to reach MongoDB and verify the connection with a ping.
// A failure is not fatal: the client is returned in the Failed state, a
// warning is logged, and the process keeps running so /health and /metrics
// stay available while the store is unreachable.
func Connect(uri string) *Client {
	c := &Client{state: Disconnected}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(5 * time.Second)
	mongoClient, err := mongo.Connect(ctx, opts)
	if err == nil {
		err = mongoClient.Ping(ctx, readpref.Primary())
	}
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to MongoDB")
		c.state = Failed
		return c
	}

	c.client = mongoClient
	c.db = mongoClient.Database(DatabaseNameFromURI(uri))
	c.state = Connected

	if err := c.ensureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to create note indexes")
	}

	log.Info().Str("database", c.db.Name()).Msg("Successfully connected to MongoDB")
	return c
}

// DatabaseNameFromURI derives the database name from the tail segment of
// the connection string, stripped of any query string. Connection strings
// without a database segment fall back to the default name.
func DatabaseNameFromURI(uri string) string {
	tail := uri
	if i := strings.LastIndex(tail, "/"); i >= 0 {
		tail = tail[i+1:]
	}
	if i := strings.Index(tail, "?"); i >= 0 {
		tail = tail[:i]
	}
	if tail == "" || strings.ContainsAny(tail, ":@") {
		return defaultDatabaseName
	}
	return tail
}

// ensureIndexes is safe to run on every startup: creating an index that
// already exists with the same options is a no-op.
func (c *Client) ensureIndexes(ctx context.Context) error {
	_, err := c.db.Collection("notes").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "body", Value: "text"}},
			Options: options.Index().SetName("title_body_text"),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	})
	return err
}

func (c *Client) State() State {
	return c.state
}

func (c *Client) Database() (*mongo.Database, error) {
	if c.state != Connected {
		return nil, ErrNotConnected
	}
	return c.db, nil
}

func (c *Client) OpenCollection(name string) (*mongo.Collection, error) {
	db, err := c.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

func (c *Client) Close() {
	if c.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("Error closing MongoDB connection")
		return
	}
	c.state = Disconnected
	log.Info().Msg("MongoDB connection closed")
}
