package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. One collection per record kind.
const (
	CollectionUsers     = "user"
	CollectionGiftcards = "giftcard"
	CollectionRates     = "rate"
	CollectionTrades    = "trade"
)

// ErrInvalidID is returned when an identifier is not a 24-hex ObjectID.
var ErrInvalidID = errors.New("invalid identifier")

// ParseID converts a hex identifier into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// IsValidID reports whether id can be parsed by ParseID.
func IsValidID(id string) bool {
	_, err := ParseID(id)
	return err == nil
}

// Collection is a typed facade over one MongoDB collection. T is the document
// struct; its _id field must be a string so identifiers leave this layer as hex.
type Collection[T any] struct {
	coll *mongo.Collection
	name string
}

// NewCollection binds name in db. A nil db yields a collection whose every
// operation fails with ErrNotConnected.
func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	c := &Collection[T]{name: name}
	if db != nil {
		c.coll = db.Collection(name)
	}
	return c
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Create inserts doc and returns the identifier assigned by storage.
func (c *Collection[T]) Create(ctx context.Context, doc *T) (string, error) {
	if c.coll == nil {
		return "", ErrNotConnected
	}

	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", c.name, err)
	}
	return idString(res.InsertedID), nil
}

// List returns up to limit documents matching filter, in the store's natural order.
func (c *Collection[T]) List(ctx context.Context, filter Filter, limit int64) ([]T, error) {
	if c.coll == nil {
		return nil, ErrNotConnected
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := c.coll.Find(ctx, filter.BSON(), opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.name, err)
	}

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	return out, nil
}

// Update applies fields to the document with the given id and returns the
// number of documents modified. An unknown id is not an error: it returns 0.
// A malformed id fails with ErrInvalidID before any storage call.
func (c *Collection[T]) Update(ctx context.Context, id string, fields Fields) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}
	if fields.Empty() {
		return 0, nil
	}
	if c.coll == nil {
		return 0, ErrNotConnected
	}

	res, err := c.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, fields.BSON())
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", c.name, err)
	}
	return res.ModifiedCount, nil
}

// Count returns the number of documents matching filter.
func (c *Collection[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	if c.coll == nil {
		return 0, ErrNotConnected
	}

	n, err := c.coll.CountDocuments(ctx, filter.BSON())
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.name, err)
	}
	return n, nil
}

func idString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
