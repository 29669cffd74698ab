package content

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence surface shared by all resource handlers.
// Documents are loosely typed (bson.M); the schema is advisory and enforced
// only on the write path. The Mongo-backed store implements it for
// production and MemoryStore substitutes for it in tests.
type Store interface {
	// List returns all documents matching the equality filter (pass an
	// empty filter for the whole collection). Store-native identifiers are
	// returned as hex strings.
	List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	// ListNewest returns the whole collection sorted by created_at, newest
	// first.
	ListNewest(ctx context.Context, collection string) ([]bson.M, error)
	FindByRef(ctx context.Context, collection string, ref Ref) (bson.M, error)
	// FindSingleton returns the at-most-one document of a singleton
	// collection, or ErrNotFound.
	FindSingleton(ctx context.Context, collection string) (bson.M, error)
	// NextID computes max existing id + 1, or 1 for an empty collection.
	// Not atomic with a subsequent Insert; two racing creates can assign
	// the same id.
	NextID(ctx context.Context, collection string) (int, error)
	Insert(ctx context.Context, collection string, doc bson.M) (string, error)
	InsertMany(ctx context.Context, collection string, docs []bson.M) error
	// UpdateByRef merges set into the matched document field by field;
	// unlisted fields are untouched. ErrNotFound when nothing matched.
	UpdateByRef(ctx context.Context, collection string, ref Ref, set bson.M) error
	DeleteByRef(ctx context.Context, collection string, ref Ref) error
	// UpsertSingleton merges set into the one document of a singleton
	// collection, creating it when absent.
	UpsertSingleton(ctx context.Context, collection string, set bson.M) error
	// ReplaceSingleton swaps the whole singleton document, creating it when
	// absent. Used where full-document replace is the designed behavior.
	ReplaceSingleton(ctx context.Context, collection string, doc bson.M) error
	Distinct(ctx context.Context, collection, field string) ([]string, error)
}
