package crud

import (
	"context"
	"time"

	dbmongo "github.com/dmitrymomot/dbworker/pkg/mongo"
)

const (
	DefaultDatabase   = "test_db"
	DefaultCollection = "test_collection"
)

// Handle resolves a collection by database and collection name.
// *mongo.Client from the registry package satisfies it.
type Handle interface {
	Collection(database, collection string) dbmongo.Collection
}

var _ Handle = (*dbmongo.Client)(nil)

// Option selects the target collection or bounds a call.
type Option func(*target)

type target struct {
	database   string
	collection string
	timeout    time.Duration
}

// WithDatabase overrides DefaultDatabase. An empty name is ignored.
func WithDatabase(name string) Option {
	return func(t *target) {
		if name != "" {
			t.database = name
		}
	}
}

// WithCollection overrides DefaultCollection. An empty name is ignored.
func WithCollection(name string) Option {
	return func(t *target) {
		if name != "" {
			t.collection = name
		}
	}
}

// WithTimeout bounds the call with a deadline. For FindMany it covers the
// initial query and is released when the cursor is closed.
func WithTimeout(d time.Duration) Option {
	return func(t *target) { t.timeout = d }
}

// resolve applies opts and returns the target collection together with the
// context the call must use. The returned cancel is never nil.
func resolve(ctx context.Context, h Handle, opts []Option) (context.Context, context.CancelFunc, dbmongo.Collection) {
	t := target{database: DefaultDatabase, collection: DefaultCollection}
	for _, opt := range opts {
		if opt != nil {
			opt(&t)
		}
	}

	cancel := context.CancelFunc(func() {})
	if t.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
	}
	return ctx, cancel, h.Collection(t.database, t.collection)
}
