package crud

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// FindOne returns the first document matching filter. When nothing matches
// it returns found == false and a nil error.
//
// Matching is type-exact: a filter on the hex string of an ObjectID does not
// match the ObjectID itself.
func FindOne(ctx context.Context, h Handle, filter any, opts ...Option) (doc Document, found bool, err error) {
	ctx, cancel, coll := resolve(ctx, h, opts)
	defer cancel()

	if err := coll.FindOne(ctx, normalizeFilter(filter)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return doc, true, nil
}

// FindMany returns a cursor over every document matching filter.
// The caller owns the cursor and must Close it unless it is drained with All
// or Documents.
func FindMany(ctx context.Context, h Handle, filter any, opts ...Option) (*Cursor, error) {
	ctx, cancel, coll := resolve(ctx, h, opts)

	cur, err := coll.Find(ctx, normalizeFilter(filter))
	if err != nil {
		cancel()
		return nil, err
	}
	return &Cursor{cur: cur, cancel: cancel}, nil
}

// Count returns the number of documents matching filter without fetching them.
func Count(ctx context.Context, h Handle, filter any, opts ...Option) (int64, error) {
	ctx, cancel, coll := resolve(ctx, h, opts)
	defer cancel()
	return coll.CountDocuments(ctx, normalizeFilter(filter))
}

// normalizeFilter maps a nil filter to the empty document, which matches everything.
func normalizeFilter(filter any) any {
	if filter == nil {
		return bson.D{}
	}
	return filter
}
