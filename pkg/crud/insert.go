package crud

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Document is an ordered, schema-less record. Stored documents carry their
// identifier under "_id", a bson.ObjectID unless the caller supplied one.
type Document = bson.D

// InsertOne stores document as-is. When it has no "_id" the driver generates
// one; the result's InsertedID is the identifier actually stored.
func InsertOne(ctx context.Context, h Handle, document any, opts ...Option) (*mongo.InsertOneResult, error) {
	ctx, cancel, coll := resolve(ctx, h, opts)
	defer cancel()
	return coll.InsertOne(ctx, document)
}

// InsertMany stores every document and returns one identifier per input, in
// input order. An empty slice is rejected by the driver with mongo.ErrEmptySlice.
func InsertMany[T any](ctx context.Context, h Handle, documents []T, opts ...Option) (*mongo.InsertManyResult, error) {
	ctx, cancel, coll := resolve(ctx, h, opts)
	defer cancel()
	return coll.InsertMany(ctx, documents)
}
