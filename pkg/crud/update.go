package crud

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Outcome tells which branch SetNewValue took.
type Outcome uint8

const (
	// Noop means nothing matched and creation was not requested.
	Noop Outcome = iota
	// Updated means one matching document had the field set.
	Updated
	// Inserted means nothing matched and a new document was created.
	Inserted
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case Inserted:
		return "inserted"
	default:
		return "noop"
	}
}

// SetResult reports what SetNewValue did. Update is set only for Updated and
// Insert only for Inserted.
type SetResult struct {
	Outcome Outcome
	Update  *mongo.UpdateResult
	Insert  *mongo.InsertOneResult
}

// SetNewValue sets field to value on one document matching filter.
//
// When no document matches and createNew is true, a new document holding
// only {field: value} is inserted. When no document matches and createNew is
// false, nothing is written and the result's Outcome is Noop.
func SetNewValue(ctx context.Context, h Handle, filter any, field string, value any, createNew bool, opts ...Option) (SetResult, error) {
	if field == "" {
		return SetResult{}, ErrEmptyField
	}

	ctx, cancel, coll := resolve(ctx, h, opts)
	defer cancel()

	upd, err := coll.UpdateOne(ctx, normalizeFilter(filter), bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: value}}}})
	if err != nil {
		return SetResult{}, err
	}
	if upd.MatchedCount > 0 {
		return SetResult{Outcome: Updated, Update: upd}, nil
	}
	if !createNew {
		return SetResult{Outcome: Noop}, nil
	}

	ins, err := coll.InsertOne(ctx, bson.D{{Key: field, Value: value}})
	if err != nil {
		return SetResult{}, err
	}
	return SetResult{Outcome: Inserted, Insert: ins}, nil
}
