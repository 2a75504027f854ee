package crud_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	dbmongo "github.com/dmitrymomot/dbworker/pkg/mongo"
)

// memClient is an in-memory Handle. Collections are created on first use.
type memClient struct {
	mu    sync.Mutex
	colls map[string]*memCollection
}

func newMemClient() *memClient {
	return &memClient{colls: make(map[string]*memCollection)}
}

func (c *memClient) Collection(database, collection string) dbmongo.Collection {
	return c.coll(database, collection)
}

func (c *memClient) coll(database, collection string) *memCollection {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := database + "." + collection
	if _, ok := c.colls[key]; !ok {
		c.colls[key] = &memCollection{}
	}
	return c.colls[key]
}

// memCollection keeps documents as raw BSON in insertion order. Filters
// support equality on top-level and dotted fields; updates support $set.
type memCollection struct {
	mu   sync.Mutex
	docs []bson.Raw
}

func (m *memCollection) InsertOne(_ context.Context, document any, _ ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	raw, id, err := ensureID(document)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.docs = append(m.docs, raw)
	m.mu.Unlock()
	return &mongo.InsertOneResult{InsertedID: id, Acknowledged: true}, nil
}

func (m *memCollection) InsertMany(ctx context.Context, documents any, _ ...options.Lister[options.InsertManyOptions]) (*mongo.InsertManyResult, error) {
	dv := reflect.ValueOf(documents)
	if dv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("invalid documents: %w", mongo.ErrNotSlice)
	}
	if dv.Len() == 0 {
		return nil, fmt.Errorf("invalid documents: %w", mongo.ErrEmptySlice)
	}
	res := &mongo.InsertManyResult{Acknowledged: true}
	for i := range dv.Len() {
		one, err := m.InsertOne(ctx, dv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		res.InsertedIDs = append(res.InsertedIDs, one.InsertedID)
	}
	return res, nil
}

func (m *memCollection) FindOne(_ context.Context, filter any, _ ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	matched, err := m.match(filter, 1)
	if err != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, err, nil)
	}
	if len(matched) == 0 {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(m.docs[matched[0]], nil, nil)
}

func (m *memCollection) Find(_ context.Context, filter any, _ ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	matched, err := m.match(filter, -1)
	if err != nil {
		return nil, err
	}
	docs := make([]any, 0, len(matched))
	for _, i := range matched {
		docs = append(docs, m.docs[i])
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (m *memCollection) UpdateOne(_ context.Context, filter any, update any, _ ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error) {
	matched, err := m.match(filter, 1)
	if err != nil {
		return nil, err
	}
	res := &mongo.UpdateResult{Acknowledged: true}
	if len(matched) == 0 {
		return res, nil
	}

	upd, err := toRaw(update)
	if err != nil {
		return nil, err
	}
	set, err := upd.LookupErr("$set")
	if err != nil {
		return nil, errors.New("memstore: only $set updates are supported")
	}
	fields, err := set.Document().Elements()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := matched[0]
	var doc bson.D
	if err := bson.Unmarshal(m.docs[i], &doc); err != nil {
		return nil, err
	}
	for _, f := range fields {
		var v any
		if err := f.Value().Unmarshal(&v); err != nil {
			return nil, err
		}
		doc = setPath(doc, strings.Split(f.Key(), "."), v)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	res.MatchedCount = 1
	if !bytesEqual(raw, m.docs[i]) {
		res.ModifiedCount = 1
	}
	m.docs[i] = raw
	return res, nil
}

func (m *memCollection) CountDocuments(_ context.Context, filter any, _ ...options.Lister[options.CountOptions]) (int64, error) {
	matched, err := m.match(filter, -1)
	return int64(len(matched)), err
}

// match returns the indexes of up to limit matching documents; limit < 0 means all.
func (m *memCollection) match(filter any, limit int) ([]int, error) {
	f, err := toRaw(filter)
	if err != nil {
		return nil, err
	}
	conds, err := f.Elements()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []int
	for i, doc := range m.docs {
		if limit >= 0 && len(out) == limit {
			break
		}
		if matches(doc, conds) {
			out = append(out, i)
		}
	}
	return out, nil
}

func matches(doc bson.Raw, conds []bson.RawElement) bool {
	for _, c := range conds {
		got, err := doc.LookupErr(strings.Split(c.Key(), ".")...)
		if err != nil || !got.Equal(c.Value()) {
			return false
		}
	}
	return true
}

func ensureID(document any) (bson.Raw, any, error) {
	if document == nil {
		return nil, nil, mongo.ErrNilDocument
	}
	raw, err := toRaw(document)
	if err != nil {
		return nil, nil, err
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, nil, err
	}
	for _, e := range doc {
		if e.Key == "_id" {
			return raw, e.Value, nil
		}
	}
	id := bson.NewObjectID()
	raw, err = bson.Marshal(append(bson.D{{Key: "_id", Value: id}}, doc...))
	return raw, id, err
}

func setPath(doc bson.D, path []string, v any) bson.D {
	for i := range doc {
		if doc[i].Key != path[0] {
			continue
		}
		if len(path) == 1 {
			doc[i].Value = v
			return doc
		}
		nested, _ := doc[i].Value.(bson.D)
		doc[i].Value = setPath(nested, path[1:], v)
		return doc
	}
	if len(path) == 1 {
		return append(doc, bson.E{Key: path[0], Value: v})
	}
	return append(doc, bson.E{Key: path[0], Value: setPath(nil, path[1:], v)})
}

func toRaw(v any) (bson.Raw, error) {
	if v == nil {
		return nil, mongo.ErrNilDocument
	}
	b, err := bson.Marshal(v)
	return bson.Raw(b), err
}

func bytesEqual(a, b []byte) bool {
	return string(a) == string(b)
}

// failingHandle returns a collection whose every operation fails with err.
type failingHandle struct{ err error }

func (h failingHandle) Collection(string, string) dbmongo.Collection {
	return failingCollection(h)
}

type failingCollection struct{ err error }

func (c failingCollection) InsertOne(context.Context, any, ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	return nil, c.err
}

func (c failingCollection) InsertMany(context.Context, any, ...options.Lister[options.InsertManyOptions]) (*mongo.InsertManyResult, error) {
	return nil, c.err
}

func (c failingCollection) FindOne(context.Context, any, ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(bson.D{}, c.err, nil)
}

func (c failingCollection) Find(context.Context, any, ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	return nil, c.err
}

func (c failingCollection) UpdateOne(context.Context, any, any, ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error) {
	return nil, c.err
}

func (c failingCollection) CountDocuments(context.Context, any, ...options.Lister[options.CountOptions]) (int64, error) {
	return 0, c.err
}

// deadlineHandle reports the context CountDocuments was called with.
type deadlineHandle struct{ onCall func(context.Context) }

func (h deadlineHandle) Collection(string, string) dbmongo.Collection {
	return deadlineCollection{onCall: h.onCall}
}

type deadlineCollection struct {
	failingCollection
	onCall func(context.Context)
}

func (c deadlineCollection) CountDocuments(ctx context.Context, _ any, _ ...options.Lister[options.CountOptions]) (int64, error) {
	c.onCall(ctx)
	return 0, nil
}
