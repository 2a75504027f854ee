package crud

import (
	"context"
	"iter"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Cursor is a single-pass iterator over the results of FindMany.
// Documents are fetched from the server in batches as iteration advances.
type Cursor struct {
	cur    *mongo.Cursor
	cancel context.CancelFunc
	doc    Document
	err    error
	closed bool
}

// Next advances to the next document, reporting false when the cursor is
// exhausted or failed. Check Err after the loop.
func (c *Cursor) Next(ctx context.Context) bool {
	if c.closed || c.err != nil || !c.cur.Next(ctx) {
		return false
	}
	var doc Document
	if err := c.cur.Decode(&doc); err != nil {
		c.err = err
		return false
	}
	c.doc = doc
	return true
}

// Document returns the document Next advanced to.
func (c *Cursor) Document() Document {
	return c.doc
}

func (c *Cursor) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.cur.Err()
}

// Close releases the server-side cursor. It is safe to call more than once.
func (c *Cursor) Close(ctx context.Context) error {
	if c.closed {
		return nil
	}
	c.closed = true
	defer c.cancel()
	return c.cur.Close(ctx)
}

// All drains the remaining documents and closes the cursor.
func (c *Cursor) All(ctx context.Context) ([]Document, error) {
	c.closed = true
	defer c.cancel()
	docs := []Document{}
	if err := c.cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Documents yields the remaining documents and closes the cursor when the
// loop ends. A failure is yielded once as a nil document with the error.
func (c *Cursor) Documents(ctx context.Context) iter.Seq2[Document, error] {
	return func(yield func(Document, error) bool) {
		defer c.Close(ctx)
		for c.Next(ctx) {
			if !yield(c.doc, nil) {
				return
			}
		}
		if err := c.Err(); err != nil {
			yield(nil, err)
		}
	}
}
