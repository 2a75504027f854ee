// Package crud provides stateless helpers for inserting, finding and
// updating schema-less documents through a client from the mongo package.
//
// Every helper takes a Handle and resolves handle[database][collection],
// defaulting to DefaultDatabase and DefaultCollection; WithDatabase and
// WithCollection select another target. Driver errors are returned
// unchanged. The only translation is in FindOne, where "no documents" becomes
// found == false.
//
//	reg := mongo.NewRegistry(mongo.DefaultConfig())
//	client, err := reg.Get("localhost", 27017)
//	if err != nil {
//		return err
//	}
//
//	res, err := crud.InsertOne(ctx, client, bson.D{
//		{Key: "name", Value: "A"},
//		{Key: "parameters", Value: bson.D{{Key: "location", Value: "Kazan"}, {Key: "value", Value: 7}}},
//	})
//	if err != nil {
//		return err
//	}
//
//	doc, found, err := crud.FindOne(ctx, client, bson.D{{Key: "_id", Value: res.InsertedID}})
//
// SetNewValue is a conditional update-or-insert. It sets one field on a
// matching document, inserts {field: value} when nothing matches and
// createNew is true, and otherwise reports Noop without writing.
package crud
