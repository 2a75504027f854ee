// Package logger builds *slog.Logger values with a small set of functional
// options and provides attribute constructors so log keys stay consistent.
//
// New picks a text or JSON handler, applies static attributes, and, when
// extractors are registered, wraps the handler so values carried by the
// context (an operation id, for instance) are added to each record logged
// with the *Context methods.
//
//	log := logger.New(
//		logger.WithDevelopment("dbworker"),
//		logger.WithContextValue("op_id", opIDKey{}),
//	)
//	log.DebugContext(ctx, "document inserted",
//		logger.Database("test_db"),
//		logger.Collection("test_collection"),
//		logger.DocumentID(res.InsertedID),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
