// Package mongo keeps one MongoDB client per endpoint.
//
// A Registry maps a (host, port) pair to a *Client. The first Get for an
// endpoint builds the client from the registry's Config plus any per-call
// ClientOption; every later Get for the same pair returns the identical
// pointer. Distinct pairs get distinct clients. The registry only grows
// until Close disconnects everything.
//
// Clients are created lazily. Get never dials the server, so an unreachable
// endpoint is reported by the first real operation as a server selection
// timeout once ServerSelectionTimeout elapses. Use IsTimeout to recognise it,
// or Healthcheck to force a round-trip up front.
//
// Host and port are validated before any client is built: an empty host
// yields ErrInvalidHost and a port outside 1-65535 (or, for GetAddress, one
// that is not an integer) yields ErrInvalidPort.
//
// # Usage
//
//	cfg, err := mongo.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	reg := mongo.NewRegistry(cfg, mongo.WithLogger(slog.Default()))
//	defer reg.Close(context.Background())
//
//	client, err := reg.Get("localhost", 27017, mongo.WithServerSelectionTimeout(2*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//	coll := client.Collection("test_db", "test_collection")
//
// # Configuration
//
// LoadConfig reads MONGODB_* environment variables through the config
// package. DefaultConfig returns the same values without reading the
// environment.
//
// # See Also
//
// Documentation for the official driver: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2.
package mongo
