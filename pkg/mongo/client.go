package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Client is a live driver client bound to a single endpoint.
// It embeds *mongo.Client, so every driver method is available on it.
type Client struct {
	*mongo.Client
	endpoint Endpoint
}

// Endpoint returns the endpoint the client was created for.
func (c *Client) Endpoint() Endpoint {
	return c.endpoint
}

// Collection resolves client[database][collection].
func (c *Client) Collection(database, collection string) Collection {
	return c.Database(database).Collection(collection)
}

// newClient builds a client lazily: mongo.Connect starts background
// monitoring but performs no blocking I/O, so an unreachable server only
// surfaces on the first operation.
func newClient(ep Endpoint, cfg Config, opts ...ClientOption) (*Client, error) {
	co := clientOptions(ep, cfg)
	for _, opt := range opts {
		if opt != nil {
			opt(co)
		}
	}

	drv, err := mongo.Connect(co)
	if err != nil {
		return nil, errors.Join(ErrFailedToCreateClient, err)
	}
	return &Client{Client: drv, endpoint: ep}, nil
}

func clientOptions(ep Endpoint, cfg Config) *options.ClientOptions {
	co := options.Client().
		SetHosts([]string{ep.String()}).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads).
		SetDirect(cfg.Direct)

	if cfg.AppName != "" {
		co.SetAppName(cfg.AppName)
	}
	if cfg.ConnectTimeout > 0 {
		co.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.ServerSelectionTimeout > 0 {
		co.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}
	if cfg.Timeout > 0 {
		co.SetTimeout(cfg.Timeout)
	}
	if cfg.MaxPoolSize > 0 {
		co.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		co.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.MaxConnIdleTime > 0 {
		co.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}
	return co
}

// IsTimeout reports whether err was caused by a timeout, including a server
// selection that ran out of time against an unreachable endpoint.
func IsTimeout(err error) bool {
	return mongo.IsTimeout(err)
}
