package mongo

import (
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ClientOption adjusts the driver options of a client before it is created.
// Options only take effect on the call that creates the client; a cached
// client is returned as-is.
type ClientOption func(*options.ClientOptions)

func WithServerSelectionTimeout(d time.Duration) ClientOption {
	return func(o *options.ClientOptions) { o.SetServerSelectionTimeout(d) }
}

func WithConnectTimeout(d time.Duration) ClientOption {
	return func(o *options.ClientOptions) { o.SetConnectTimeout(d) }
}

// WithTimeout sets the client-side timeout applied to every operation.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *options.ClientOptions) { o.SetTimeout(d) }
}

func WithAppName(name string) ClientOption {
	return func(o *options.ClientOptions) { o.SetAppName(name) }
}

func WithDirect(direct bool) ClientOption {
	return func(o *options.ClientOptions) { o.SetDirect(direct) }
}

func WithMaxPoolSize(n uint64) ClientOption {
	return func(o *options.ClientOptions) { o.SetMaxPoolSize(n) }
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for client lifecycle events. Nil is ignored.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}
