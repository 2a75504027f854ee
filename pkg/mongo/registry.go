package mongo

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dbworker/pkg/logger"
)

// Registry caches one client per endpoint.
// Get is safe for concurrent use: the lookup and the insertion of a new
// client happen under the same lock, so two callers racing on a new
// endpoint always receive the same *Client.
type Registry struct {
	id     string
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	clients map[Endpoint]*Client
	closed  bool
}

// NewRegistry creates an empty registry. cfg supplies the defaults applied
// to every client it creates; per-call ClientOptions are applied on top.
func NewRegistry(cfg Config, opts ...RegistryOption) *Registry {
	r := &Registry{
		id:      uuid.NewString(),
		cfg:     cfg,
		logger:  slog.Default(),
		clients: make(map[Endpoint]*Client),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("mongo.registry"), slog.String("registry_id", r.id))
	return r
}

// Get returns the client for host:port, creating it on first use.
// Repeated calls with the same host and port return the identical *Client;
// opts are ignored once the client exists.
func (r *Registry) Get(host string, port int, opts ...ClientOption) (*Client, error) {
	ep, err := NewEndpoint(host, port)
	if err != nil {
		return nil, err
	}
	return r.get(ep, opts)
}

// GetAddress is Get for a "host:port" address.
func (r *Registry) GetAddress(addr string, opts ...ClientOption) (*Client, error) {
	ep, err := ParseEndpoint(addr)
	if err != nil {
		return nil, err
	}
	return r.get(ep, opts)
}

func (r *Registry) get(ep Endpoint, opts []ClientOption) (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRegistryClosed
	}
	if c, ok := r.clients[ep]; ok {
		return c, nil
	}

	c, err := newClient(ep, r.cfg, opts...)
	if err != nil {
		r.logger.Error("failed to create mongo client", logger.Endpoint(ep.String()), logger.Error(err))
		return nil, err
	}
	r.clients[ep] = c
	r.logger.Debug("mongo client created", logger.Endpoint(ep.String()))
	return c, nil
}

// Len returns the number of cached clients.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Endpoints returns the cached endpoints ordered by host, then port.
func (r *Registry) Endpoints() []Endpoint {
	r.mu.Lock()
	eps := slices.Collect(maps.Keys(r.clients))
	r.mu.Unlock()

	slices.SortFunc(eps, func(a, b Endpoint) int {
		return cmp.Or(cmp.Compare(a.Host, b.Host), cmp.Compare(a.Port, b.Port))
	})
	return eps
}

// Close disconnects every cached client and rejects further lookups.
// Disconnect failures are collected; the registry is closed regardless.
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	for ep, c := range r.clients {
		if err := c.Disconnect(ctx); err != nil {
			r.logger.ErrorContext(ctx, "failed to disconnect mongo client", logger.Endpoint(ep.String()), logger.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", ep, err))
		}
	}
	r.logger.DebugContext(ctx, "mongo client registry closed", slog.Int("clients", len(r.clients)))
	clear(r.clients)

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrFailedToDisconnect}, errs...)...)
	}
	return nil
}
