package mongo

import (
	"time"

	"github.com/dmitrymomot/dbworker/pkg/config"
)

// Config holds the defaults applied to every client the registry creates.
// Zero durations and pool sizes leave the driver defaults in place.
type Config struct {
	AppName                string        `env:"MONGODB_APP_NAME"`                                  // AppName is reported to the server in the handshake.
	ConnectTimeout         time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`          // ConnectTimeout bounds establishing a single connection.
	ServerSelectionTimeout time.Duration `env:"MONGODB_SERVER_SELECTION_TIMEOUT" envDefault:"30s"` // ServerSelectionTimeout bounds waiting for a suitable server.
	Timeout                time.Duration `env:"MONGODB_TIMEOUT"`                                   // Timeout is the client-side operation timeout.
	MaxPoolSize            uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`            // MaxPoolSize is the maximum number of connections per server.
	MinPoolSize            uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"0"`              // MinPoolSize is the minimum number of idle connections per server.
	MaxConnIdleTime        time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`      // MaxConnIdleTime is how long a pooled connection may stay idle.
	RetryWrites            bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`            // RetryWrites enables retryable writes.
	RetryReads             bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`             // RetryReads enables retryable reads.
	Direct                 bool          `env:"MONGODB_DIRECT" envDefault:"false"`                 // Direct connects to the single host without topology discovery.
}

// DefaultConfig returns the same values LoadConfig yields on an empty environment.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 30 * time.Second,
		MaxPoolSize:            100,
		MaxConnIdleTime:        300 * time.Second,
		RetryWrites:            true,
		RetryReads:             true,
	}
}

// LoadConfig reads MONGODB_* environment variables (and .env, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
