package mongo

import "errors"

var (
	ErrInvalidHost          = errors.New("mongo endpoint host must not be empty")
	ErrInvalidPort          = errors.New("mongo endpoint port must be an integer in range 1-65535")
	ErrRegistryClosed       = errors.New("mongo client registry is closed")
	ErrFailedToCreateClient = errors.New("failed to create mongo client")
	ErrFailedToDisconnect   = errors.New("failed to disconnect mongo client")
	ErrHealthcheckFailed    = errors.New("mongo healthcheck failed")
)
