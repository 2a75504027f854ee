package mongo

import (
	"context"
	"errors"
)

// Healthcheck returns a probe that pings the client's endpoint.
// Use it to force the first round-trip of an otherwise lazy client.
func Healthcheck(client *Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
