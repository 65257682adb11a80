// README: Bounded retry with doubling backoff for outbound calls.
package gateway

import (
	"context"
	"time"
)

// retry runs op up to attempts times, doubling the delay between tries.
// The ledger write has already committed by the time any gateway runs, so
// retrying here never reorders the append/notify guarantee.
func retry(ctx context.Context, attempts int, delay time.Duration, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = op(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
