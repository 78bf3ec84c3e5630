// Package ratelimit caps requests per client address with a fixed window
// counter. The window for a key starts at its first hit and lasts Window;
// hits beyond Max inside it are rejected until the window expires.
package ratelimit

import (
	"context"
	"time"
)

// Store counts hits per key. Implementations must be safe for concurrent use.
type Store interface {
	// Hit records one hit for key and returns the count inside the current
	// window together with the time the window resets.
	Hit(ctx context.Context, key string) (count int, resetAt time.Time, err error)
}
