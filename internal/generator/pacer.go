package generator

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer blocks until the next page write may proceed.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer returns a limiter allowing one write per interval. The first
// write is never delayed. A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
