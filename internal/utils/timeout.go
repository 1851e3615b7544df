package utils

import (
	"context"
	"time"
)

// DefaultDBTimeout bounds a single coupon lookup so a slow database cannot stall checkout.
const DefaultDBTimeout = 3 * time.Second

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}
