package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	SessionKeyPrefix  = "storefront:session"
	CategoryKeyPrefix = "storefront:categories"
	ProductKeyPrefix  = "storefront:product"
	WebhookKeyPrefix  = "storefront:webhook"
)
