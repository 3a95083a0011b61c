package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encodable values by key. A miss is (false, nil).
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// RecommendationsKey is the per-user key for stored career recommendations.
func RecommendationsKey(userID string) string {
	return "recommendations:" + userID
}
