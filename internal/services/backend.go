package services

import (
	"context"
	"time"

	"simsem/internal/infra"
)

// ParseAPI is the slice of the Parse REST client the services consume.
type ParseAPI interface {
	CreateObject(ctx context.Context, class string, body interface{}) (infra.CreateObjectResult, error)
	QueryObjects(ctx context.Context, class string, where map[string]interface{}, limit int, out interface{}) error
	CallFunction(ctx context.Context, name string, params interface{}, out interface{}) error
}

// ByteCache abstracts the list caches (redis in production, in-process
// TTL cache when redis is not configured).
type ByteCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
