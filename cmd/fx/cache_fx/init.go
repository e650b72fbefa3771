package cachefx

import (
	"go.uber.org/fx"

	"simsem/internal/infra"
	"simsem/internal/services"
	mem "simsem/pkg/memcache"
)

var Module = fx.Provide(
	provideByteCache, provideVerificationStore)

func provideByteCache() services.ByteCache {
	if client := infra.InitRedis(); client != nil {
		return infra.NewRedisCache(client)
	}
	return infra.NewMemoryCache(mem.NewTTLCache())
}

func provideVerificationStore() mem.VerificationStore {
	return mem.NewVerificationStates()
}
