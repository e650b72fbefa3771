package languagefx

import (
	"go.uber.org/fx"

	"simsem/internal/services"
)

var Module = fx.Provide(provideLanguageService)

func provideLanguageService(backend services.ParseAPI, cache services.ByteCache) services.LanguageServiceInterface {
	return services.NewLanguageService(backend, cache)
}
