package ibanfx

import (
	"go.uber.org/fx"

	"simsem/internal/repositories"
	"simsem/internal/services"
	mem "simsem/pkg/memcache"
)

var Module = fx.Provide(provideIbanService)

func provideIbanService(draftRepo repositories.DraftRepository, verifications mem.VerificationStore, backend services.ParseAPI) services.IbanServiceInterface {
	return services.NewIbanService(draftRepo, verifications, backend)
}
