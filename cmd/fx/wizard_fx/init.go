package wizardfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"simsem/internal/repositories"
	"simsem/internal/services"
	mem "simsem/pkg/memcache"
)

var Module = fx.Provide(
	provideDraftRepo, provideTourPublisher, provideSignupPublisher, provideWizardService)

func provideDraftRepo(db *gorm.DB) repositories.DraftRepository {
	return repositories.NewDraftRepository(db)
}

func provideTourPublisher(backend services.ParseAPI) services.TourPublisher {
	return services.NewTourService(backend)
}

func provideSignupPublisher(backend services.ParseAPI, verifications mem.VerificationStore, mail services.IMailService) services.SignupPublisher {
	return services.NewSignupService(backend, verifications, mail)
}

func provideWizardService(
	draftRepo repositories.DraftRepository,
	verifications mem.VerificationStore,
	tours services.TourPublisher,
	signups services.SignupPublisher,
) services.WizardServiceInterface {
	return services.NewWizardService(draftRepo, verifications, tours, signups)
}
