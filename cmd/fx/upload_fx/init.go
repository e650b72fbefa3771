package uploadfx

import (
	"go.uber.org/fx"

	"simsem/internal/infra"
	"simsem/internal/services"
)

var Module = fx.Provide(provideUploadService)

func provideUploadService(cdn *infra.CDNClient) services.UploadServiceInterface {
	return services.NewUploadService(cdn)
}
