package parsefx

import (
	"go.uber.org/fx"

	"simsem/internal/infra"
	"simsem/internal/services"
)

var Module = fx.Provide(provideParseClient)

func provideParseClient() services.ParseAPI {
	return infra.NewParseClient(infra.ParseConfigFromEnv())
}
