package cdnfx

import (
	"go.uber.org/fx"

	"simsem/internal/infra"
)

var Module = fx.Provide(provideCDNClient)

func provideCDNClient() *infra.CDNClient {
	return infra.NewCDNClient(infra.CDNConfigFromEnv())
}
