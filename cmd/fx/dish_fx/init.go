package dishfx

import (
	"go.uber.org/fx"

	"simsem/internal/services"
)

var Module = fx.Provide(provideDishService)

func provideDishService(backend services.ParseAPI, cache services.ByteCache) services.DishServiceInterface {
	return services.NewDishService(backend, cache)
}
