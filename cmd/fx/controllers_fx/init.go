package controllersfx

import (
	"go.uber.org/fx"
	"simsem/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewWizardController),
	fx.Provide(controllers.NewIbanController),
	fx.Provide(controllers.NewDishController),
	fx.Provide(controllers.NewLanguageController),
	fx.Provide(controllers.NewUploadController))
