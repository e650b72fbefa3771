package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	cachefx "simsem/cmd/fx/cache_fx"
	cdnfx "simsem/cmd/fx/cdn_fx"
	controllersfx "simsem/cmd/fx/controllers_fx"
	dbfx "simsem/cmd/fx/db_fx"
	dishfx "simsem/cmd/fx/dish_fx"
	ibanfx "simsem/cmd/fx/iban_fx"
	languagefx "simsem/cmd/fx/language_fx"
	mailfx "simsem/cmd/fx/mail_fx"
	parsefx "simsem/cmd/fx/parse_fx"
	uploadfx "simsem/cmd/fx/upload_fx"
	wizardfx "simsem/cmd/fx/wizard_fx"
	"simsem/internal/api/controllers"
	"simsem/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		cachefx.Module,
		parsefx.Module,
		cdnfx.Module,
		mailfx.Module,
		wizardfx.Module,
		ibanfx.Module,
		dishfx.Module,
		languagefx.Module,
		uploadfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	wizardController *controllers.WizardController,
	ibanController *controllers.IbanController,
	dishController *controllers.DishController,
	languageController *controllers.LanguageController,
	uploadController *controllers.UploadController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, wizardController, ibanController, dishController, languageController, uploadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	wizardController *controllers.WizardController,
	ibanController *controllers.IbanController,
	dishController *controllers.DishController,
	languageController *controllers.LanguageController,
	uploadController *controllers.UploadController) {

	// IBAN verification fans out to a paid backend function.
	verifyLimiter := middleware.NewRateLimiter(10, 3)

	wizards := r.Group("/wizards")
	wizards.POST("", wizardController.Start)
	wizards.GET("", middleware.JWTAuthMiddleware(), wizardController.List)
	wizards.GET("/:id", wizardController.Get)
	wizards.DELETE("/:id", wizardController.Delete)
	wizards.PUT("/:id/steps/:step", wizardController.SaveStep)
	wizards.POST("/:id/next", wizardController.Next)
	wizards.POST("/:id/back", wizardController.Back)
	wizards.POST("/:id/dishes/custom", wizardController.AddCustomDish)
	wizards.POST("/:id/verify-iban", verifyLimiter.Limit(), ibanController.Verify)
	wizards.GET("/:id/verify-iban", ibanController.Status)

	dishes := r.Group("/dishes")
	dishes.GET("", dishController.Search)
	dishes.POST("", dishController.Create)

	r.GET("/languages", languageController.List)

	uploads := r.Group("/uploads")
	uploads.POST("", uploadController.Upload)
	uploads.DELETE("/*path", uploadController.Delete)
}
