package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/inspire_fx"
	"voyago/cmd/fx/payment_fx"
	"voyago/cmd/fx/quota_fx"
	"voyago/cmd/fx/trip_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		quota_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		payment_fx.Module,
		inspire_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RunMigrations),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RunMigrations(db *gorm.DB) error {
	return infra.Migrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	tripController *controllers.TripController,
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	destinationController *controllers.DestinationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripController, accountController, paymentController, destinationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	destinationController *controllers.DestinationController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/signup", accountController.SignUp)
	accountGroup.POST("/login", accountController.Login)

	destinationGroup := r.Group("/destinations")
	destinationGroup.GET("/featured", destinationController.ListFeatured)

	r.POST("/payments/webhook", paymentController.HandleWebhook)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.POST("/trips/generate", tripController.GenerateTrip)
	authed.GET("/users/me/status", accountController.GetStatus)
	authed.POST("/payments/checkout", paymentController.CreateCheckout)
	authed.POST("/destinations/inspire", destinationController.Inspire)
}
