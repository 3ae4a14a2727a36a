package trip_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideTripGenerator,
	provideGeocoder,
	provideEnrichmentService,
	provideAccessGate,
	provideTripService,
	provideTripController,
)

func provideTripGenerator() utils.TripGeneratorInterface {
	provider := getEnvWithDefault("GENERATION_PROVIDER", "gemini")

	var apiKey, model string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	}

	generator, err := utils.NewTripGenerator(provider, apiKey, model)
	if err != nil {
		log.Fatalf("Error initializing trip generator: %v", err)
	}
	return generator
}

func provideGeocoder() utils.GeocoderInterface {
	return utils.NewNominatimGeocoder()
}

func provideEnrichmentService(geocoder utils.GeocoderInterface) services.EnrichmentServiceInterface {
	return services.NewPlaceEnrichmentService(geocoder)
}

func provideAccessGate(quota services.QuotaServiceInterface, accounts repositories.AccountRepository, adminIDs services.AdminList) services.AccessGateInterface {
	return services.NewAccessGate(quota, accounts, adminIDs)
}

func provideTripService(gate services.AccessGateInterface, generator utils.TripGeneratorInterface, enricher services.EnrichmentServiceInterface) services.TripServiceInterface {
	return services.NewTripService(gate, generator, enricher)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}

func getEnvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
