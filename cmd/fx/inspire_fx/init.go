package inspire_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingClient, provideDestinationRepo, provideDestinationService, provideDestinationController)

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewEmbeddingClient(os.Getenv("OPENAI_API_KEY"))
}

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(repo repositories.DestinationRepository, embedder utils.EmbeddingClientInterface) services.DestinationServiceInterface {
	return services.NewDestinationService(repo, embedder)
}

func provideDestinationController(destinationService services.DestinationServiceInterface) *controllers.DestinationController {
	return controllers.NewDestinationController(destinationService)
}
