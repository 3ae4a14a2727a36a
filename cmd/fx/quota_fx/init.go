package quota_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideQuotaRepo, provideQuotaService)

func provideQuotaRepo(db *gorm.DB) repositories.QuotaRepository {
	return repositories.NewQuotaRepository(db)
}

func provideQuotaService(repo repositories.QuotaRepository) services.QuotaServiceInterface {
	capacity := services.DefaultDailyTripCap
	if raw := os.Getenv("QUOTA_DAILY_CAP"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("Invalid QUOTA_DAILY_CAP %q, using default %d", raw, capacity)
		} else {
			capacity = parsed
		}
	}
	return services.NewQuotaService(repo, capacity)
}
