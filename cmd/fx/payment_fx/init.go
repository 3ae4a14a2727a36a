package payment_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/services"
	"voyago/pkg/memcache"
)

const defaultDayPassPriceMinor = 700

var Module = fx.Provide(
	provideProcessedOrders, providePaymentService, providePaymentController)

func provideProcessedOrders() *memcache.ProcessedOrders {
	return memcache.NewProcessedOrders()
}

func providePaymentService(db *gorm.DB, processed *memcache.ProcessedOrders) services.PaymentServiceInterface {
	cfg := services.PayOSConfig{
		ClientID:          os.Getenv("PAYOS_CLIENT_ID"),
		ApiKey:            os.Getenv("PAYOS_API_KEY"),
		ChecksumKey:       os.Getenv("CHECK_SUM_KEY"),
		ReturnURL:         os.Getenv("PAYOS_RETURN_URL"),
		CancelURL:         os.Getenv("PAYOS_CANCEL_URL"),
		ProviderName:      "payos",
		DayPassPriceMinor: defaultDayPassPriceMinor,
		Currency:          "INR",
	}

	if raw := os.Getenv("DAY_PASS_PRICE_MINOR"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("Invalid DAY_PASS_PRICE_MINOR %q, using default %d", raw, cfg.DayPassPriceMinor)
		} else {
			cfg.DayPassPriceMinor = parsed
		}
	}

	return services.NewPaymentService(db, cfg, processed)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
