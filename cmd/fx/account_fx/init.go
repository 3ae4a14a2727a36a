package account_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAdminList, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAdminList() services.AdminList {
	return services.ParseAdminList(os.Getenv("ADMIN_USER_IDS"))
}

func provideAccountService(accountRepo repositories.AccountRepository, quota services.QuotaServiceInterface, adminIDs services.AdminList) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, quota, adminIDs)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
