package services

import (
	"context"
	"log"
	"time"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetStatus(ctx context.Context, userID string) (*response_models.UserStatus, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	quota       QuotaServiceInterface
	adminIDs    map[string]struct{}
}

func NewAccountService(accountRepo repositories.AccountRepository, quota QuotaServiceInterface, adminIDs []string) AccountServiceInterface {
	ids := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		if id != "" {
			ids[id] = struct{}{}
		}
	}
	return &AccountService{
		accountRepo: accountRepo,
		quota:       quota,
		adminIDs:    ids,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// GetStatus reports the flags the client meter renders: admin, active day
// pass, and how many free generations remain today.
func (a *AccountService) GetStatus(ctx context.Context, userID string) (*response_models.UserStatus, error) {
	if userID == "" {
		return &response_models.UserStatus{}, nil
	}

	status := &response_models.UserStatus{IsAuthenticated: true}

	if _, ok := a.adminIDs[userID]; ok {
		status.IsAdmin = true
	}

	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account != nil && account.ProExpiresAt > time.Now().Unix() {
		status.IsPro = true
	}

	remaining, err := a.quota.Remaining(ctx, userID)
	if err != nil {
		// The meter is cosmetic; show zero rather than failing the call.
		log.Printf("quota remaining lookup failed for user %s: %v", userID, err)
		remaining = 0
	}
	status.TripsRemainingToday = remaining

	return status, nil
}
