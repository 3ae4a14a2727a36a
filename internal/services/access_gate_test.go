package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

func denyAllQuota() *mockQuotaService {
	return &mockQuotaService{
		consumeFn: func(ctx context.Context, userID string) (bool, error) {
			return false, nil
		},
	}
}

func noAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{
		findByIdFn: func(ctx context.Context, id string) (*db_models.Account, error) {
			return nil, nil
		},
	}
}

func TestAuthorizeRejectsAnonymousCaller(t *testing.T) {
	gate := NewAccessGate(denyAllQuota(), noAccountRepo(), nil)

	err := gate.Authorize(context.Background(), "")

	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestAuthorizeAdminBypassesQuota(t *testing.T) {
	gate := NewAccessGate(denyAllQuota(), noAccountRepo(), []string{"admin-1", "admin-2"})

	assert.NoError(t, gate.Authorize(context.Background(), "admin-2"))
}

func TestAuthorizeActiveDayPassBypassesQuota(t *testing.T) {
	repo := &mockAccountRepo{
		findByIdFn: func(ctx context.Context, id string) (*db_models.Account, error) {
			return &db_models.Account{ProExpiresAt: time.Now().Add(time.Hour).Unix()}, nil
		},
	}
	gate := NewAccessGate(denyAllQuota(), repo, nil)

	assert.NoError(t, gate.Authorize(context.Background(), "user-1"))
}

func TestAuthorizeExpiredDayPassHitsQuota(t *testing.T) {
	repo := &mockAccountRepo{
		findByIdFn: func(ctx context.Context, id string) (*db_models.Account, error) {
			return &db_models.Account{ProExpiresAt: time.Now().Add(-time.Hour).Unix()}, nil
		},
	}
	gate := NewAccessGate(denyAllQuota(), repo, nil)

	err := gate.Authorize(context.Background(), "user-1")

	assert.ErrorIs(t, err, utils.ErrRateLimited)
}

func TestAuthorizeDeniedWhenQuotaExhausted(t *testing.T) {
	gate := NewAccessGate(denyAllQuota(), noAccountRepo(), nil)

	err := gate.Authorize(context.Background(), "user-1")

	assert.ErrorIs(t, err, utils.ErrRateLimited)
}

func TestAuthorizeAllowedWithinQuota(t *testing.T) {
	quota := &mockQuotaService{
		consumeFn: func(ctx context.Context, userID string) (bool, error) {
			return true, nil
		},
	}
	gate := NewAccessGate(quota, noAccountRepo(), nil)

	assert.NoError(t, gate.Authorize(context.Background(), "user-1"))
}

func TestAuthorizeFailsOpenOnQuotaError(t *testing.T) {
	quota := &mockQuotaService{
		consumeFn: func(ctx context.Context, userID string) (bool, error) {
			return false, errors.New("quota store unreachable")
		},
	}
	gate := NewAccessGate(quota, noAccountRepo(), nil)

	assert.NoError(t, gate.Authorize(context.Background(), "user-1"))
}
