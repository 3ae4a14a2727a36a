package services

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
)

type mockQuotaService struct {
	consumeFn   func(ctx context.Context, userID string) (bool, error)
	remainingFn func(ctx context.Context, userID string) (int, error)
}

func (m *mockQuotaService) Consume(ctx context.Context, userID string) (bool, error) {
	return m.consumeFn(ctx, userID)
}

func (m *mockQuotaService) Remaining(ctx context.Context, userID string) (int, error) {
	return m.remainingFn(ctx, userID)
}

type mockAccountRepo struct {
	insertFn       func(ctx context.Context, account *db_models.Account) error
	findByIdFn     func(ctx context.Context, id string) (*db_models.Account, error)
	findByEmailFn  func(ctx context.Context, email string) (*db_models.Account, error)
	setProExpiryFn func(ctx context.Context, accountID uuid.UUID, expiresAt int64) error
}

func (m *mockAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	return m.insertFn(ctx, account)
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return m.findByIdFn(ctx, id)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockAccountRepo) SetProExpiry(ctx context.Context, accountID uuid.UUID, expiresAt int64) error {
	return m.setProExpiryFn(ctx, accountID, expiresAt)
}

type mockQuotaRepo struct {
	consumeTokenFn func(ctx context.Context, userID, day string, capacity int) (bool, error)
	usedTodayFn    func(ctx context.Context, userID, day string) (int, error)
}

func (m *mockQuotaRepo) ConsumeToken(ctx context.Context, userID, day string, capacity int) (bool, error) {
	return m.consumeTokenFn(ctx, userID, day, capacity)
}

func (m *mockQuotaRepo) UsedToday(ctx context.Context, userID, day string) (int, error) {
	return m.usedTodayFn(ctx, userID, day)
}

type mockGeocoder struct {
	lookupFn func(ctx context.Context, query string) (*response_models.GeoCoordinates, error)
}

func (m *mockGeocoder) Lookup(ctx context.Context, query string) (*response_models.GeoCoordinates, error) {
	return m.lookupFn(ctx, query)
}

type mockGenerator struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
	calls      int
}

func (m *mockGenerator) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	m.calls++
	return m.generateFn(ctx, prompt)
}

type mockGate struct {
	authorizeFn func(ctx context.Context, userID string) error
}

func (m *mockGate) Authorize(ctx context.Context, userID string) error {
	return m.authorizeFn(ctx, userID)
}

type mockEnricher struct {
	enrichFn func(ctx context.Context, trip *response_models.GeneratedTrip, destinationHint string)
}

func (m *mockEnricher) EnrichTrip(ctx context.Context, trip *response_models.GeneratedTrip, destinationHint string) {
	if m.enrichFn != nil {
		m.enrichFn(ctx, trip, destinationHint)
	}
}
