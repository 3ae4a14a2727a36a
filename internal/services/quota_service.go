package services

import (
	"context"
	"time"

	"voyago/internal/repositories"
)

const DefaultDailyTripCap = 3

// QuotaServiceInterface is the token-bucket quota check: fixed capacity,
// refilled once per UTC calendar day by virtue of the day-keyed counter.
type QuotaServiceInterface interface {
	// Consume takes one token from the caller's daily allotment and reports
	// whether the request is allowed.
	Consume(ctx context.Context, userID string) (bool, error)
	// Remaining reports tokens left today without consuming any.
	Remaining(ctx context.Context, userID string) (int, error)
}

type QuotaService struct {
	repo     repositories.QuotaRepository
	capacity int
	now      func() time.Time
}

func NewQuotaService(repo repositories.QuotaRepository, capacity int) QuotaServiceInterface {
	if capacity <= 0 {
		capacity = DefaultDailyTripCap
	}
	return &QuotaService{
		repo:     repo,
		capacity: capacity,
		now:      time.Now,
	}
}

func (q *QuotaService) dayKey() string {
	return q.now().UTC().Format("2006-01-02")
}

func (q *QuotaService) Consume(ctx context.Context, userID string) (bool, error) {
	return q.repo.ConsumeToken(ctx, userID, q.dayKey(), q.capacity)
}

func (q *QuotaService) Remaining(ctx context.Context, userID string) (int, error) {
	used, err := q.repo.UsedToday(ctx, userID, q.dayKey())
	if err != nil {
		return 0, err
	}
	remaining := q.capacity - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
