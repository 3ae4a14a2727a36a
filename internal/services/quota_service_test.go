package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaServiceUsesUTCDayKey(t *testing.T) {
	var gotDay string
	repo := &mockQuotaRepo{
		consumeTokenFn: func(ctx context.Context, userID, day string, capacity int) (bool, error) {
			gotDay = day
			return true, nil
		},
	}
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*3600)
	svc := &QuotaService{
		repo:     repo,
		capacity: 3,
		now: func() time.Time {
			return time.Date(2026, 8, 27, 23, 30, 0, 0, loc)
		},
	}

	allowed, err := svc.Consume(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, "2026-08-28", gotDay)
}

func TestQuotaServicePassesCapacityToRepo(t *testing.T) {
	var gotCapacity int
	repo := &mockQuotaRepo{
		consumeTokenFn: func(ctx context.Context, userID, day string, capacity int) (bool, error) {
			gotCapacity = capacity
			return false, nil
		},
	}
	svc := NewQuotaService(repo, 5)

	allowed, err := svc.Consume(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 5, gotCapacity)
}

func TestQuotaServiceDefaultsCapacity(t *testing.T) {
	var gotCapacity int
	repo := &mockQuotaRepo{
		consumeTokenFn: func(ctx context.Context, userID, day string, capacity int) (bool, error) {
			gotCapacity = capacity
			return true, nil
		},
	}
	svc := NewQuotaService(repo, 0)

	_, err := svc.Consume(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, DefaultDailyTripCap, gotCapacity)
}

func TestQuotaServiceRemainingClampsAtZero(t *testing.T) {
	cases := map[string]struct {
		used int
		want int
	}{
		"unused":    {used: 0, want: 3},
		"partial":   {used: 2, want: 1},
		"exhausted": {used: 3, want: 0},
		"overshoot": {used: 7, want: 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &mockQuotaRepo{
				usedTodayFn: func(ctx context.Context, userID, day string) (int, error) {
					return tc.used, nil
				},
			}
			svc := NewQuotaService(repo, 3)

			remaining, err := svc.Remaining(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, remaining)
		})
	}
}

func TestQuotaServiceRemainingPropagatesError(t *testing.T) {
	repo := &mockQuotaRepo{
		usedTodayFn: func(ctx context.Context, userID, day string) (int, error) {
			return 0, errors.New("db down")
		},
	}
	svc := NewQuotaService(repo, 3)

	_, err := svc.Remaining(context.Background(), "user-1")
	assert.Error(t, err)
}
