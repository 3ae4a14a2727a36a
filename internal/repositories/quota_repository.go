package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyago/internal/models/db_models"
)

// QuotaRepository owns the per-identity daily counter. ConsumeToken is the
// atomic check-and-consume the access gate relies on; callers never read the
// counter and then write it back.
type QuotaRepository interface {
	ConsumeToken(ctx context.Context, userID, day string, capacity int) (bool, error)
	UsedToday(ctx context.Context, userID, day string) (int, error)
}

type quotaRepository struct {
	db *gorm.DB
}

func NewQuotaRepository(db *gorm.DB) QuotaRepository {
	return &quotaRepository{
		db: db,
	}
}

func (q *quotaRepository) ConsumeToken(ctx context.Context, userID, day string, capacity int) (bool, error) {
	allowed := false

	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter db_models.QuotaCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&counter, "user_id = ? AND day = ?", userID, day).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			allowed = true
			return tx.Create(&db_models.QuotaCounter{
				UserID: userID,
				Day:    day,
				Used:   1,
			}).Error
		}
		if err != nil {
			return err
		}

		if counter.Used >= capacity {
			return nil
		}

		allowed = true
		return tx.Model(&counter).
			Where("user_id = ? AND day = ?", userID, day).
			Update("used", gorm.Expr("used + 1")).Error
	})
	if err != nil {
		return false, err
	}

	return allowed, nil
}

func (q *quotaRepository) UsedToday(ctx context.Context, userID, day string) (int, error) {
	var counter db_models.QuotaCounter
	err := q.db.WithContext(ctx).First(&counter, "user_id = ? AND day = ?", userID, day).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return counter.Used, nil
}
