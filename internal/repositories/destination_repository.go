package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type DestinationRepository interface {
	ListFeatured(ctx context.Context, limit int) ([]db_models.Destination, error)
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error)
	Create(ctx context.Context, destination *db_models.Destination) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{
		db: db,
	}
}

func (d *destinationRepository) ListFeatured(ctx context.Context, limit int) ([]db_models.Destination, error) {
	var results []db_models.Destination
	err := d.db.WithContext(ctx).
		Where("featured = TRUE").
		Order("name").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (d *destinationRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error) {
	var results []db_models.Destination

	query := `
        SELECT *
        FROM destinations
        WHERE deleted_at IS NULL
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := d.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (d *destinationRepository) Create(ctx context.Context, destination *db_models.Destination) error {
	return d.db.WithContext(ctx).Create(destination).Error
}
