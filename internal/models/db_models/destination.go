package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Destination is a curated catalog entry used by the inspire search. The
// embedding is computed from name + description + tags at seeding time.
type Destination struct {
	BaseModel
	Name        string `gorm:"index"`
	Country     string
	Description string
	ImageQuery  string
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Featured    bool            `gorm:"index"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
}
