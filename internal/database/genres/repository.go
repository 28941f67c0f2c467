// Package genres provides read access to the genres table.
package genres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListGenres returns every genre ordered by id.
func (r *Repository) ListGenres(ctx context.Context) ([]entities.Genre, error) {
	genres := []entities.Genre{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&genres).Error
	return genres, err
}
