// Package authors provides read access to the authors table.
package authors

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAuthors returns every author ordered by id.
func (r *Repository) ListAuthors(ctx context.Context) ([]entities.Author, error) {
	authors := []entities.Author{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&authors).Error
	return authors, err
}
