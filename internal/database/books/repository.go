// Package books provides database operations for the books table.
//
// Read queries join books against authors and genres, so a book whose author
// or genre cannot be resolved never appears in results even though the row
// still exists.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(ctx, 1)
package books

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// detailsQuery selects books with author and genre names resolved.
func detailsQuery() sq.SelectBuilder {
	return sq.Select(
		"b.id AS id",
		"b.title AS title",
		"a.name AS author",
		"g.name AS genre",
		"b.pages AS pages",
		"b.published_date AS published_date",
	).
		From("books b").
		Join("authors a ON a.id = b.author_id").
		Join("genres g ON g.id = b.genre_id")
}

// ListBooks returns one page of books ordered by id.
func (r *Repository) ListBooks(ctx context.Context, limit, offset int) ([]entities.BookDetails, error) {
	query, args, err := detailsQuery().
		OrderBy("b.id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	books := []entities.BookDetails{}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// GetBookByID returns the book with the given id, or database.ErrNotFound.
func (r *Repository) GetBookByID(ctx context.Context, id uint) (*entities.BookDetails, error) {
	query, args, err := detailsQuery().
		Where(sq.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build book query: %w", err)
	}

	var books []entities.BookDetails
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&books).Error; err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, database.ErrNotFound
	}
	return &books[0], nil
}

// CreateBook inserts a book and returns its generated id.
func (r *Repository) CreateBook(ctx context.Context, book *entities.Book) (uint, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(book).Error; err != nil {
		return 0, err
	}
	return book.ID, nil
}

// UpdateBook overwrites all writable columns of the book with the given id.
func (r *Repository) UpdateBook(ctx context.Context, id uint, book *entities.Book) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Book{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":          book.Title,
			"author_id":      book.AuthorID,
			"genre_id":       book.GenreID,
			"pages":          book.Pages,
			"published_date": book.PublishedDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// DeleteBook removes the book with the given id.
func (r *Repository) DeleteBook(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
