package http

import (
	"context"

	"github.com/mrlokans/catalog/internal/entities"
)

// Each controller depends only on the store methods it uses. The sub-packages
// of internal/database implement these; see internal/interfaces.

// BookStore provides book CRUD. Missing rows are reported as
// database.ErrNotFound.
type BookStore interface {
	ListBooks(ctx context.Context, limit, offset int) ([]entities.BookDetails, error)
	GetBookByID(ctx context.Context, id uint) (*entities.BookDetails, error)
	CreateBook(ctx context.Context, book *entities.Book) (uint, error)
	UpdateBook(ctx context.Context, id uint, book *entities.Book) error
	DeleteBook(ctx context.Context, id uint) error
}

// AuthorStore lists authors.
type AuthorStore interface {
	ListAuthors(ctx context.Context) ([]entities.Author, error)
}

// GenreStore lists genres.
type GenreStore interface {
	ListGenres(ctx context.Context) ([]entities.Genre, error)
}
