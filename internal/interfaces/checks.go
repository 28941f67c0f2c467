package interfaces

// This file contains compile-time interface implementation checks.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/database/genres"
	"github.com/mrlokans/catalog/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookStore implementations
var _ http.BookStore = (*books.Repository)(nil)

// AuthorStore implementations
var _ http.AuthorStore = (*authors.Repository)(nil)

// GenreStore implementations
var _ http.GenreStore = (*genres.Repository)(nil)
