// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, pool settings, migrations
//	├── seed.go          # Reference authors, genres and books
//	├── errors.go        # ErrNotFound and storage error classification
//	├── books/           # Book CRUD with joined read queries
//	├── authors/         # Author listing
//	└── genres/          # Genre listing
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type bound to the shared *gorm.DB:
//
//	db, err := database.NewDatabase(cfg.Database, logger)
//
//	booksRepo := books.NewRepository(db.DB)
//	authorsRepo := authors.NewRepository(db.DB)
//
//	book, err := booksRepo.GetBookByID(ctx, 1)
//
// # Interface Implementations
//
//   - books.Repository: implements http.BookStore
//   - authors.Repository: implements http.AuthorStore
//   - genres.Repository: implements http.GenreStore
//
// Compile-time checks live in internal/interfaces.
//
// # Storage Backends
//
// SQLite is the default and is opened with foreign keys enforced on every
// pooled connection. PostgreSQL can be selected with DATABASE_DRIVER=postgres.
package database
