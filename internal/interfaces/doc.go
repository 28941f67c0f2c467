// Package interfaces collects compile-time checks that the storage
// implementations satisfy the interfaces the HTTP layer depends on.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: Book CRUD with resolved author/genre names (internal/http/stores.go)
//   - AuthorStore: Author listing (internal/http/stores.go)
//   - GenreStore: Genre listing (internal/http/stores.go)
//
// Not-found conditions are reported as database.ErrNotFound; every other
// error is a storage failure and surfaces as HTTP 500.
//
// # Adding a New Reference Listing
//
// To expose another lookup table (e.g., publishers):
//
//  1. Add the entity in internal/entities/catalog.go and register it in
//     Database.Migrate
//
//  2. Create sub-package internal/database/publishers/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//     func (r *Repository) ListPublishers(ctx context.Context) ([]entities.Publisher, error)
//
//  3. Declare PublisherStore in internal/http/stores.go and serve it from
//     CatalogController
//
//  4. Add the compile-time check to checks.go:
//
//     var _ http.PublisherStore = (*publishers.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
package interfaces
