package database

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/catalog/internal/entities"
)

type seedBook struct {
	Title         string
	Author        string
	Genre         string
	Pages         int
	PublishedDate string
}

var defaultAuthors = []entities.Author{
	{Name: "George Orwell"},
	{Name: "Aldous Huxley"},
	{Name: "J.R.R. Tolkien"},
	{Name: "Harper Lee"},
}

var defaultGenres = []entities.Genre{
	{Name: "Dystopian", Description: lo.ToPtr("Fiction set in oppressive or degraded imagined societies")},
	{Name: "Fantasy", Description: lo.ToPtr("Fiction with magical or supernatural elements")},
	{Name: "Classic", Description: lo.ToPtr("Works of lasting literary merit")},
}

// Order matters: on an empty database "1984" gets id 1.
var defaultBooks = []seedBook{
	{Title: "1984", Author: "George Orwell", Genre: "Dystopian", Pages: 328, PublishedDate: "1949-06-08"},
	{Title: "Brave New World", Author: "Aldous Huxley", Genre: "Dystopian", Pages: 311, PublishedDate: "1932-08-30"},
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", Pages: 310, PublishedDate: "1937-09-21"},
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Classic", Pages: 281, PublishedDate: "1960-07-11"},
}

// Seed inserts the reference authors, genres and books in one transaction.
// Authors and genres that already exist are skipped by their unique name;
// books are only seeded into an empty books table.
func (d *Database) Seed(ctx context.Context) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, author := range defaultAuthors {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&author).Error; err != nil {
				return fmt.Errorf("failed to seed author %s: %w", author.Name, err)
			}
		}
		for _, genre := range defaultGenres {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&genre).Error; err != nil {
				return fmt.Errorf("failed to seed genre %s: %w", genre.Name, err)
			}
		}

		var count int64
		if err := tx.Model(&entities.Book{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count books: %w", err)
		}
		if count > 0 {
			d.log.Debug("Books table not empty, skipping book seed", zap.Int64("books", count))
			return nil
		}

		var authors []entities.Author
		if err := tx.Find(&authors).Error; err != nil {
			return fmt.Errorf("failed to load authors: %w", err)
		}
		var genres []entities.Genre
		if err := tx.Find(&genres).Error; err != nil {
			return fmt.Errorf("failed to load genres: %w", err)
		}
		authorIDs := lo.Associate(authors, func(a entities.Author) (string, uint) { return a.Name, a.ID })
		genreIDs := lo.Associate(genres, func(g entities.Genre) (string, uint) { return g.Name, g.ID })

		for _, sb := range defaultBooks {
			authorID, ok := authorIDs[sb.Author]
			if !ok {
				return fmt.Errorf("seed author %q is missing", sb.Author)
			}
			genreID, ok := genreIDs[sb.Genre]
			if !ok {
				return fmt.Errorf("seed genre %q is missing", sb.Genre)
			}

			book := entities.Book{
				Title:         sb.Title,
				AuthorID:      lo.ToPtr(authorID),
				GenreID:       lo.ToPtr(genreID),
				Pages:         sb.Pages,
				PublishedDate: sb.PublishedDate,
			}
			if err := tx.Omit(clause.Associations).Create(&book).Error; err != nil {
				return fmt.Errorf("failed to seed book %s: %w", sb.Title, err)
			}
			d.log.Info("Seeded book", zap.String("title", book.Title), zap.Uint("id", book.ID))
		}
		return nil
	})
}
