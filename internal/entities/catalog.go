package entities

// Author is a catalog author. Authors are only created by seeding.
type Author struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Genre is a catalog genre. Genres are only created by seeding.
type Genre struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Description *string `json:"description"`
}

// Book is the stored form of a book row. AuthorID and GenreID are nullable in
// the schema; the API always sets them.
type Book struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Title         string  `gorm:"not null" json:"title"`
	AuthorID      *uint   `gorm:"index" json:"authorid"`
	Author        *Author `gorm:"foreignKey:AuthorID" json:"-"`
	GenreID       *uint   `gorm:"index" json:"genreid"`
	Genre         *Genre  `gorm:"foreignKey:GenreID" json:"-"`
	Pages         int     `json:"pages"`
	PublishedDate string  `gorm:"size:10" json:"publishedDate"` // YYYY-MM-DD
}

// BookDetails is the read model of a book with author and genre resolved to
// their names. Only books whose author and genre both exist have details.
type BookDetails struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	Pages         int    `json:"pages"`
	PublishedDate string `json:"publishedDate"`
}
