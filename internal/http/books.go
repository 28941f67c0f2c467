package http

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/metrics"
)

const (
	msgMissingFields     = "Missing required fields"
	msgInvalidBody       = "invalid request body"
	msgInvalidPagination = "invalid pagination parameters"
	msgBookUpdated       = "Book updated successfully"
	msgBookDeleted       = "Book deleted successfully"
)

// bookFields are the JSON names of BookRequest, in declaration order.
var bookFields = []string{"title", "authorid", "genreid", "pages", "publishedDate"}

// BookRequest is the payload of POST /books and PUT /books/:id. Every field
// must be present and non-zero.
type BookRequest struct {
	Title         string `json:"title" binding:"required"`
	AuthorID      uint   `json:"authorid" binding:"required"`
	GenreID       uint   `json:"genreid" binding:"required"`
	Pages         int    `json:"pages" binding:"required"`
	PublishedDate string `json:"publishedDate" binding:"required"`
}

func (r BookRequest) toEntity() *entities.Book {
	return &entities.Book{
		Title:         r.Title,
		AuthorID:      lo.ToPtr(r.AuthorID),
		GenreID:       lo.ToPtr(r.GenreID),
		Pages:         r.Pages,
		PublishedDate: r.PublishedDate,
	}
}

// ListBooksQuery holds the pagination parameters of GET /books.
type ListBooksQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// inRange reports whether the page's offset fits in an int.
func (q ListBooksQuery) inRange() bool {
	return q.Page-1 <= math.MaxInt/q.Limit
}

// Offset is the number of rows skipped before the requested page.
func (q ListBooksQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type BooksController struct {
	store    BookStore
	failures storageFailures
}

func NewBooksController(store BookStore, log *zap.Logger, m *metrics.Metrics) *BooksController {
	return &BooksController{
		store:    store,
		failures: newStorageFailures(log, m),
	}
}

// ListBooks returns one page of books.
// GET /books?page=1&limit=10
func (bc *BooksController) ListBooks(c *gin.Context) {
	var query ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, msgInvalidPagination, invalidFields(err))
		return
	}
	if !query.inRange() {
		respondBadRequest(c, msgInvalidPagination, []string{"page"})
		return
	}

	books, err := bc.store.ListBooks(c.Request.Context(), query.Limit, query.Offset())
	if err != nil {
		bc.failures.respond(c, err, "list_books")
		return
	}
	c.JSON(http.StatusOK, lo.Ternary(books == nil, []entities.BookDetails{}, books))
}

// GetBook returns a single book with author and genre names.
// GET /books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Book")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "Book")
		return
	}
	if err != nil {
		bc.failures.respond(c, err, "get_book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook inserts a book and returns its id.
// POST /books
func (bc *BooksController) CreateBook(c *gin.Context) {
	req, ok := bindBookRequest(c)
	if !ok {
		return
	}

	id, err := bc.store.CreateBook(c.Request.Context(), req.toEntity())
	if err != nil {
		bc.failures.respond(c, err, "create_book")
		return
	}
	respondCreated(c, gin.H{"bookid": id})
}

// UpdateBook replaces every writable field of a book.
// PUT /books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Book")
	if !ok {
		return
	}
	req, ok := bindBookRequest(c)
	if !ok {
		return
	}

	err := bc.store.UpdateBook(c.Request.Context(), id, req.toEntity())
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "Book")
		return
	}
	if err != nil {
		bc.failures.respond(c, err, "update_book")
		return
	}
	respondSuccess(c, msgBookUpdated)
}

// DeleteBook removes a book.
// DELETE /books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Book")
	if !ok {
		return
	}

	err := bc.store.DeleteBook(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "Book")
		return
	}
	if err != nil {
		bc.failures.respond(c, err, "delete_book")
		return
	}
	respondSuccess(c, msgBookDeleted)
}

// bindBookRequest parses and validates the JSON body, responding with 400 on
// failure.
func bindBookRequest(c *gin.Context) (BookRequest, bool) {
	var req BookRequest
	err := c.ShouldBindJSON(&req)
	switch {
	case err == nil:
		return req, true
	case isEmptyBody(err):
		respondBadRequest(c, msgMissingFields, bookFields)
	case invalidFields(err) != nil:
		respondBadRequest(c, msgMissingFields, invalidFields(err))
	default:
		respondBadRequest(c, msgInvalidBody, nil)
	}
	return req, false
}
