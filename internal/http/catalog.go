package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/metrics"
)

// CatalogController serves the read-only author and genre listings.
type CatalogController struct {
	authors  AuthorStore
	genres   GenreStore
	failures storageFailures
}

func NewCatalogController(authors AuthorStore, genres GenreStore, log *zap.Logger, m *metrics.Metrics) *CatalogController {
	return &CatalogController{
		authors:  authors,
		genres:   genres,
		failures: newStorageFailures(log, m),
	}
}

// ListAuthors returns all authors
// GET /authors
func (cc *CatalogController) ListAuthors(c *gin.Context) {
	authors, err := cc.authors.ListAuthors(c.Request.Context())
	if err != nil {
		cc.failures.respond(c, err, "list_authors")
		return
	}
	c.JSON(http.StatusOK, lo.Ternary(authors == nil, []entities.Author{}, authors))
}

// ListGenres returns all genres
// GET /genres
func (cc *CatalogController) ListGenres(c *gin.Context) {
	genres, err := cc.genres.ListGenres(c.Request.Context())
	if err != nil {
		cc.failures.respond(c, err, "list_genres")
		return
	}
	c.JSON(http.StatusOK, lo.Ternary(genres == nil, []entities.Genre{}, genres))
}
