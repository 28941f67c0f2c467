package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/catalog/internal/metrics"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	registerValidation()

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := cfg.Metrics
	if m == nil {
		m = metrics.New()
	}

	corsCfg, err := NewCORSConfig(cfg.CORS)
	if err != nil {
		return nil, fmt.Errorf("invalid CORS configuration: %w", err)
	}

	router := gin.New()
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(RequestIDMiddleware())
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(MetricsMiddleware(m))
	router.Use(cors.New(corsCfg))

	books := NewBooksController(cfg.BookStore, logger, m)
	catalog := NewCatalogController(cfg.AuthorStore, cfg.GenreStore, logger, m)
	health := NewHealthController(cfg.Database, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Books API endpoints
	router.GET("/books", books.ListBooks)
	router.GET("/books/:id", books.GetBook)
	router.POST("/books", books.CreateBook)
	router.PUT("/books/:id", books.UpdateBook)
	router.DELETE("/books/:id", books.DeleteBook)

	// Reference data endpoints
	router.GET("/authors", catalog.ListAuthors)
	router.GET("/genres", catalog.ListGenres)

	return router, nil
}
