package http

import (
	"go.uber.org/zap"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/metrics"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Data access
	BookStore   BookStore
	AuthorStore AuthorStore
	GenreStore  GenreStore

	// Database handle for health checks
	Database *database.Database

	// Observability
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	// Cross-origin policy
	CORS config.CORS

	// Application info
	Version string
}
