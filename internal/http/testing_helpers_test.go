package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/database/genres"
	"github.com/mrlokans/catalog/internal/metrics"
)

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "api.db"),
		LogLevel: "silent",
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestRouter builds the full router over a freshly seeded database.
func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database, *metrics.Metrics) {
	t.Helper()
	db := setupTestDB(t)
	m := metrics.New()

	router, err := NewRouter(RouterConfig{
		BookStore:   books.NewRepository(db.DB),
		AuthorStore: authors.NewRepository(db.DB),
		GenreStore:  genres.NewRepository(db.DB),
		Database:    db,
		Logger:      zap.NewNop(),
		Metrics:     m,
		Version:     "test",
	})
	require.NoError(t, err)
	return router, db, m
}

// setupStoreRouter builds the full router over the given stores, without a database.
func setupStoreRouter(t *testing.T, bookStore BookStore, authorStore AuthorStore, genreStore GenreStore) (*gin.Engine, *metrics.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := metrics.New()

	router, err := NewRouter(RouterConfig{
		BookStore:   bookStore,
		AuthorStore: authorStore,
		GenreStore:  genreStore,
		Logger:      zap.NewNop(),
		Metrics:     m,
	})
	require.NoError(t, err)
	return router, m
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func scrapeMetrics(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	m.Handler().ServeHTTP(w, req)
	return w.Body.String()
}

func jsonReader(s string) *strings.Reader {
	return strings.NewReader(s)
}
