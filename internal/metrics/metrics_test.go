package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("GET", "/books/:id", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", "/books/:id", 200, 20*time.Millisecond)
	m.ObserveRequest("GET", "/books/:id", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/books/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/books/:id", "404")))
}

func TestMetrics_StorageError(t *testing.T) {
	m := New()

	m.StorageError("create_book", "foreign_key")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storageErrors.WithLabelValues("create_book", "foreign_key")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest("POST", "/books", 201, time.Millisecond)

	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	m.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `catalog_http_requests_total{method="POST",route="/books",status="201"} 1`)
}
