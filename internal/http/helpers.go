package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/metrics"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"` // additional context (missing fields, etc.)
}

// SuccessResponse is a standard success response for mutations without a body.
type SuccessResponse struct {
	Message string `json:"message"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string, details any) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Details: details})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// storageFailures reports storage errors to the log and metrics, then sends
// a 500 carrying the driver's message unchanged.
type storageFailures struct {
	log     *zap.Logger
	metrics *metrics.Metrics
}

func newStorageFailures(log *zap.Logger, m *metrics.Metrics) storageFailures {
	if log == nil {
		log = zap.NewNop()
	}
	return storageFailures{log: log, metrics: m}
}

func (f storageFailures) respond(c *gin.Context, err error, operation string) {
	class := database.Classify(err)
	if f.metrics != nil {
		f.metrics.StorageError(operation, string(class))
	}
	f.log.Error("Storage operation failed",
		zap.String("operation", operation),
		zap.String("class", string(class)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(ContextKeyRequestID)),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts an unsigned integer ID from URL parameters. Malformed
// values get a 400; integers too large to be a stored row id get a 404 for
// resource. Returns the parsed ID, or 0, false after responding.
func parseIDParam(c *gin.Context, paramName, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange), err == nil && id > math.MaxInt64:
		respondNotFound(c, resource)
		return 0, false
	case err != nil:
		respondBadRequest(c, "invalid "+paramName, nil)
		return 0, false
	}
	return uint(id), true
}
