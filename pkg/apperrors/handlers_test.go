package apperrors_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"jobstreet_backend/internal/logger"
	"jobstreet_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext(t *testing.T, requestID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	req := httptest.NewRequest("GET", "/", nil)
	if requestID != "" {
		req = req.WithContext(logger.WithRequestID(req.Context(), requestID))
	}
	c.Request = req
	return c, rec
}

func TestHandleError_UnexpectedErrorEnvelope(t *testing.T) {
	c, rec := newErrorContext(t, "")

	apperrors.HandleError(c, errors.New("boom"))

	require.Equal(t, 500, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, string(apperrors.CodeInternalError), body["code"])
}

func TestHandleError_ServerErrorLogsStructured(t *testing.T) {
	// Point the logger at a pipe so the log line can be inspected.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	logger.Init("production")
	os.Stdout = stdout
	t.Cleanup(func() { logger.Init("development") })

	c, rec := newErrorContext(t, "req-123")
	apperrors.HandleError(c, errors.New("connection refused"))

	require.NoError(t, w.Close())
	logged, err := io.ReadAll(r)
	require.NoError(t, err)

	require.Equal(t, 500, rec.Code)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logged, &entry))
	assert.Equal(t, "Server error", entry["msg"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Contains(t, entry["error"], "connection refused")
}

func TestHandleError_ServerErrorWithoutCause(t *testing.T) {
	c, rec := newErrorContext(t, "")

	// A 5xx AppError with no wrapped cause must not panic while logging.
	appErr := apperrors.New(apperrors.CodeDatabaseError, "storage", "Database operation failed", 500)
	apperrors.HandleError(c, appErr)

	require.Equal(t, 500, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(apperrors.CodeDatabaseError), body["code"])
}
