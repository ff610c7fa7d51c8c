package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songart/internal/presentation"
)

func TestTraceID(t *testing.T) {
	e := echo.New()
	e.Use(TraceID())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen, _ = c.Get(presentation.KeyTraceID).(string)

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	header := rec.Header().Get("X-Trace-Id")
	assert.Equal(t, seen, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}
