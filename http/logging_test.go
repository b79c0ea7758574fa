package http_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	dirhttp "github.com/srashe/dirindex/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_AttachesRequestID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = dirhttp.RequestID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := dirhttp.RequestLogger(logger)(inner)

	req := httptest.NewRequest("GET", "/docs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestRequestLogger_LogsStatusAndBytes(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "hello")
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	handler := dirhttp.RequestLogger(logger)(inner)

	req := httptest.NewRequest("GET", "/docs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	line := buf.String()
	assert.Contains(t, line, "msg=request")
	assert.Contains(t, line, "method=GET")
	assert.Contains(t, line, "path=/docs")
	assert.Contains(t, line, "status=200")
	assert.Contains(t, line, "bytes=5")
	assert.Contains(t, line, "id=")
}

func TestRequestID_WithoutMiddleware(t *testing.T) {
	assert.Empty(t, dirhttp.RequestID(context.Background()))
}
