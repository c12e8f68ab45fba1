package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tagbook/internal/handler/gen"
	"github.com/pkordes/tagbook/internal/middleware"
)

// drainBody reads the full request body the way a JSON-decoding handler
// would, answering 413 when MaxBytesReader cuts it off.
var drainBody = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, err := io.ReadAll(r.Body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySizeHandler(t *testing.T) {
	const limit = 100

	tests := []struct {
		name          string
		size          int
		contentLength int64 // -1 means unknown length
		want          int
	}{
		{name: "under the limit", size: 50, contentLength: 50, want: http.StatusOK},
		{name: "exactly the limit", size: limit, contentLength: limit, want: http.StatusOK},
		{name: "declared length over the limit", size: 200, contentLength: 200, want: http.StatusRequestEntityTooLarge},
		{name: "streamed body over the limit", size: 200, contentLength: -1, want: http.StatusRequestEntityTooLarge},
		{name: "streamed body under the limit", size: 20, contentLength: -1, want: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.NewMaxBodySizeHandler(limit)(drainBody)

			req := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(strings.Repeat("x", tc.size)))
			req.ContentLength = tc.contentLength
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

// A declared oversize body is refused before the next handler runs, with the
// API's error envelope.
func TestMaxBodySizeHandler_RejectsEarlyWithErrorBody(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { reached = true })
	h := middleware.NewMaxBodySizeHandler(10)(next)

	req := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(`{"tagName":"far-too-long"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, reached)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "request body too large", body.Errors[0].Message)
}
