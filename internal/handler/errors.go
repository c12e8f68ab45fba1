package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/tagbook/internal/domain"
	"github.com/pkordes/tagbook/internal/handler/gen"
)

// createFailedMessage is always the first entry of a rejected create's error list.
const createFailedMessage = "Unable to create tag"

// errorBody builds the {errors:[{message}]} envelope.
func errorBody(messages ...string) gen.ErrorResponse {
	body := gen.ErrorResponse{Errors: make([]gen.ErrorModel, 0, len(messages))}
	for _, m := range messages {
		body.Errors = append(body.Errors, gen.ErrorModel{Message: m})
	}
	return body
}

// createFailedBody explains a rejected create. The generic message comes
// first; a second entry says why when the cause is known.
func createFailedBody(name string, err error) gen.ErrorResponse {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return errorBody(createFailedMessage, "tag "+strconv.Quote(name)+" already exists")
	case errors.Is(err, domain.ErrValidation):
		return errorBody(createFailedMessage, unwrapMessage(err))
	}
	return errorBody(createFailedMessage)
}

// unwrapMessage extracts the human-readable part of a wrapped validation error.
// e.g. "service.TagService.Create: validation error: tag name is required" → "tag name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// requestErrorHandler answers bodies and parameters the generated code could
// not decode with 400 and the standard error envelope. A body cut off by
// middleware.NewMaxBodySizeHandler answers 413.
func requestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("request body too large"))
		return
	}
	writeJSON(w, http.StatusBadRequest, errorBody("invalid request: "+err.Error()))
}

// responseErrorHandler turns unhandled faults into a generic 500. The cause is
// logged, never sent to the client.
func responseErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "unhandled error",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		writeJSON(w, http.StatusInternalServerError, errorBody(http.StatusText(http.StatusInternalServerError)))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
