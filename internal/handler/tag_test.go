package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tagbook/internal/auth"
	"github.com/pkordes/tagbook/internal/domain"
	"github.com/pkordes/tagbook/internal/handler"
	"github.com/pkordes/tagbook/internal/handler/gen"
	"github.com/pkordes/tagbook/internal/middleware"
)

// ---- mock TagServicer -------------------------------------------------------

// mockTagServicer is a test double for handler.TagServicer.
// Set only the method fields your test needs.
type mockTagServicer struct {
	list      func(ctx context.Context) ([]domain.Tag, error)
	getByName func(ctx context.Context, name string) (domain.Tag, error)
	create    func(ctx context.Context, tag domain.Tag) (domain.Tag, error)
	delete    func(ctx context.Context, name string) error
}

func (m *mockTagServicer) List(ctx context.Context) ([]domain.Tag, error) {
	return m.list(ctx)
}
func (m *mockTagServicer) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	return m.getByName(ctx, name)
}
func (m *mockTagServicer) Create(ctx context.Context, tag domain.Tag) (domain.Tag, error) {
	return m.create(ctx, tag)
}
func (m *mockTagServicer) Delete(ctx context.Context, name string) error {
	return m.delete(ctx, name)
}

// compile-time check: mockTagServicer must satisfy handler.TagServicer.
var _ handler.TagServicer = (*mockTagServicer)(nil)

// ---- helpers ---------------------------------------------------------------

var errStoreDown = errors.New("store unavailable")

// asPrincipal stands in for the authenticator: it attaches p to every request.
func asPrincipal(p auth.Principal) gen.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

// newTagHTTPHandler wires a Server around svc the same way main.go does,
// with principal u1 attached to every request.
func newTagHTTPHandler(svc handler.TagServicer) http.Handler {
	srv := handler.NewServer(svc, handler.NewTagMapper())
	return handler.NewHTTPHandler(srv, handler.Options{
		Middlewares: []gen.MiddlewareFunc{asPrincipal(auth.Principal{ID: "u1", Email: "ann@abccompany.com"})},
	})
}

func serve(h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func tagFixture(name string) domain.Tag {
	return domain.Tag{
		Name:      name,
		CreatorID: "u1",
		CreatedOn: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	msgs := make([]string, len(body.Errors))
	for i, e := range body.Errors {
		msgs[i] = e.Message
	}
	return msgs
}

// ---- GET /tags -------------------------------------------------------------

func TestListTags_200_PreservesOrder(t *testing.T) {
	svc := &mockTagServicer{
		list: func(_ context.Context) ([]domain.Tag, error) {
			return []domain.Tag{tagFixture("zeta"), tagFixture("alpha")}, nil
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodGet, "/tags", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []gen.Tag
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "zeta", body[0].Name)
	assert.Equal(t, "alpha", body[1].Name)
	assert.Equal(t, "u1", body[0].CreatorId)
}

func TestListTags_200_EmptyIsArray(t *testing.T) {
	svc := &mockTagServicer{
		list: func(_ context.Context) ([]domain.Tag, error) { return nil, nil },
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodGet, "/tags", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListTags_500_ServiceFault(t *testing.T) {
	svc := &mockTagServicer{
		list: func(_ context.Context) ([]domain.Tag, error) { return nil, errStoreDown },
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodGet, "/tags", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), errStoreDown.Error(), "fault details must not leak")
}

// ---- GET /tags/{tagName} ----------------------------------------------------

func TestGetTag_200(t *testing.T) {
	svc := &mockTagServicer{
		getByName: func(_ context.Context, name string) (domain.Tag, error) {
			assert.Equal(t, "go", name)
			return tagFixture(name), nil
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodGet, "/tags/go", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"go","creatorId":"u1","createdOn":"2025-06-01T12:00:00Z"}`, rec.Body.String())
}

func TestGetTag_NameTakenVerbatim(t *testing.T) {
	var captured string
	svc := &mockTagServicer{
		getByName: func(_ context.Context, name string) (domain.Tag, error) {
			captured = name
			return tagFixture(name), nil
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodGet, "/tags/Sample%20Name", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sample Name", captured)
}

func TestGetTag_404_EmptyBody(t *testing.T) {
	svc := &mockTagServicer{
		getByName: func(_ context.Context, _ string) (domain.Tag, error) {
			return domain.Tag{}, fmt.Errorf("wrapped: %w", domain.ErrNotFound)
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodGet, "/tags/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetTag_500_ServiceFault(t *testing.T) {
	svc := &mockTagServicer{
		getByName: func(_ context.Context, _ string) (domain.Tag, error) {
			return domain.Tag{}, errStoreDown
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodGet, "/tags/go", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ---- POST /tags ------------------------------------------------------------

func TestCreateTag_201(t *testing.T) {
	var captured domain.Tag
	svc := &mockTagServicer{
		create: func(_ context.Context, tag domain.Tag) (domain.Tag, error) {
			captured = tag
			return tag, nil
		},
	}

	before := time.Now().UTC()
	rec := serve(newTagHTTPHandler(svc), http.MethodPost, "/tags", map[string]any{"tagName": "go"})
	after := time.Now().UTC()

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "http://example.com/tags/go", rec.Header().Get("Location"))

	assert.Equal(t, "go", captured.Name)
	assert.Equal(t, "u1", captured.CreatorID, "creator comes from the principal")
	assert.Equal(t, time.UTC, captured.CreatedOn.Location())
	assert.False(t, captured.CreatedOn.Before(before))
	assert.False(t, captured.CreatedOn.After(after))

	var body gen.Tag
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "go", body.Name)
	assert.Equal(t, "u1", body.CreatorId)
	assert.True(t, captured.CreatedOn.Equal(body.CreatedOn))
}

func TestCreateTag_201_LocationEscapesName(t *testing.T) {
	svc := &mockTagServicer{
		create: func(_ context.Context, tag domain.Tag) (domain.Tag, error) { return tag, nil },
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodPost, "/tags", map[string]any{"tagName": "sample name"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "http://example.com/tags/sample%20name", rec.Header().Get("Location"))
}

func TestCreateTag_201_LocationHonoursForwardedProto(t *testing.T) {
	svc := &mockTagServicer{
		create: func(_ context.Context, tag domain.Tag) (domain.Tag, error) { return tag, nil },
	}

	req := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(`{"tagName":"go"}`))
	req.Host = "api.example.org"
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	newTagHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "https://api.example.org/tags/go", rec.Header().Get("Location"))
}

func TestCreateTag_400_NameTaken(t *testing.T) {
	svc := &mockTagServicer{
		create: func(_ context.Context, _ domain.Tag) (domain.Tag, error) {
			return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", domain.ErrConflict)
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodPost, "/tags", map[string]any{"tagName": "go"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	msgs := decodeErrors(t, rec)
	require.NotEmpty(t, msgs)
	assert.Equal(t, "Unable to create tag", msgs[0])
	assert.Contains(t, msgs, `tag "go" already exists`)
}

func TestCreateTag_400_Validation(t *testing.T) {
	svc := &mockTagServicer{
		create: func(_ context.Context, _ domain.Tag) (domain.Tag, error) {
			return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w: tag name is required", domain.ErrValidation)
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodPost, "/tags", map[string]any{"tagName": "  "})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Unable to create tag", "tag name is required"}, decodeErrors(t, rec))
}

func TestCreateTag_400_MalformedBody(t *testing.T) {
	// create is nil: the service must not be reached.
	rec := serve(newTagHTTPHandler(&mockTagServicer{}), http.MethodPost, "/tags", `{"tagName":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeErrors(t, rec))
}

func TestCreateTag_500_ServiceFault(t *testing.T) {
	svc := &mockTagServicer{
		create: func(_ context.Context, _ domain.Tag) (domain.Tag, error) {
			return domain.Tag{}, errStoreDown
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodPost, "/tags", map[string]any{"tagName": "go"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code, "faults are not reported as name collisions")
}

func TestCreateTag_500_WithoutPrincipal(t *testing.T) {
	svc := &mockTagServicer{}
	h := handler.NewHTTPHandler(handler.NewServer(svc, handler.NewTagMapper()), handler.Options{})

	rec := serve(h, http.MethodPost, "/tags", map[string]any{"tagName": "go"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ---- DELETE /tags/{tagName} -------------------------------------------------

func TestDeleteTag_204(t *testing.T) {
	svc := &mockTagServicer{
		delete: func(_ context.Context, name string) error {
			assert.Equal(t, "go", name)
			return nil
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodDelete, "/tags/go", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTag_404(t *testing.T) {
	svc := &mockTagServicer{
		delete: func(_ context.Context, _ string) error {
			return fmt.Errorf("service.TagService.Delete: %w", domain.ErrNotFound)
		},
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodDelete, "/tags/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTag_500_ServiceFault(t *testing.T) {
	svc := &mockTagServicer{
		delete: func(_ context.Context, _ string) error { return errStoreDown },
	}

	rec := serve(newTagHTTPHandler(svc), http.MethodDelete, "/tags/go", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDeleteTag_CarriesTrustedDomainScope(t *testing.T) {
	var scopes []string
	spy := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scopes, _ = r.Context().Value(gen.BearerAuthScopes).([]string)
			next.ServeHTTP(w, r)
		})
	}
	svc := &mockTagServicer{
		delete: func(_ context.Context, _ string) error { return nil },
	}
	h := handler.NewHTTPHandler(handler.NewServer(svc, handler.NewTagMapper()), handler.Options{
		Middlewares: []gen.MiddlewareFunc{spy},
	})

	rec := serve(h, http.MethodDelete, "/tags/go", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{auth.PolicyTrustedDomain}, scopes)
}

func TestCreateTag_413_StreamedBodyTooLarge(t *testing.T) {
	// create is nil: the service must not be reached.
	h := middleware.NewMaxBodySizeHandler(16)(newTagHTTPHandler(&mockTagServicer{}))

	req := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(`{"tagName":"`+strings.Repeat("x", 64)+`"}`))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, []string{"request body too large"}, decodeErrors(t, rec))
}
