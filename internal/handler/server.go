// Package handler implements the HTTP handlers for the Tagbook API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (health.go, tag.go) but share the
// Server struct so they can reach its collaborators.
package handler

import (
	"context"

	"github.com/pkordes/tagbook/internal/domain"
	"github.com/pkordes/tagbook/internal/handler/gen"
)

// TagServicer is the persistence collaborator the tag resource delegates to.
// Defined here, in the consumer package, so handler tests can inject a mock
// without touching the database or service layer.
type TagServicer interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByName(ctx context.Context, name string) (domain.Tag, error)
	Create(ctx context.Context, tag domain.Tag) (domain.Tag, error)
	Delete(ctx context.Context, name string) error
}

// TagMapper converts domain tags into their wire representation.
// Implementations must be pure.
type TagMapper interface {
	ToResponse(t domain.Tag) gen.Tag
	ToResponses(ts []domain.Tag) []gen.Tag
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Its collaborators are fixed at construction; Server holds no other state
// and is safe for concurrent requests.
type Server struct {
	tags   TagServicer
	mapper TagMapper
}

// NewServer constructs the Server with all its dependencies.
func NewServer(tags TagServicer, mapper TagMapper) *Server {
	return &Server{tags: tags, mapper: mapper}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}
