package handler

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/pkordes/tagbook/internal/auth"
	"github.com/pkordes/tagbook/internal/domain"
	"github.com/pkordes/tagbook/internal/handler/gen"
)

// tagRoute is the GET route template; Location headers substitute the name
// into its placeholder.
const tagRoute = "/tags/{tagName}"

// ListTags handles GET /tags.
// Tags are returned in the order the service yields them.
func (s *Server) ListTags(ctx context.Context, _ gen.ListTagsRequestObject) (gen.ListTagsResponseObject, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListTags200JSONResponse(s.mapper.ToResponses(tags)), nil
}

// GetTag handles GET /tags/{tagName}. The name is matched verbatim.
func (s *Server) GetTag(ctx context.Context, req gen.GetTagRequestObject) (gen.GetTagResponseObject, error) {
	tag, err := s.tags.GetByName(ctx, req.TagName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTag404Response{}, nil
		}
		return nil, err
	}
	return gen.GetTag200JSONResponse(s.mapper.ToResponse(tag)), nil
}

// CreateTag handles POST /tags.
// The creator is the authenticated principal and createdOn is now (UTC).
// Name collisions and validation failures answer 400; any other service
// error propagates as a 500.
func (s *Server) CreateTag(ctx context.Context, req gen.CreateTagRequestObject) (gen.CreateTagResponseObject, error) {
	principal, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return nil, errors.New("handler.CreateTag: no authenticated principal on context")
	}
	if req.Body == nil {
		return gen.CreateTag400JSONResponse(errorBody(createFailedMessage, "request body is required")), nil
	}

	newTag := domain.Tag{
		Name:      req.Body.TagName,
		CreatorID: principal.ID,
		CreatedOn: time.Now().UTC(),
	}

	created, err := s.tags.Create(ctx, newTag)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrValidation) {
			return gen.CreateTag400JSONResponse(createFailedBody(newTag.Name, err)), nil
		}
		return nil, err
	}

	return gen.CreateTag201JSONResponse{
		Body:    s.mapper.ToResponse(created),
		Headers: gen.CreateTag201ResponseHeaders{Location: tagLocation(ctx, created.Name)},
	}, nil
}

// DeleteTag handles DELETE /tags/{tagName}.
// The trusted-domain policy has already been enforced by the time this runs.
func (s *Server) DeleteTag(ctx context.Context, req gen.DeleteTagRequestObject) (gen.DeleteTagResponseObject, error) {
	if err := s.tags.Delete(ctx, req.TagName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTag404Response{}, nil
		}
		return nil, err
	}
	return gen.DeleteTag204Response{}, nil
}

// tagLocation joins the request's scheme://host with tagRoute. Without a
// recorded base URL the path alone is returned.
func tagLocation(ctx context.Context, name string) string {
	path := strings.Replace(tagRoute, "{tagName}", url.PathEscape(name), 1)
	return baseURLFromContext(ctx) + path
}
