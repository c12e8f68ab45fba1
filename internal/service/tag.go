// Package service contains the business logic for the Tagbook API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkordes/tagbook/internal/domain"
	"github.com/pkordes/tagbook/internal/repo"
)

// TagService implements business logic for Tag operations.
// Uniqueness is not checked here: the repo's insert is the single source of
// truth, so two concurrent creates of one name resolve to one success and
// one domain.ErrConflict.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// List returns every tag in the order the repo yields them.
// Never returns a nil slice on success.
func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}

// GetByName returns the tag with exactly this name, or domain.ErrNotFound.
func (s *TagService) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	if !storableName(name) {
		return domain.Tag{}, fmt.Errorf("service.TagService.GetByName: %w", domain.ErrNotFound)
	}
	tag, err := s.tags.GetByName(ctx, name)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.GetByName: %w", err)
	}
	return tag, nil
}

// Create validates and persists a new tag.
// Returns domain.ErrValidation for bad input and domain.ErrConflict when the
// name is already taken.
func (s *TagService) Create(ctx context.Context, tag domain.Tag) (domain.Tag, error) {
	if err := validateTag(tag); err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", err)
	}

	tag.CreatedOn = tag.CreatedOn.UTC()
	created, err := s.tags.Create(ctx, tag)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", err)
	}
	return created, nil
}

// Delete removes a tag by name, or returns domain.ErrNotFound.
func (s *TagService) Delete(ctx context.Context, name string) error {
	if !storableName(name) {
		return fmt.Errorf("service.TagService.Delete: %w", domain.ErrNotFound)
	}
	if err := s.tags.Delete(ctx, name); err != nil {
		return fmt.Errorf("service.TagService.Delete: %w", err)
	}
	return nil
}

func validateTag(tag domain.Tag) error {
	switch {
	case strings.TrimSpace(tag.Name) == "":
		return fmt.Errorf("%w: tag name is required", domain.ErrValidation)
	case !storableName(tag.Name):
		return fmt.Errorf("%w: tag name must be valid UTF-8 without NUL characters", domain.ErrValidation)
	case len(tag.Name) > domain.MaxTagNameLength:
		return fmt.Errorf("%w: tag name must be at most %d bytes", domain.ErrValidation, domain.MaxTagNameLength)
	case tag.CreatorID == "":
		return fmt.Errorf("%w: creator is required", domain.ErrValidation)
	case tag.CreatedOn.IsZero():
		return fmt.Errorf("%w: creation time is required", domain.ErrValidation)
	}
	return nil
}

// storableName reports whether a Postgres TEXT column can hold name.
// A name it cannot hold can never have been created.
func storableName(name string) bool {
	return utf8.ValidString(name) && !strings.ContainsRune(name, 0)
}
