package handler

import (
	"github.com/pkordes/tagbook/internal/domain"
	"github.com/pkordes/tagbook/internal/handler/gen"
)

type tagMapper struct{}

// NewTagMapper returns the default TagMapper.
func NewTagMapper() TagMapper {
	return tagMapper{}
}

// ToResponse converts a domain.Tag to the generated API type; createdOn is UTC.
func (tagMapper) ToResponse(t domain.Tag) gen.Tag {
	return gen.Tag{
		Name:      t.Name,
		CreatorId: t.CreatorID,
		CreatedOn: t.CreatedOn.UTC(),
	}
}

// ToResponses maps ts in order. A nil input yields an empty, non-nil slice so
// the JSON body is [] rather than null.
func (m tagMapper) ToResponses(ts []domain.Tag) []gen.Tag {
	out := make([]gen.Tag, len(ts))
	for i, t := range ts {
		out[i] = m.ToResponse(t)
	}
	return out
}
