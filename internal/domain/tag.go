// Package domain contains the core data types for the Tagbook API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// MaxTagNameLength is the longest tag name, in bytes, the service accepts.
const MaxTagNameLength = 64

// Tag is a named label. Name is the identity: there is no surrogate key, and
// lookups match it exactly (no case folding or trimming).
// CreatorID and CreatedOn are set once at creation and never change.
type Tag struct {
	Name      string
	CreatorID string
	CreatedOn time.Time
}
