// Package spec embeds the OpenAPI specification for the Tagbook API.
// internal/handler/gen is generated from it, and internal/docs serves it
// alongside the reference UI.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
