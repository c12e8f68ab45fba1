// Package docs serves the OpenAPI document and a browsable API reference.
package docs

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Options configures the documentation routes.
type Options struct {
	// JSONRoute is where the raw OpenAPI document is served. Empty disables
	// both pages, since the UI has nothing to render without it.
	JSONRoute string

	// Description titles the reference page.
	Description string

	// UIEndpoint is where the reference page is served. Empty disables it.
	UIEndpoint string
}

var uiTemplate = template.Must(template.New("ui").Parse(`<!doctype html>
<html>
  <head>
    <title>{{.Title}}</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="{{.SpecURL}}"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>
`))

// Routes returns a chi route group serving spec at opts.JSONRoute and the
// reference UI at opts.UIEndpoint. Use it with r.Group.
func Routes(opts Options, spec []byte) func(r chi.Router) {
	return func(r chi.Router) {
		if opts.JSONRoute == "" {
			return
		}
		r.Get(opts.JSONRoute, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(spec)
		})

		if opts.UIEndpoint == "" {
			return
		}
		// Rendered once; the page is static for the life of the process.
		var page bytes.Buffer
		err := uiTemplate.Execute(&page, struct{ Title, SpecURL string }{
			Title:   opts.Description,
			SpecURL: opts.JSONRoute,
		})
		if err != nil {
			panic("docs: render reference page: " + err.Error())
		}
		r.Get(opts.UIEndpoint, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(page.Bytes())
		})
	}
}
