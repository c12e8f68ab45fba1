package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// EscapedRoutePath makes chi match routes against the escaped request path.
//
// chi routes on r.URL.Path, which net/http has already decoded, while the
// generated wrapper unescapes path parameters again when binding them. Routing
// on the escaped form leaves exactly one decode, so "/tags/100%25" binds
// "100%" and "/tags/a%2Fb" binds "a/b". Install it on the top-level router
// before any route is registered.
func EscapedRoutePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath == "" {
			rctx.RoutePath = r.URL.EscapedPath()
		}
		next.ServeHTTP(w, r)
	})
}
