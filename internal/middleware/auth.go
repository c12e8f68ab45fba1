package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/tagbook/internal/auth"
	"github.com/pkordes/tagbook/internal/handler/gen"
)

// TokenVerifier turns a bearer token into a principal.
// *auth.TokenVerifier satisfies it.
type TokenVerifier interface {
	Verify(token string) (auth.Principal, error)
}

// NewAuthenticator returns a per-operation middleware for gen.ChiServerOptions.
//
// The generated wrapper stores the operation's bearerAuth scopes on the
// context before running this middleware. Operations without security pass
// through untouched. Secured operations need a valid bearer token (else 401)
// and a principal satisfying every scope in policies (else 403). On success
// the principal is attached with auth.WithPrincipal.
func NewAuthenticator(verifier TokenVerifier, policies auth.Policies, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scopes, secured := r.Context().Value(gen.BearerAuthScopes).([]string)
			if !secured {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer`)
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				log.DebugContext(r.Context(), "bearer token rejected",
					"error", err,
					"request_id", chimiddleware.GetReqID(r.Context()),
				)
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}

			if !policies.Allows(principal, scopes) {
				log.InfoContext(r.Context(), "policy denied",
					"principal", principal.ID,
					"scopes", scopes,
					"request_id", chimiddleware.GetReqID(r.Context()),
				)
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// writeError answers with the API's {errors:[{message}]} envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{
		Errors: []gen.ErrorModel{{Message: message}},
	})
}
