package auth

import (
	"context"
	"strings"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ID    string
	Email string
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// PolicyTrustedDomain is the scope name that restricts an operation to
// principals whose email belongs to the trusted domain.
const PolicyTrustedDomain = "trusted-domain"

// Policy reports whether a principal may perform an operation.
type Policy func(Principal) bool

// Policies maps scope names, as declared in the OpenAPI document, to policies.
type Policies map[string]Policy

// Allows reports whether p satisfies every named policy.
// Unknown names deny.
func (ps Policies) Allows(p Principal, names []string) bool {
	for _, name := range names {
		policy, ok := ps[name]
		if !ok || !policy(p) {
			return false
		}
	}
	return true
}

// EmailDomain allows principals whose email address is exactly on domain
// (case-insensitive). Subdomains do not match.
func EmailDomain(domain string) Policy {
	want := strings.ToLower(strings.TrimPrefix(domain, "@"))
	return func(p Principal) bool {
		at := strings.LastIndexByte(p.Email, '@')
		if at <= 0 || want == "" {
			return false
		}
		return strings.ToLower(p.Email[at+1:]) == want
	}
}
