// Package auth verifies bearer tokens and evaluates authorization policies.
// It knows nothing about HTTP; middleware.NewAuthenticator adapts it to the
// router.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that cannot be trusted: bad
// signature, wrong algorithm, expired, wrong issuer, or no principal id.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload. UserID (claim "id") is the principal identifier
// recorded as a tag's creator; Email feeds domain policies.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier checks HS256-signed bearer tokens.
type TokenVerifier struct {
	secret []byte
	issuer string
}

// NewTokenVerifier returns a verifier for tokens signed with secret.
// When issuer is non-empty the iss claim must match it.
func NewTokenVerifier(secret []byte, issuer string) (*TokenVerifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth.NewTokenVerifier: secret must not be empty")
	}
	return &TokenVerifier{secret: secret, issuer: issuer}, nil
}

// Verify parses tokenStr and returns the principal it names.
func (v *TokenVerifier) Verify(tokenStr string) (Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return Principal{}, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}

	return Principal{ID: claims.UserID, Email: claims.Email}, nil
}

// TokenIssuer mints tokens accepted by a TokenVerifier with the same secret
// and issuer. Used by tagctl for local development and by tests.
type TokenIssuer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenIssuer returns an issuer signing with secret.
func NewTokenIssuer(secret []byte, issuer string) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth.NewTokenIssuer: secret must not be empty")
	}
	return &TokenIssuer{secret: secret, issuer: issuer, now: time.Now}, nil
}

// Issue returns a signed token for p that expires after ttl.
// Each token carries a random jti.
func (i *TokenIssuer) Issue(p Principal, ttl time.Duration) (string, error) {
	if p.ID == "" {
		return "", errors.New("auth.TokenIssuer.Issue: principal id is required")
	}
	if ttl <= 0 {
		return "", errors.New("auth.TokenIssuer.Issue: ttl must be positive")
	}

	now := i.now()
	claims := Claims{
		UserID: p.ID,
		Email:  p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth.TokenIssuer.Issue: %w", err)
	}
	return signed, nil
}
