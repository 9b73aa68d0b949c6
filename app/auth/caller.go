package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CapabilityAdjudicateRescue    = "rescue:adjudicate"
	CapabilityManageSubscriptions = "subscriptions:manage"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Caller is the end user on whose behalf a request runs, as asserted by the
// identity provider's token.
type Caller struct {
	UserID       string
	Capabilities []string
}

func (c Caller) HasCapability(capability string) bool {
	for _, item := range c.Capabilities {
		if item == capability {
			return true
		}
	}
	return false
}

type callerContextKey struct{}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerContextKey{}, caller)
}

func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerContextKey{}).(Caller)
	if !ok || caller.UserID == "" {
		return Caller{}, false
	}
	return caller, true
}

type Claims struct {
	Capabilities []string `json:"capabilities,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates HS256 tokens issued by the identity provider.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

func (v *TokenVerifier) Verify(raw string) (Caller, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return Caller{}, ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Caller{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return Caller{}, ErrInvalidToken
	}

	return Caller{UserID: claims.Subject, Capabilities: claims.Capabilities}, nil
}

// Sign issues a token for userID. Used by tests and local tooling.
func (v *TokenVerifier) Sign(userID string, capabilities []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Capabilities: capabilities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
