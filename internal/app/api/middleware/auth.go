package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/response"
)

const identityKey = "identity"

// Identity carries the caller identity and the subscription metadata the
// identity provider attaches to its tokens.
type Identity struct {
	UserID string
	Plan   string
	Status string
}

// Subscribed reports whether the provider metadata marks this user as a paid
// subscriber. The source of truth lives with the identity provider.
func (i *Identity) Subscribed() bool {
	return i != nil && i.Plan == "premium" && i.Status == "active"
}

type identityClaims struct {
	jwt.RegisteredClaims
	Plan   string `json:"plan"`
	Status string `json:"status"`
}

// AuthMiddleware validates the bearer token and attaches the caller identity
// to gin.Context and the request context. Requests without a valid token are
// rejected with 401; there is no fallback.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := parseBearer(c.GetHeader("Authorization"), secret)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "missing or invalid credentials")
			return
		}

		c.Set(identityKey, ident)
		ctx := context.WithValue(c.Request.Context(), "user_id", ident.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func parseBearer(header, secret string) (*Identity, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, errors.New("missing bearer token")
	}

	claims := &identityClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token missing subject")
	}
	return &Identity{UserID: claims.Subject, Plan: claims.Plan, Status: claims.Status}, nil
}

// IdentityFromGin returns the identity attached by AuthMiddleware, or nil.
func IdentityFromGin(c *gin.Context) *Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(*Identity); ok {
			return id
		}
	}
	return nil
}
