package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/jwt"
	"github.com/mx-space/portfolio/internal/pkg/response"
)

const (
	// TokenCookie carries the admin token set at login.
	TokenCookie = "token"

	ContextKeyEmail = "admin_email"
)

// Auth rejects requests without a valid admin token.
func Auth(signer *jwt.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ValidateToken(signer, ExtractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyEmail, claims.Email)
		c.Next()
	}
}

// OptionalAuth records the admin identity when a valid token is present.
func OptionalAuth(signer *jwt.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := ValidateToken(signer, ExtractToken(c)); err == nil {
			c.Set(ContextKeyEmail, claims.Email)
		}
		c.Next()
	}
}

// ValidateToken parses a raw token, with or without its Bearer prefix.
func ValidateToken(signer *jwt.Signer, raw string) (*jwt.Claims, error) {
	token := NormalizeToken(raw)
	if token == "" {
		return nil, errors.New("token is required")
	}
	return signer.Parse(token)
}

// CurrentEmail returns the authenticated admin email, or "".
func CurrentEmail(c *gin.Context) string {
	v, _ := c.Get(ContextKeyEmail)
	email, _ := v.(string)
	return email
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentEmail(c) != ""
}

// ExtractToken reads the Authorization header, then the token cookie.
func ExtractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return NormalizeToken(cookie)
	}
	return ""
}

// NormalizeToken trims spaces and strips optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
