package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const defaultSecret = "portfolio-secret-change-me"

// Issuer names tokens minted by this service.
const Issuer = "portfolio"

// Signer signs and verifies admin tokens with one HMAC secret.
type Signer struct {
	secret []byte
}

// NewSigner falls back to a development secret when s is empty.
func NewSigner(s string) *Signer {
	if s == "" {
		s = defaultSecret
	}
	return &Signer{secret: []byte(s)}
}

// Claims is the JWT payload.
type Claims struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	jwtlib.RegisteredClaims
}

// Sign creates a signed admin token for the given login email.
func (s *Signer) Sign(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Admin: true,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   email,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a token string and returns the claims.
func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwtlib.WithIssuer(Issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.Admin {
		return nil, errors.New("token does not carry admin rights")
	}
	return claims, nil
}
