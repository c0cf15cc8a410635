package app

import (
	"testing"

	"github.com/mx-space/portfolio/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMatchOriginPattern(t *testing.T) {
	cases := []struct {
		pattern, host string
		want          bool
	}{
		{"example.com", "example.com", true},
		{"example.com", "api.example.com", false},
		{"*.example.com", "api.example.com", true},
		{"*.example.com", "example.org", false},
		{"localhost:*", "localhost:3000", true},
		{"localhost:*", "127.0.0.1:3000", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matchOriginPattern(tc.pattern, tc.host), "%s vs %s", tc.pattern, tc.host)
	}
}

func TestCorsConfigOrigins(t *testing.T) {
	cfg := &config.AppConfig{Env: "production", AllowedOrigins: []string{"https://example.com", "*.example.net"}}
	c := corsConfig(cfg)
	assert.True(t, c.AllowOriginFunc("https://example.com"))
	assert.True(t, c.AllowOriginFunc("https://www.example.net"))
	assert.False(t, c.AllowOriginFunc("https://evil.com"))

	dev := corsConfig(&config.AppConfig{Env: "development", AllowedOrigins: []string{"https://example.com"}})
	assert.True(t, dev.AllowOriginFunc("https://evil.com"))
}
