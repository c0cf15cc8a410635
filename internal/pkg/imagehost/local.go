package imagehost

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLocalBaseURL is where the app serves the upload directory.
const DefaultLocalBaseURL = "/uploads"

// Local writes objects below a directory served statically by the app.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) *Local {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultLocalBaseURL
	}
	return &Local{dir: dir, baseURL: baseURL}
}

func (l *Local) Dir() string { return l.dir }

func (l *Local) Put(_ context.Context, key, _ string, payload []byte) (string, error) {
	key = normalizeObjectKey(key)
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	dst := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, payload, 0o644); err != nil {
		return "", err
	}
	return l.baseURL + "/" + key, nil
}
