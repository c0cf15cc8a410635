// Package imagehost stores uploaded images and documents on local disk or an
// S3-compatible bucket and returns their public URLs.
package imagehost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/mx-space/portfolio/internal/config"
)

// ErrTooLarge is returned when a payload exceeds the configured size limit.
var ErrTooLarge = errors.New("file exceeds the upload size limit")

// Image describes a stored image.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// File describes a stored document.
type File struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

// Backend persists one object and returns the URL it is served from.
type Backend interface {
	Put(ctx context.Context, key, contentType string, payload []byte) (string, error)
}

// Uploader is the upload boundary used by handlers.
type Uploader struct {
	backend  Backend
	maxBytes int64
	now      func() time.Time
}

func NewUploader(backend Backend, maxSizeMB int) *Uploader {
	return &Uploader{backend: backend, maxBytes: int64(maxSizeMB) << 20, now: time.Now}
}

// FromConfig builds the uploader for the configured driver.
func FromConfig(ctx context.Context, cfg config.UploadConfig) (*Uploader, error) {
	switch cfg.Driver {
	case config.UploadS3:
		b, err := NewS3(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return NewUploader(b, cfg.MaxSizeMB), nil
	case config.UploadLocal, "":
		return NewUploader(NewLocal(cfg.Dir, cfg.PublicBaseURL), cfg.MaxSizeMB), nil
	default:
		return nil, fmt.Errorf("unsupported upload driver %q", cfg.Driver)
	}
}

// UploadImage stores an image under images/. Dimensions and format are read
// from the header; content that cannot be decoded is stored anyway with zero
// dimensions and the format taken from the file extension. The stored
// extension is limited to known image types.
func (u *Uploader) UploadImage(ctx context.Context, filename string, r io.Reader) (*Image, error) {
	payload, err := u.read(r)
	if err != nil {
		return nil, err
	}
	out := &Image{Format: extension(filename)}
	if cfg, format, err := image.DecodeConfig(bytes.NewReader(payload)); err == nil {
		out.Width, out.Height, out.Format = cfg.Width, cfg.Height, format
	}
	ext, ct := imageExt(filename, out.Format)
	out.URL, err = u.backend.Put(ctx, objectKey("images", ext, u.now()), ct, payload)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	return out, nil
}

// UploadFile stores a document under files/. Only common document
// extensions are kept and served with their own type; anything else is
// stored as opaque binary.
func (u *Uploader) UploadFile(ctx context.Context, filename string, r io.Reader) (*File, error) {
	payload, err := u.read(r)
	if err != nil {
		return nil, err
	}
	ext, ct := fileExt(filename)
	url, err := u.backend.Put(ctx, objectKey("files", ext, u.now()), ct, payload)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}
	return &File{URL: url, Name: filepath.Base(filename), Size: int64(len(payload)), MimeType: ct}, nil
}

func (u *Uploader) read(r io.Reader) ([]byte, error) {
	if u.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	payload, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(payload)) > u.maxBytes {
		return nil, ErrTooLarge
	}
	return payload, nil
}

func extension(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(strings.TrimSpace(filename))), ".")
}
