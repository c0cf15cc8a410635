// Package auth owns the single admin credential: login verification and the
// rotation protocol.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned by Verify for any email/password mismatch.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrCurrentPasswordMismatch rejects a rotation whose current password is wrong.
	ErrCurrentPasswordMismatch = errors.New("current password is incorrect")
)

var activeOnly = store.Query{Where: map[string]interface{}{"is_active": true}}

type Service struct {
	repo  *store.Repo[models.CredentialsModel]
	cache store.VolatileCache
	admin config.AdminConfig
	log   *zap.Logger
}

func NewService(db *gorm.DB, cache store.VolatileCache, admin config.AdminConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: store.NewRepo[models.CredentialsModel](db), cache: cache, admin: admin, log: log}
}

func cacheKey() string { return store.Key("auth", "credentials") }

// active resolves the credentials to check a login against: the active row,
// else the last copy seen while the store was up, else the configured admin.
func (s *Service) active(ctx context.Context) secret {
	rec, err := s.repo.Latest(ctx, activeOnly)
	switch {
	case err == nil:
		cur := secret{Email: rec.Email, Password: rec.Password}
		s.remember(ctx, cur)
		return cur
	case errors.Is(err, store.ErrNotFound):
		return s.bootstrap()
	}

	s.log.Warn("credentials lookup failed, trying volatile cache", zap.Error(err))
	if s.cache != nil {
		var cached secret
		ok, cerr := s.cache.Get(ctx, cacheKey(), &cached)
		if cerr != nil {
			s.log.Warn("volatile cache read failed", zap.Error(cerr))
		}
		if ok && cached.Email != "" {
			return cached
		}
	}
	return s.bootstrap()
}

func (s *Service) bootstrap() secret {
	return secret{Email: s.admin.Email, Password: s.admin.Password}
}

func (s *Service) remember(ctx context.Context, cur secret) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(), cur, 0); err != nil {
		s.log.Debug("volatile cache write failed", zap.Error(err))
	}
}

// Verify checks an email/password pair and returns the canonical email.
func (s *Service) Verify(ctx context.Context, email, password string) (string, error) {
	cur := s.active(ctx)
	if cur.Email == "" || !strings.EqualFold(strings.TrimSpace(email), cur.Email) || !passwordMatches(cur.Password, password) {
		return "", ErrInvalidCredentials
	}
	return cur.Email, nil
}

// Rotate runs Idle -> Validating -> Committed | Rejected. A rejected rotation
// leaves the stored record untouched. Store errors are returned as is; this
// is a write path and nothing is masked. Concurrent rotations are not
// serialised.
func (s *Service) Rotate(ctx context.Context, dto *RotateDTO) (Rotation, error) {
	rot := Rotation{State: Validating}
	reject := func(err error) (Rotation, error) {
		rot.State = Rejected
		return rot, err
	}

	dto.NewEmail = strings.TrimSpace(dto.NewEmail)
	if err := validate.Struct(dto); err != nil {
		return reject(err)
	}

	rec, err := s.repo.Latest(ctx, activeOnly)
	var stored secret
	switch {
	case err == nil:
		stored = secret{Email: rec.Email, Password: rec.Password}
	case errors.Is(err, store.ErrNotFound):
		stored = s.bootstrap()
	default:
		return reject(err)
	}
	if !passwordMatches(stored.Password, dto.CurrentPassword) {
		return reject(ErrCurrentPasswordMismatch)
	}

	password, err := s.encode(dto.NewPassword)
	if err != nil {
		return reject(err)
	}
	email := stored.Email
	if dto.NewEmail != "" {
		email = dto.NewEmail
	}

	saved, err := s.repo.Upsert(ctx, activeOnly, func(c *models.CredentialsModel) {
		c.Email = email
		c.Password = password
		c.IsActive = true
	})
	if err != nil {
		return reject(err)
	}
	s.remember(ctx, secret{Email: saved.Email, Password: saved.Password})
	rot.State, rot.Email = Committed, saved.Email
	return rot, nil
}

// EnsureCredentials creates the active credentials from the configured admin
// when the store has none.
func (s *Service) EnsureCredentials(ctx context.Context) (bool, error) {
	_, err := s.repo.Latest(ctx, activeOnly)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}
	password, err := s.encode(s.admin.Password)
	if err != nil {
		return false, err
	}
	c := models.CredentialsModel{Email: s.admin.Email, Password: password, IsActive: true}
	if err := s.repo.Create(ctx, &c); err != nil {
		return false, err
	}
	s.log.Info("admin credentials created", zap.String("email", c.Email))
	return true, nil
}

func (s *Service) encode(password string) (string, error) {
	if !s.admin.HashPasswords {
		// Stored in plaintext unless hashing is enabled. Known weakness kept
		// for compatibility with existing records.
		return password, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isBcrypt(stored string) bool {
	return len(stored) == 60 && (strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$"))
}

// passwordMatches compares against a bcrypt hash, or the plaintext value.
func passwordMatches(stored, given string) bool {
	if stored == "" {
		return false
	}
	if isBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
