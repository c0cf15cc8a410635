// Package store is the persistence boundary: generic GORM repositories, the
// volatile cache tier, and classification of driver errors into the three
// kinds callers branch on.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no eligible record exists.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a unique constraint rejected the write.
	ErrConflict = errors.New("record conflicts with an existing one")
	// ErrUnavailable wraps any failure to reach or query the database.
	ErrUnavailable = errors.New("store unavailable")
)

// Classify maps GORM/driver errors onto the store error kinds. nil stays nil.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict), errors.Is(err, ErrUnavailable):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

// IsUnavailable reports whether err is a connectivity-class failure.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

// Query describes a filter and sort for Latest/List.
type Query struct {
	Where map[string]interface{}
	Order []string
	Limit int
}

// LatestFirst orders by update time with a stable id tie-break.
var LatestFirst = []string{"updated_at DESC", "id DESC"}

func (q Query) apply(tx *gorm.DB) *gorm.DB {
	if len(q.Where) > 0 {
		tx = tx.Where(q.Where)
	}
	for _, o := range q.Order {
		tx = tx.Order(o)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx
}
