package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo is a typed repository over one model table. Every error it returns has
// been passed through Classify.
type Repo[T any] struct {
	db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) *Repo[T] { return &Repo[T]{db: db} }

// DB exposes the handle for callers that need a transaction.
func (r *Repo[T]) DB() *gorm.DB { return r.db }

func (r *Repo[T]) tx(ctx context.Context) *gorm.DB {
	var zero T
	return r.db.WithContext(ctx).Model(&zero)
}

// Latest returns the first row matching q, ordered by q.Order (LatestFirst when empty).
func (r *Repo[T]) Latest(ctx context.Context, q Query) (*T, error) {
	if len(q.Order) == 0 {
		q.Order = LatestFirst
	}
	var out T
	if err := q.apply(r.tx(ctx)).First(&out).Error; err != nil {
		return nil, Classify(err)
	}
	return &out, nil
}

// List returns all rows matching q. An empty result is not an error.
func (r *Repo[T]) List(ctx context.Context, q Query) ([]T, error) {
	items := []T{}
	if err := q.apply(r.tx(ctx)).Find(&items).Error; err != nil {
		return nil, Classify(err)
	}
	return items, nil
}

// Page returns one page of rows plus the total row count.
func (r *Repo[T]) Page(ctx context.Context, q Query, page, size int) ([]T, int64, error) {
	var total int64
	base := q
	base.Order, base.Limit = nil, 0
	if err := base.apply(r.tx(ctx)).Count(&total).Error; err != nil {
		return nil, 0, Classify(err)
	}
	items := []T{}
	err := q.apply(r.tx(ctx)).Offset((page - 1) * size).Limit(size).Find(&items).Error
	if err != nil {
		return nil, 0, Classify(err)
	}
	return items, total, nil
}

func (r *Repo[T]) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	q.Order, q.Limit = nil, 0
	if err := q.apply(r.tx(ctx)).Count(&n).Error; err != nil {
		return 0, Classify(err)
	}
	return n, nil
}

func (r *Repo[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, Classify(err)
	}
	return &out, nil
}

func (r *Repo[T]) Create(ctx context.Context, v *T) error {
	return Classify(r.db.WithContext(ctx).Create(v).Error)
}

// Save writes every field of v, inserting when v has no primary key yet.
func (r *Repo[T]) Save(ctx context.Context, v *T) error {
	return Classify(r.db.WithContext(ctx).Save(v).Error)
}

// Update loads the row with the given id, lets fn modify it and saves it.
// fn may reject the change by returning an error, which is passed through.
func (r *Repo[T]) Update(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(cur); err != nil {
		return nil, err
	}
	if err := r.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

// Upsert applies fn to the row Latest(q) finds, or to a fresh row when there
// is none, and saves the result.
func (r *Repo[T]) Upsert(ctx context.Context, q Query, fn func(*T)) (*T, error) {
	cur, err := r.Latest(ctx, q)
	switch {
	case errors.Is(err, ErrNotFound):
		cur = new(T)
	case err != nil:
		return nil, err
	}
	fn(cur)
	if err := r.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

// Delete soft-deletes the row with the given id; ErrNotFound when nothing matched.
func (r *Repo[T]) Delete(ctx context.Context, id string) error {
	var zero T
	res := r.db.WithContext(ctx).Delete(&zero, "id = ?", id)
	if res.Error != nil {
		return Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
