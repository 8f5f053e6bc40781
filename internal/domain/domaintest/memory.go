// Package domaintest provides in-memory fakes for domain service tests.
package domaintest

import (
	"context"
	"sync"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/entity"
	"storekeep/internal/domain"
)

// MemoryRepo is an in-memory domain.CatalogRepository.
// Items are kept in insertion order. Filters other than Limit/Offset are ignored.
type MemoryRepo[T entity.Entity] struct {
	// CreateErr, when set, is returned by Create instead of storing the item.
	CreateErr error

	mu    sync.Mutex
	items map[string]T
	order []string
}

// NewMemoryRepo creates an empty repository.
func NewMemoryRepo[T entity.Entity]() *MemoryRepo[T] {
	return &MemoryRepo[T]{items: make(map[string]T)}
}

// Create implements domain.CatalogRepository.
func (r *MemoryRepo[T]) Create(ctx context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CreateErr != nil {
		return r.CreateErr
	}
	id := e.GetID()
	if _, ok := r.items[id]; ok {
		return apperror.NewDuplicate("entity", "id", id)
	}
	r.items[id] = e
	r.order = append(r.order, id)
	return nil
}

// GetByID implements domain.CatalogRepository.
func (r *MemoryRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound("entity", id)
	}
	return e, nil
}

// Update implements domain.CatalogRepository.
func (r *MemoryRepo[T]) Update(ctx context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := e.GetID()
	if _, ok := r.items[id]; !ok {
		return apperror.NewNotFound("entity", id)
	}
	r.items[id] = e
	return nil
}

// List implements domain.CatalogRepository.
func (r *MemoryRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	all := r.All()
	res := domain.ListResult[T]{
		TotalCount: int64(len(all)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}

	if filter.Offset < len(all) {
		all = all[filter.Offset:]
	} else {
		all = nil
	}
	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	res.Items = all
	return res, nil
}

// Exists implements domain.CatalogRepository.
func (r *MemoryRepo[T]) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok, nil
}

// All returns the stored items in insertion order.
func (r *MemoryRepo[T]) All() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// Find returns the first item matching fn, or NotFound described by what.
func (r *MemoryRepo[T]) Find(fn func(T) bool, what string) (T, error) {
	for _, e := range r.All() {
		if fn(e) {
			return e, nil
		}
	}
	var zero T
	return zero, apperror.NewNotFound("entity", what)
}

// TxRecorder is a tx.ReadOnlyManager that runs fn directly and records nesting.
type TxRecorder struct {
	mu         sync.Mutex
	Begun      int
	RolledBack int
	ReadOnlys  int
}

type inTxKey struct{}

// RunInTransaction implements tx.Manager.
func (m *TxRecorder) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	m.mu.Lock()
	m.Begun++
	m.mu.Unlock()

	err := fn(context.WithValue(ctx, inTxKey{}, true))
	if err != nil {
		m.mu.Lock()
		m.RolledBack++
		m.mu.Unlock()
	}
	return err
}

// ReadOnly implements tx.ReadOnlyManager. It joins a transaction already in ctx.
func (m *TxRecorder) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	m.mu.Lock()
	m.ReadOnlys++
	m.mu.Unlock()

	return fn(context.WithValue(ctx, inTxKey{}, true))
}

// InTx reports whether ctx was produced by TxRecorder.RunInTransaction.
func InTx(ctx context.Context) bool {
	return ctx.Value(inTxKey{}) != nil
}
