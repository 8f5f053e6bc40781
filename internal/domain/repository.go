// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"storekeep/internal/core/entity"
	"storekeep/internal/domain/filter"
)

// --- Filter & Pagination ---

// ListFilter contains common filtering options for list operations.
type ListFilter struct {
	// Search matches the name column (ILIKE)
	Search string

	// Filters are exact conditions built by handlers from query parameters
	Filters []filter.Item

	// OrderBy specifies sorting (e.g., "name", "-created_on")
	OrderBy string

	// Pagination; Limit 0 returns every matching row
	Limit  int
	Offset int
}

// MaxListLimit caps the page size when a client asks for one.
const MaxListLimit = 500

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Repository Interfaces ---

// CatalogRepository defines persistence for entities keyed by a business id.
type CatalogRepository[T entity.Entity] interface {
	// Create inserts a new entity
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by its business id
	GetByID(ctx context.Context, id string) (T, error)

	// Update writes all mutable columns of entity
	Update(ctx context.Context, entity T) error

	// List retrieves entities with filtering and pagination
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)

	// Exists checks if entity with given id exists
	Exists(ctx context.Context, id string) (bool, error)
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// on registers a hook for the specified event.
func (r *HookRegistry[T]) on(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes hooks for event in registration order and stops at the first error.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// OnBeforeCreate registers a hook that runs inside the create transaction.
func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) {
	r.on(BeforeCreate, hook)
}

// OnAfterCreate registers a hook that runs after commit.
func (r *HookRegistry[T]) OnAfterCreate(hook Hook[T]) {
	r.on(AfterCreate, hook)
}

// OnBeforeUpdate registers a hook that runs inside the update transaction.
func (r *HookRegistry[T]) OnBeforeUpdate(hook Hook[T]) {
	r.on(BeforeUpdate, hook)
}

// OnAfterUpdate registers a hook that runs once the update is written.
// When Update joins an outer transaction, that is before the outer commit.
func (r *HookRegistry[T]) OnAfterUpdate(hook Hook[T]) {
	r.on(AfterUpdate, hook)
}
