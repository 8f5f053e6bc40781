package domain

import (
	"context"
	"fmt"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/entity"
	"storekeep/internal/core/tx"
	"storekeep/pkg/logger"
)

// CatalogService provides the create/read/update flow shared by all entities.
//
// Before-create hooks run inside the create transaction. That is where
// identifiers are drawn from counters, so a failed insert also returns the
// counter value instead of leaving a gap.
type CatalogService[T entity.Entity] struct {
	repo      CatalogRepository[T]
	txManager tx.Manager
	hooks     *HookRegistry[T]

	// entityName for error messages
	entityName string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T entity.Entity] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	EntityName string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T entity.Entity](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// EntityName returns the name used in errors.
func (s *CatalogService[T]) EntityName() string {
	return s.entityName
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	// If entity already returns structured AppError, keep it.
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, id string) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, id)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", id)
}

// Create validates e, runs before-create hooks and inserts it in one transaction.
func (s *CatalogService[T]) Create(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.hooks.Run(ctx, BeforeCreate, e); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, e); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "entity created", "entity", s.entityName, "id", e.GetID())

	if err := s.hooks.Run(ctx, AfterCreate, e); err != nil {
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}
	return nil
}

// read runs fn in a read-only transaction when the manager supports one.
func (s *CatalogService[T]) read(ctx context.Context, fn func(ctx context.Context) error) error {
	if ro, ok := s.txManager.(tx.ReadOnlyManager); ok {
		return ro.ReadOnly(ctx, fn)
	}
	return fn(ctx)
}

// GetByID retrieves entity by id.
func (s *CatalogService[T]) GetByID(ctx context.Context, id string) (T, error) {
	var e T
	err := s.read(ctx, func(ctx context.Context) error {
		var err error
		e, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return e, s.normalizeGetErr(err, id)
	}
	return e, nil
}

// Update validates e and writes it in a transaction.
func (s *CatalogService[T]) Update(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.hooks.Run(ctx, BeforeUpdate, e); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, e); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterUpdate, e); err != nil {
		logger.Warn(ctx, "after-update hook failed", "entity", s.entityName, "error", err)
	}
	return nil
}

// List retrieves entities with filtering. Count and page are read in one transaction.
func (s *CatalogService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	var result ListResult[T]
	err := s.read(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.repo.List(ctx, filter)
		return err
	})
	return result, err
}

// Exists checks if entity exists.
func (s *CatalogService[T]) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// RequireExisting returns a validation error naming field when id does not exist.
// Used to check references before an insert.
func RequireExisting(ctx context.Context, exists func(ctx context.Context, id string) (bool, error), field, id string) error {
	if id == "" {
		return apperror.NewValidation(field + " is required").WithDetail("field", field)
	}
	ok, err := exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check %s: %w", field, err)
	}
	if !ok {
		return apperror.NewValidation(field+" does not reference an existing record").
			WithDetail("field", field).
			WithDetail("value", id)
	}
	return nil
}
