// Package catalog_repo provides PostgreSQL implementations for entity repositories.
package catalog_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"storekeep/internal/core/apperror"
	"storekeep/internal/domain"
	"storekeep/internal/domain/filter"
	"storekeep/internal/infrastructure/storage/postgres"
)

// Table describes how an entity type maps onto its table.
type Table[T any] struct {
	// Name of the table
	Name string

	// Key is the primary key column (business identifier)
	Key string

	// Entity is used in error messages
	Entity string

	// Columns are selected and written; usually postgres.ExtractDBColumns
	Columns []string

	// SearchColumns are matched with ILIKE by ListFilter.Search
	SearchColumns []string

	// DefaultOrder is used when ListFilter.OrderBy is empty
	DefaultOrder string

	// New allocates an entity to scan into
	New func() T
}

// BaseCatalogRepo provides common CRUD operations.
// Embed this in specific repositories.
type BaseCatalogRepo[T any] struct {
	db    postgres.QuerierProvider
	table Table[T]
	cols  map[string]struct{}
}

// NewBaseCatalogRepo creates a new base repository.
func NewBaseCatalogRepo[T any](db postgres.QuerierProvider, table Table[T]) *BaseCatalogRepo[T] {
	cols := make(map[string]struct{}, len(table.Columns))
	for _, c := range table.Columns {
		cols[c] = struct{}{}
	}
	return &BaseCatalogRepo[T]{db: db, table: table, cols: cols}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseCatalogRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *BaseCatalogRepo[T]) querier(ctx context.Context) postgres.Querier {
	return r.db.GetQuerier(ctx)
}

// columnValues maps entity onto the table columns.
func (r *BaseCatalogRepo[T]) columnValues(entity T) (map[string]any, error) {
	data := postgres.StructToMap(entity)
	if len(data) == 0 {
		return nil, fmt.Errorf("no db tags found in %T", entity)
	}

	filtered := make(map[string]any, len(r.table.Columns))
	for _, col := range r.table.Columns {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}
	if _, ok := filtered[r.table.Key]; !ok {
		return nil, fmt.Errorf("%T has no %q column", entity, r.table.Key)
	}
	return filtered, nil
}

// Create inserts a new entity using its "db" tags.
func (r *BaseCatalogRepo[T]) Create(ctx context.Context, entity T) error {
	data, err := r.columnValues(entity)
	if err != nil {
		return err
	}

	sql, args, err := r.Builder().
		Insert(r.table.Name).
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapWriteError(err, "insert "+r.table.Name, r.table.Entity)
	}
	return nil
}

// Update writes every column except the key and created_on.
func (r *BaseCatalogRepo[T]) Update(ctx context.Context, entity T) error {
	data, err := r.columnValues(entity)
	if err != nil {
		return err
	}

	key := data[r.table.Key]
	delete(data, r.table.Key)
	delete(data, "created_on")

	sql, args, err := r.Builder().
		Update(r.table.Name).
		SetMap(data).
		Where(squirrel.Eq{r.table.Key: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapWriteError(err, "update "+r.table.Name, r.table.Entity)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.table.Entity, key)
	}
	return nil
}

// baseSelect creates a SELECT builder.
func (r *BaseCatalogRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.table.Columns...).
		From(r.table.Name)
}

// GetByID retrieves entity by its key.
func (r *BaseCatalogRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	return r.getOne(ctx, r.baseSelect().Where(squirrel.Eq{r.table.Key: id}).Limit(1), id)
}

// GetForUpdate retrieves entity by key with a row lock.
func (r *BaseCatalogRepo[T]) GetForUpdate(ctx context.Context, id string) (T, error) {
	return r.getOne(ctx, r.baseSelect().Where(squirrel.Eq{r.table.Key: id}).Suffix("FOR UPDATE"), id)
}

// FindOne executes a SELECT query and returns a single entity.
func (r *BaseCatalogRepo[T]) FindOne(ctx context.Context, q squirrel.SelectBuilder, what string) (T, error) {
	return r.getOne(ctx, q, what)
}

func (r *BaseCatalogRepo[T]) getOne(ctx context.Context, q squirrel.SelectBuilder, what string) (T, error) {
	entity := r.table.New()

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.table.Entity, what)
		}
		return entity, fmt.Errorf("get %s: %w", r.table.Name, err)
	}
	return entity, nil
}

// List retrieves entities with filtering and pagination.
func (r *BaseCatalogRepo[T]) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[T], error) {
	result := domain.ListResult[T]{
		Limit:  f.Limit,
		Offset: f.Offset,
	}

	q, err := r.filteredSelect(f)
	if err != nil {
		return result, err
	}

	countSQL, countArgs, err := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count %s: %w", r.table.Name, err)
	}

	orderBy, err := r.parseOrderBy(f.OrderBy)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list %s: %w", r.table.Name, err)
	}
	if result.Items == nil {
		result.Items = []T{}
	}
	return result, nil
}

// filteredSelect applies search and filter items, without ordering or paging.
func (r *BaseCatalogRepo[T]) filteredSelect(f domain.ListFilter) (squirrel.SelectBuilder, error) {
	q := r.baseSelect()

	if f.Search != "" && len(r.table.SearchColumns) > 0 {
		pattern := "%" + f.Search + "%"
		or := make(squirrel.Or, 0, len(r.table.SearchColumns))
		for _, col := range r.table.SearchColumns {
			or = append(or, squirrel.ILike{col: pattern})
		}
		q = q.Where(or)
	}

	return r.applyFilters(q, f.Filters)
}

// applyFilters applies filter items to query. Columns are whitelisted.
func (r *BaseCatalogRepo[T]) applyFilters(q squirrel.SelectBuilder, items []filter.Item) (squirrel.SelectBuilder, error) {
	for _, item := range items {
		if _, ok := r.cols[item.Field]; !ok {
			return q, apperror.NewValidation("invalid filter field").WithDetail("field", item.Field)
		}

		switch item.Operator {
		case filter.Equal:
			q = q.Where(squirrel.Eq{item.Field: item.Value})
		case filter.NotEqual:
			q = q.Where(squirrel.NotEq{item.Field: item.Value})
		case filter.Less:
			q = q.Where(squirrel.Lt{item.Field: item.Value})
		case filter.LessOrEqual:
			q = q.Where(squirrel.LtOrEq{item.Field: item.Value})
		case filter.Greater:
			q = q.Where(squirrel.Gt{item.Field: item.Value})
		case filter.GreaterOrEqual:
			q = q.Where(squirrel.GtOrEq{item.Field: item.Value})
		case filter.InList:
			q = q.Where(squirrel.Eq{item.Field: item.Value})
		case filter.Contains:
			q = q.Where(squirrel.ILike{item.Field: fmt.Sprintf("%%%v%%", item.Value)})
		case filter.IsNull:
			q = q.Where(squirrel.Eq{item.Field: nil})
		case filter.IsNotNull:
			q = q.Where(squirrel.NotEq{item.Field: nil})
		default:
			return q, apperror.NewValidation("invalid filter operator").
				WithDetail("field", item.Field).
				WithDetail("operator", string(item.Operator))
		}
	}
	return q, nil
}

// Exists checks if entity exists.
func (r *BaseCatalogRepo[T]) Exists(ctx context.Context, id string) (bool, error) {
	sql, args, err := r.Builder().
		Select("1").
		From(r.table.Name).
		Where(squirrel.Eq{r.table.Key: id}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r.table.Name, err)
	}
	return true, nil
}

func (r *BaseCatalogRepo[T]) parseOrderBy(orderBy string) (string, error) {
	if orderBy == "" {
		if r.table.DefaultOrder != "" {
			return r.table.DefaultOrder, nil
		}
		return r.table.Key + " ASC", nil
	}

	// Support "-field" for DESC.
	direction := "ASC"
	field := orderBy
	if strings.HasPrefix(orderBy, "-") {
		direction = "DESC"
		field = strings.TrimPrefix(orderBy, "-")
	} else if strings.HasPrefix(orderBy, "+") {
		field = strings.TrimPrefix(orderBy, "+")
	}

	field = strings.TrimSpace(field)
	if _, ok := r.cols[field]; !ok || field == "" {
		return "", apperror.NewValidation("invalid orderBy").WithDetail("orderBy", orderBy)
	}

	return field + " " + direction, nil
}
