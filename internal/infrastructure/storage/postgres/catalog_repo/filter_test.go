package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storekeep/internal/core/apperror"
	"storekeep/internal/domain"
	"storekeep/internal/domain/filter"
)

func newTestRepo() *BaseCatalogRepo[*struct{}] {
	return NewBaseCatalogRepo(nil, Table[*struct{}]{
		Name:          "test_table",
		Key:           "id",
		Entity:        "test",
		Columns:       []string{"id", "col1", "status"},
		SearchColumns: []string{"col1"},
		New:           func() *struct{} { return &struct{}{} },
	})
}

func TestApplyFilters_Operators(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name     string
		item     filter.Item
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "Equal",
			item:     filter.Eq("status", "ACTIVE"),
			wantSQL:  "SELECT id, col1, status FROM test_table WHERE status = $1",
			wantArgs: []any{"ACTIVE"},
		},
		{
			name:     "Greater",
			item:     filter.Item{Field: "col1", Operator: filter.Greater, Value: 10},
			wantSQL:  "SELECT id, col1, status FROM test_table WHERE col1 > $1",
			wantArgs: []any{10},
		},
		{
			name:     "Less",
			item:     filter.Item{Field: "col1", Operator: filter.Less, Value: 5},
			wantSQL:  "SELECT id, col1, status FROM test_table WHERE col1 < $1",
			wantArgs: []any{5},
		},
		{
			name:     "Contains",
			item:     filter.Item{Field: "col1", Operator: filter.Contains, Value: "pea"},
			wantSQL:  "SELECT id, col1, status FROM test_table WHERE col1 ILIKE $1",
			wantArgs: []any{"%pea%"},
		},
		{
			name:    "IsNull",
			item:    filter.Item{Field: "col1", Operator: filter.IsNull},
			wantSQL: "SELECT id, col1, status FROM test_table WHERE col1 IS NULL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := repo.applyFilters(repo.baseSelect(), []filter.Item{tt.item})
			require.NoError(t, err)

			sql, args, err := q.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestApplyFilters_RejectsUnknownColumn(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.applyFilters(repo.baseSelect(), []filter.Item{filter.Eq("password; --", 1)})
	require.Error(t, err)
	assert.True(t, apperror.IsAppError(err))

	_, err = repo.applyFilters(repo.baseSelect(), []filter.Item{{Field: "col1", Operator: "regex", Value: "x"}})
	require.Error(t, err)
}

func TestFilteredSelect_Search(t *testing.T) {
	repo := newTestRepo()

	q, err := repo.filteredSelect(domain.ListFilter{
		Search:  "app",
		Filters: []filter.Item{filter.Eq("status", "ACTIVE")},
	})
	require.NoError(t, err)

	sql, args, err := q.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, col1, status FROM test_table WHERE (col1 ILIKE $1) AND status = $2", sql)
	assert.Equal(t, []any{"%app%", "ACTIVE"}, args)
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "id ASC", false},
		{"col1", "col1 ASC", false},
		{"+col1", "col1 ASC", false},
		{"-status", "status DESC", false},
		{"-", "", true},
		{"name; DROP TABLE x", "", true},
	}

	for _, tt := range tests {
		got, err := repo.parseOrderBy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
