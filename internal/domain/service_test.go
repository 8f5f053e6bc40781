package domain_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/entity"
	"storekeep/internal/core/numerator"
	"storekeep/internal/domain"
	"storekeep/internal/domain/domaintest"
)

type widget struct {
	entity.Catalog
}

func newWidgetService() (*domain.CatalogService[*widget], *domaintest.MemoryRepo[*widget], *domaintest.TxRecorder) {
	repo := domaintest.NewMemoryRepo[*widget]()
	txm := &domaintest.TxRecorder{}
	svc := domain.NewCatalogService(domain.CatalogServiceConfig[*widget]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "widget",
	})
	return svc, repo, txm
}

func TestCreate_RunsBeforeHooksInsideTransaction(t *testing.T) {
	svc, repo, txm := newWidgetService()

	var hookInTx bool
	svc.Hooks().OnBeforeCreate(func(ctx context.Context, w *widget) error {
		hookInTx = domaintest.InTx(ctx)
		w.ID = "W1"
		return nil
	})

	err := svc.Create(context.Background(), &widget{Catalog: entity.Catalog{Name: "bolt"}})
	require.NoError(t, err)

	assert.True(t, hookInTx)
	assert.Equal(t, 1, txm.Begun)
	assert.Len(t, repo.All(), 1)
}

func TestCreate_ValidationStopsBeforeHooks(t *testing.T) {
	svc, repo, txm := newWidgetService()

	called := false
	svc.Hooks().OnBeforeCreate(func(ctx context.Context, w *widget) error {
		called = true
		return nil
	})

	err := svc.Create(context.Background(), &widget{})
	require.Error(t, err)

	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))
	assert.False(t, called)
	assert.Zero(t, txm.Begun)
	assert.Empty(t, repo.All())
}

func TestCreate_HookErrorRollsBack(t *testing.T) {
	svc, repo, txm := newWidgetService()
	hookErr := apperror.NewNotFound("counter", "widget")

	svc.Hooks().OnBeforeCreate(func(ctx context.Context, w *widget) error {
		return hookErr
	})

	err := svc.Create(context.Background(), &widget{Catalog: entity.Catalog{Name: "bolt"}})
	assert.ErrorIs(t, err, hookErr)
	assert.Equal(t, 1, txm.RolledBack)
	assert.Empty(t, repo.All())
}

func TestCreate_RepoErrorIsWrapped(t *testing.T) {
	svc, repo, txm := newWidgetService()
	repo.CreateErr = errors.New("disk full")

	err := svc.Create(context.Background(), &widget{Catalog: entity.Catalog{ID: "W1", Name: "bolt"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create widget")
	assert.ErrorIs(t, err, repo.CreateErr)
	assert.Equal(t, 1, txm.RolledBack)
}

func TestCreate_AfterHookFailureDoesNotFail(t *testing.T) {
	svc, repo, _ := newWidgetService()
	svc.Hooks().OnAfterCreate(func(ctx context.Context, w *widget) error {
		return errors.New("notify failed")
	})

	err := svc.Create(context.Background(), &widget{Catalog: entity.Catalog{ID: "W1", Name: "bolt"}})
	require.NoError(t, err)
	assert.Len(t, repo.All(), 1)
}

func TestGetByID_NotFoundNamesEntity(t *testing.T) {
	svc, _, _ := newWidgetService()

	_, err := svc.GetByID(context.Background(), "missing")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	assert.Equal(t, "widget", appErr.Details["entity"])
	assert.Equal(t, "missing", appErr.Details["id"])
}

func TestReads_UseReadOnlyTransaction(t *testing.T) {
	svc, repo, txm := newWidgetService()
	require.NoError(t, repo.Create(context.Background(), &widget{Catalog: entity.Catalog{ID: "W1", Name: "bolt"}}))

	_, err := svc.GetByID(context.Background(), "W1")
	require.NoError(t, err)

	res, err := svc.List(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	assert.Equal(t, 2, txm.ReadOnlys)
	assert.Zero(t, txm.Begun)
}

func TestUpdate_RunsAfterUpdateHooks(t *testing.T) {
	svc, repo, _ := newWidgetService()
	w := &widget{Catalog: entity.Catalog{ID: "W1", Name: "bolt"}}
	require.NoError(t, repo.Create(context.Background(), w))

	var seen string
	svc.Hooks().OnAfterUpdate(func(ctx context.Context, w *widget) error {
		seen = w.Name
		return errors.New("ignored")
	})

	w.Name = "nut"
	require.NoError(t, svc.Update(context.Background(), w))
	assert.Equal(t, "nut", seen)
}

func TestUpdate_RunsBeforeUpdateHooks(t *testing.T) {
	svc, repo, _ := newWidgetService()
	w := &widget{Catalog: entity.Catalog{ID: "W1", Name: "bolt"}}
	require.NoError(t, repo.Create(context.Background(), w))

	touched := false
	svc.Hooks().OnBeforeUpdate(func(ctx context.Context, w *widget) error {
		touched = true
		return nil
	})

	w.Name = "nut"
	require.NoError(t, svc.Update(context.Background(), w))
	assert.True(t, touched)

	got, err := svc.GetByID(context.Background(), "W1")
	require.NoError(t, err)
	assert.Equal(t, "nut", got.Name)
}

func TestRequireExisting(t *testing.T) {
	ctx := context.Background()
	exists := func(ctx context.Context, id string) (bool, error) { return id == "SU00012025", nil }

	assert.NoError(t, domain.RequireExisting(ctx, exists, "supplierId", "SU00012025"))

	err := domain.RequireExisting(ctx, exists, "supplierId", "SU99992025")
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))

	err = domain.RequireExisting(ctx, exists, "supplierId", "")
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))

	failing := func(ctx context.Context, id string) (bool, error) { return false, errors.New("db down") }
	err = domain.RequireExisting(ctx, failing, "supplierId", "x")
	assert.False(t, apperror.IsAppError(err))
}

func TestNextIdentifier(t *testing.T) {
	ctx := context.Background()
	seq := numerator.NewMockSequencer(map[string]int64{numerator.CounterSupplier: 7})

	v, err := domain.NextIdentifier(ctx, seq, numerator.CounterSupplier)
	require.NoError(t, err)
	assert.EqualValues(t, 7, v)

	t.Run("missing counter is a server error", func(t *testing.T) {
		_, err := domain.NextIdentifier(ctx, seq, numerator.CounterInventory)
		require.Error(t, err)
		assert.Equal(t, apperror.CodeInternal, mustCode(t, err))
		assert.Equal(t, http.StatusInternalServerError, apperror.GetHTTPStatus(err))
		assert.False(t, apperror.IsNotFound(err))
	})

	t.Run("integrity error is kept", func(t *testing.T) {
		broken := &numerator.MockSequencer{
			NextValueFunc: func(ctx context.Context, name string) (int64, error) {
				return 0, apperror.NewIntegrity("counter", name)
			},
		}
		_, err := domain.NextIdentifier(ctx, broken, numerator.CounterSKU)
		assert.Equal(t, apperror.CodeIntegrity, mustCode(t, err))
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		cause := errors.New("conn reset")
		broken := &numerator.MockSequencer{
			NextValueFunc: func(ctx context.Context, name string) (int64, error) { return 0, cause },
		}
		_, err := domain.NextIdentifier(ctx, broken, numerator.CounterSKU)
		assert.Equal(t, apperror.CodeInternal, mustCode(t, err))
		assert.ErrorIs(t, err, cause)
	})
}

func mustCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return appErr.Code
}
