package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/entity"
	"storekeep/internal/core/numerator"
	"storekeep/internal/domain/catalogs/category"
	"storekeep/internal/domain/catalogs/product"
	"storekeep/internal/domain/catalogs/supplier"
	"storekeep/internal/domain/domaintest"
	"storekeep/internal/domain/inventory"
	"storekeep/internal/infrastructure/storage/postgres"
	"storekeep/pkg/logger"
	"storekeep/pkg/metrics"
)

type memoryProducts struct {
	*domaintest.MemoryRepo[*product.Product]
}

func (m *memoryProducts) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	return m.Find(func(p *product.Product) bool { return p.Barcode == barcode }, barcode)
}

type memoryInventory struct {
	*domaintest.MemoryRepo[*inventory.Inventory]
}

func (m *memoryInventory) GetForUpdate(ctx context.Context, id string) (*inventory.Inventory, error) {
	return m.GetByID(ctx, id)
}

type fakeDB struct {
	pingErr error
}

func (f fakeDB) Ping(ctx context.Context) error { return f.pingErr }

func (f fakeDB) Stats() postgres.PoolStats { return postgres.PoolStats{MaxConns: 4} }

type fakeCounters map[string]int64

func (f fakeCounters) Snapshot(ctx context.Context) (map[string]int64, error) { return f, nil }

type testServer struct {
	router *gin.Engine
	seq    *numerator.MockSequencer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Cleanup(logger.SetDefault(logger.Nop()))

	prevClock := entity.Clock
	entity.Clock = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { entity.Clock = prevClock })

	seq := numerator.NewMockSequencer(map[string]int64{
		numerator.CounterSupplier:        7,
		numerator.CounterProductCategory: 99,
		numerator.CounterSKU:             3,
		numerator.CounterInventory:       12,
	})
	txm := &domaintest.TxRecorder{}

	categories := domaintest.NewMemoryRepo[*category.ProductCategory]()
	suppliers := domaintest.NewMemoryRepo[*supplier.Supplier]()
	products := &memoryProducts{domaintest.NewMemoryRepo[*product.Product]()}
	stock := &memoryInventory{domaintest.NewMemoryRepo[*inventory.Inventory]()}

	reg := prometheus.NewRegistry()
	router, err := NewRouter(RouterConfig{
		Services: Services{
			Categories: category.NewService(categories, txm, seq),
			Suppliers:  supplier.NewService(suppliers, txm, seq),
			Products:   product.NewService(products, txm, seq, categories, suppliers),
			Inventory:  inventory.NewService(stock, txm, seq, products, suppliers),
		},
		DB:       fakeDB{},
		Counters: fakeCounters{numerator.CounterSupplier: 7},
		Logger:   logger.Nop(),
		Metrics:  metrics.New(reg),
		Gatherer: reg,
		Version:  "test",
	})
	require.NoError(t, err)

	return &testServer{router: router, seq: seq}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

// list issues a GET against a list endpoint and decodes the JSON array body.
func (s *testServer) list(t *testing.T, path string) (int, []map[string]any, int64) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return w.Code, nil, 0
	}

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items), w.Body.String())
	total, err := strconv.ParseInt(w.Header().Get("X-Total-Count"), 10, 64)
	require.NoError(t, err)
	return w.Code, items, total
}

func TestSupplier_CreateAndGet(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodPost, "/supplier/", map[string]any{
		"id":      "CLIENT-ID",
		"name":    "Acme Foods",
		"contact": map[string]any{"phone": "+234 800 000", "email": "sales@acme.io"},
		"address": map[string]any{"city": "Lagos", "postalCode": "100001"},
	})
	require.Equal(t, http.StatusCreated, code, body)

	assert.Equal(t, "SU00072025", body["id"])
	assert.Regexp(t, `^SU\d+\d{4}$`, body["id"])
	assert.Equal(t, "ACTIVE", body["status"])
	assert.Equal(t, "2025-03-01T10:00:00Z", body["createdOn"])
	assert.Equal(t, "Lagos", body["address"].(map[string]any)["city"])
	assert.Equal(t, "sales@acme.io", body["contact"].(map[string]any)["email"])

	calls := len(s.seq.Calls())

	code, body = s.do(t, http.MethodGet, "/supplier/SU00072025", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Acme Foods", body["name"])

	code, items, total := s.list(t, "/supplier/")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, items, 1)
	assert.Equal(t, "SU00072025", items[0]["id"])
	assert.EqualValues(t, 1, total)

	assert.Len(t, s.seq.Calls(), calls, "reads must not consume counter values")
}

func TestSupplier_GetMissingIs404(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodGet, "/supplier/SU99992025", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestSupplier_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodPost, "/supplier/", map[string]any{
		"name":    "Acme",
		"contact": map[string]any{"email": "not-an-email"},
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Contains(t, body["details"], "contact.email")

	code, body = s.do(t, http.MethodPost, "/supplier/", map[string]any{
		"name":   "Acme",
		"status": "SLEEPING",
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["details"], "status")

	assert.Empty(t, s.seq.Calls())
}

func TestProduct_Flow(t *testing.T) {
	s := newTestServer(t)

	code, sup := s.do(t, http.MethodPost, "/supplier/", map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusCreated, code)

	code, cat := s.do(t, http.MethodPost, "/product/category", map[string]any{"name": "Fruits"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "CAT099", cat["id"])

	code, prod := s.do(t, http.MethodPost, "/product/", map[string]any{
		"sku":               "IGNORED",
		"name":              "Apple",
		"supplierId":        sup["id"],
		"categoryId":        cat["id"],
		"weight":            1.5,
		"unitOfMeasurement": "kg",
	})
	require.Equal(t, http.StatusCreated, code, prod)
	assert.Equal(t, "AF-1.5kg-003", prod["sku"])
	assert.Equal(t, "ACTIVE", prod["status"])

	code, got := s.do(t, http.MethodGet, "/product/AF-1.5kg-003", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Apple", got["name"])

	code, _ = s.do(t, http.MethodGet, "/product/NOPE-001", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, cats, _ := s.list(t, "/product/category")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, cats, 1)
	assert.Equal(t, "Fruits", cats[0]["name"])

	code, products, _ := s.list(t, "/product/")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, products, 1)
	assert.Equal(t, "AF-1.5kg-003", products[0]["sku"])
}

func TestSupplier_CreateWithoutCounterIsServerError(t *testing.T) {
	s := newTestServer(t)
	s.seq.NextValueFunc = func(ctx context.Context, name string) (int64, error) {
		return 0, apperror.NewNotFound("counter", name)
	}

	code, body := s.do(t, http.MethodPost, "/supplier/", map[string]any{"name": "Acme"})
	assert.GreaterOrEqual(t, code, http.StatusInternalServerError)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])

	_, items, _ := s.list(t, "/supplier/")
	assert.Empty(t, items)
}

func TestProduct_UnknownCategory(t *testing.T) {
	s := newTestServer(t)

	code, sup := s.do(t, http.MethodPost, "/supplier/", map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusCreated, code)

	code, body := s.do(t, http.MethodPost, "/product/", map[string]any{
		"name":       "Apple",
		"supplierId": sup["id"],
		"categoryId": "CAT404",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestInventory_CreateAndSetUnits(t *testing.T) {
	s := newTestServer(t)

	_, sup := s.do(t, http.MethodPost, "/supplier/", map[string]any{"name": "Acme"})
	_, cat := s.do(t, http.MethodPost, "/product/category", map[string]any{"name": "Fruits"})
	_, prod := s.do(t, http.MethodPost, "/product/", map[string]any{
		"name": "Apple", "supplierId": sup["id"], "categoryId": cat["id"],
	})

	code, inv := s.do(t, http.MethodPost, "/inventory/", map[string]any{
		"productSku":       prod["sku"],
		"supplierId":       sup["id"],
		"unitsAvailable":   0,
		"reorderPoint":     10,
		"unitSellingPrice": "2.50",
		"expiryDate":       "2025-12-31",
	})
	require.Equal(t, http.StatusCreated, code, inv)
	assert.Equal(t, "IN000122025", inv["id"])
	assert.Equal(t, "OUT_OF_STOCK", inv["status"])
	assert.Equal(t, "2025-12-31", inv["expiryDate"])
	assert.Equal(t, true, inv["belowReorderPoint"])

	code, upd := s.do(t, http.MethodPut, "/inventory/IN000122025/units", map[string]any{"unitsAvailable": 40})
	require.Equal(t, http.StatusOK, code, upd)
	assert.EqualValues(t, 40, upd["unitsAvailable"])
	assert.Equal(t, "OUT_OF_STOCK", upd["status"])

	code, _ = s.do(t, http.MethodPut, "/inventory/IN999992025/units", map[string]any{"unitsAvailable": 1})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(t, http.MethodPut, "/inventory/IN000122025/units", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestInventory_BadExpiryDate(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodPost, "/inventory/", map[string]any{
		"productSku": "AF-001",
		"supplierId": "SU00012025",
		"expiryDate": "31/12/2025",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["details"], "expiryDate")
}

func TestList_ReturnsEveryRecordAsArray(t *testing.T) {
	s := newTestServer(t)

	for i := range 60 {
		code, body := s.do(t, http.MethodPost, "/supplier/", map[string]any{"name": "Supplier " + strconv.Itoa(i)})
		require.Equal(t, http.StatusCreated, code, body)
	}

	code, items, total := s.list(t, "/supplier/")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, items, 60)
	assert.EqualValues(t, 60, total)
	assert.Equal(t, "SU00072025", items[0]["id"])
	assert.Equal(t, "SU00662025", items[59]["id"])
}

func TestList_QueryParameters(t *testing.T) {
	s := newTestServer(t)

	for i := range 3 {
		code, _ := s.do(t, http.MethodPost, "/supplier/", map[string]any{"name": "Supplier " + strconv.Itoa(i)})
		require.Equal(t, http.StatusCreated, code)
	}

	code, items, total := s.list(t, "/supplier/?limit=2&offset=1")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, items, 2)
	assert.Equal(t, "SU00082025", items[0]["id"])
	assert.EqualValues(t, 3, total)

	code, items, _ = s.list(t, "/supplier/?limit=100000&offset=-3")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, items, 3)

	code, items, total = s.list(t, "/inventory/")
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Zero(t, total)

	code, body := s.do(t, http.MethodGet, "/product/?status=SLEEPING", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodGet, "/health/live", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	code, _ = s.do(t, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, code)

	code, body = s.do(t, http.MethodGet, "/health/info", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "test", body["version"])
	assert.EqualValues(t, 7, body["counters"].(map[string]any)[numerator.CounterSupplier])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/health/live", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `storekeep_http_request_duration_seconds_count{method="GET",route="/health/live",status="200"} 1`)
}

func TestResponsesCarryRequestID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}
