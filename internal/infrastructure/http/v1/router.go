package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storekeep/internal/core/numerator"
	"storekeep/internal/core/tx"
	"storekeep/internal/domain/catalogs/category"
	"storekeep/internal/domain/catalogs/product"
	"storekeep/internal/domain/catalogs/supplier"
	"storekeep/internal/domain/inventory"
	"storekeep/internal/infrastructure/http/v1/handlers"
	"storekeep/internal/infrastructure/http/v1/middleware"
	"storekeep/internal/infrastructure/storage/postgres"
	"storekeep/internal/infrastructure/storage/postgres/catalog_repo"
	"storekeep/pkg/logger"
	"storekeep/pkg/metrics"
)

// Services are the domain services exposed over HTTP.
type Services struct {
	Categories *category.Service
	Suppliers  *supplier.Service
	Products   *product.Service
	Inventory  *inventory.Service
}

// NewServices builds the PostgreSQL repositories and the services on top of them.
func NewServices(db postgres.QuerierProvider, txm tx.Manager, seq numerator.Sequencer) Services {
	categoryRepo := catalog_repo.NewCategoryRepo(db)
	supplierRepo := catalog_repo.NewSupplierRepo(db)
	productRepo := catalog_repo.NewProductRepo(db)
	inventoryRepo := catalog_repo.NewInventoryRepo(db)

	return Services{
		Categories: category.NewService(categoryRepo, txm, seq),
		Suppliers:  supplier.NewService(supplierRepo, txm, seq),
		Products:   product.NewService(productRepo, txm, seq, categoryRepo, supplierRepo),
		Inventory:  inventory.NewService(inventoryRepo, txm, seq, productRepo, supplierRepo),
	}
}

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Services Services

	// DB backs the readiness probe and pool stats
	DB handlers.Database

	// Counters lists counter values on /health/info
	Counters handlers.CounterSnapshotter

	// Logger for request logging
	Logger *logger.Logger

	// Metrics records request durations; nil disables recording
	Metrics *metrics.Metrics

	// Gatherer is exposed on /metrics; nil disables the endpoint
	Gatherer prometheus.Gatherer

	Version string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics(cfg.Metrics))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Counters, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	registerRoutes(router, cfg.Services)

	return router, nil
}

// registerRoutes registers the entity endpoints.
func registerRoutes(router *gin.Engine, svc Services) {
	baseHandler := handlers.NewBaseHandler()

	// --- PRODUCTS + CATEGORIES ---
	{
		products := router.Group("/product")
		categoryHandler := handlers.NewCategoryHandler(baseHandler, svc.Categories)
		products.GET("/category", categoryHandler.List)
		products.POST("/category", categoryHandler.Create)

		RegisterCatalogRoutes(products, handlers.NewProductHandler(baseHandler, svc.Products), "sku")
	}

	// --- SUPPLIERS ---
	{
		handler := handlers.NewSupplierHandler(baseHandler, svc.Suppliers)
		RegisterCatalogRoutes(router.Group("/supplier"), handler, "id")
	}

	// --- INVENTORY ---
	{
		group := router.Group("/inventory")
		handler := handlers.NewInventoryHandler(baseHandler, svc.Inventory)
		RegisterCatalogRoutes(group, handler, "id")
		group.PUT("/:id/units", handler.SetUnits)
	}
}
