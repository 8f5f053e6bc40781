// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// CatalogRouteHandler defines the interface for catalog handlers.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
}

// RegisterCatalogRoutes registers the list/create/get routes of a resource.
// keyParam names the path parameter of the single-record route.
//
// Usage:
//
//	handler := handlers.NewSupplierHandler(baseHandler, services.Suppliers)
//	RegisterCatalogRoutes(router.Group("/supplier"), handler, "id")
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, keyParam string) {
	group.GET("/", handler.List)
	group.POST("/", handler.Create)
	group.GET("/:"+keyParam, handler.Get)
}
