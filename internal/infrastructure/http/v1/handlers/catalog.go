// Package handlers provides HTTP request handlers.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storekeep/internal/core/entity"
	"storekeep/internal/domain"
)

// CatalogHandler provides generic list/get/create handlers for an entity.
type CatalogHandler[T entity.Entity, CreateDTO any] struct {
	*BaseHandler
	service *domain.CatalogService[T]

	// query parameter -> column, for equality filters on List
	filters map[string]string

	// path parameter holding the key ("id" unless set)
	idParam string

	mapCreateDTO func(dto CreateDTO) T
	mapToDTO     func(entity T) any
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T entity.Entity, CreateDTO any] struct {
	Service      *domain.CatalogService[T]
	Filters      map[string]string
	IDParam      string
	MapCreateDTO func(dto CreateDTO) T
	MapToDTO     func(entity T) any
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T entity.Entity, CreateDTO any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, CreateDTO],
) *CatalogHandler[T, CreateDTO] {
	idParam := cfg.IDParam
	if idParam == "" {
		idParam = "id"
	}
	return &CatalogHandler[T, CreateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		filters:      cfg.Filters,
		idParam:      idParam,
		mapCreateDTO: cfg.MapCreateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// List handles GET /{entity}/. The body is a JSON array; the unpaged
// total goes into the X-Total-Count header.
func (h *CatalogHandler[T, CreateDTO]) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter, err := h.ListFilter(c, h.filters)
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = h.mapToDTO(item)
	}

	c.Header(TotalCountHeader, strconv.FormatInt(result.TotalCount, 10))
	h.OK(c, items)
}

// Get handles GET /{entity}/:key. A missing record is a 404.
func (h *CatalogHandler[T, CreateDTO]) Get(c *gin.Context) {
	e, err := h.service.GetByID(c.Request.Context(), c.Param(h.idParam))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(e))
}

// Create handles POST /{entity}/. The identifier is always generated.
func (h *CatalogHandler[T, CreateDTO]) Create(c *gin.Context) {
	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	e := h.mapCreateDTO(req)
	if err := h.service.Create(c.Request.Context(), e); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, h.mapToDTO(e))
}
