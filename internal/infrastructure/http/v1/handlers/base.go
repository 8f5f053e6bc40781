package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/entity"
	"storekeep/internal/domain"
	"storekeep/internal/domain/filter"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, bindingError(err))
		return false
	}
	return true
}

// Error registers err on the Gin context and aborts the request.
// The JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseIntQuery parses integer query parameter with default value.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// ListFilter reads limit, offset, search and orderBy, plus the equality
// filters in columns (query parameter -> column).
// Without a positive limit every matching row is returned; a limit is capped at MaxListLimit.
func (h *BaseHandler) ListFilter(c *gin.Context, columns map[string]string) (domain.ListFilter, error) {
	var f domain.ListFilter
	f.Search = c.Query("search")
	f.OrderBy = c.Query("orderBy")

	f.Limit = min(max(h.ParseIntQuery(c, "limit", 0), 0), domain.MaxListLimit)
	f.Offset = max(h.ParseIntQuery(c, "offset", 0), 0)

	for param, column := range columns {
		val := c.Query(param)
		if val == "" {
			continue
		}
		if param == "status" && !entity.Status(val).IsValid() {
			return f, apperror.NewValidation("unknown status").WithDetail("status", val)
		}
		f.Filters = append(f.Filters, filter.Eq(column, val))
	}
	return f, nil
}

// TotalCountHeader carries the number of rows matching a list request before paging.
const TotalCountHeader = "X-Total-Count"

// Created sends 201 response with data.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
