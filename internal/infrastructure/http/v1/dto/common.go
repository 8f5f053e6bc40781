// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"storekeep/internal/core/entity"
)

// DateLayout is the wire format of calendar dates (expiry dates).
const DateLayout = "2006-01-02"

// --- Base DTOs ---

// TimestampsResponse contains creation and modification times.
type TimestampsResponse struct {
	CreatedOn time.Time `json:"createdOn"`
	UpdatedOn time.Time `json:"updatedOn"`
}

// FromTimestamps creates TimestampsResponse from entity.Timestamps.
func FromTimestamps(t entity.Timestamps) TimestampsResponse {
	return TimestampsResponse{
		CreatedOn: t.CreatedOn,
		UpdatedOn: t.UpdatedOn,
	}
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	// Binding already checked the layout.
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
