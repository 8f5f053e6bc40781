// Package entity provides core domain entities.
package entity

import (
	"context"
	"time"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Identifiable exposes the business identifier assigned at creation.
type Identifiable interface {
	GetID() string
}

// Entity is what generic services and repositories operate on.
type Entity interface {
	Validatable
	Identifiable
}

// Clock returns the current time. Replaced in tests.
var Clock = func() time.Time { return time.Now().UTC() }

// Timestamps carries creation and modification times.
// Both are UTC; CreatedOn never changes after the first Stamp.
type Timestamps struct {
	CreatedOn time.Time `db:"created_on" json:"createdOn"`
	UpdatedOn time.Time `db:"updated_on" json:"updatedOn"`
}

// Stamp sets CreatedOn (once) and UpdatedOn to now.
func (t *Timestamps) Stamp() {
	now := Clock()
	if t.CreatedOn.IsZero() {
		t.CreatedOn = now
	}
	t.UpdatedOn = now
}

// Touch updates the modification time.
func (t *Timestamps) Touch() {
	t.UpdatedOn = Clock()
}
