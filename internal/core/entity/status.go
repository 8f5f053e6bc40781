package entity

import (
	"context"

	"storekeep/internal/core/apperror"
)

// Status is the lifecycle state of a product, supplier or stock record.
type Status string

const (
	StatusPending      Status = "PENDING"
	StatusConfirmed    Status = "CONFIRMED"
	StatusDelivered    Status = "DELIVERED"
	StatusCancelled    Status = "CANCELLED"
	StatusCompleted    Status = "COMPLETED"
	StatusReturned     Status = "RETURNED"
	StatusInProgress   Status = "IN_PROGRESS"
	StatusInStock      Status = "IN_STOCK"
	StatusOutOfStock   Status = "OUT_OF_STOCK"
	StatusReserved     Status = "RESERVED"
	StatusDiscontinued Status = "DISCONTINUED"
	StatusExpired      Status = "EXPIRED"
	StatusActive       Status = "ACTIVE"
	StatusInactive     Status = "INACTIVE"
	StatusTerminated   Status = "TERMINATED"
)

var knownStatuses = map[Status]struct{}{
	StatusPending:      {},
	StatusConfirmed:    {},
	StatusDelivered:    {},
	StatusCancelled:    {},
	StatusCompleted:    {},
	StatusReturned:     {},
	StatusInProgress:   {},
	StatusInStock:      {},
	StatusOutOfStock:   {},
	StatusReserved:     {},
	StatusDiscontinued: {},
	StatusExpired:      {},
	StatusActive:       {},
	StatusInactive:     {},
	StatusTerminated:   {},
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	_, ok := knownStatuses[s]
	return ok
}

func (s Status) String() string {
	return string(s)
}

// Lifecycle is embedded by entities that carry a status.
type Lifecycle struct {
	Status Status `db:"status" json:"status"`
}

// Activate applies the creation default: an unset status becomes ACTIVE.
func (l *Lifecycle) Activate() {
	if l.Status == "" {
		l.Status = StatusActive
	}
}

// ValidateStatus accepts an empty status (defaulted later) or a known one.
func (l *Lifecycle) ValidateStatus(ctx context.Context) error {
	if l.Status == "" || l.Status.IsValid() {
		return nil
	}
	return apperror.NewValidation("unknown status").
		WithDetail("field", "status").
		WithDetail("value", string(l.Status))
}
