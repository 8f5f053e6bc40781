// Package numerator provides domain contracts for business identifier generation.
// Implementations live in infrastructure layer.
package numerator

import "context"

// Counter names, one persisted row per identifier namespace.
const (
	CounterInventory       = "inventoryId"
	CounterSKU             = "skuNumber"
	CounterProductCategory = "productCategory"
	CounterSupplier        = "supplier"
)

// Counters lists every counter the service expects to be seeded.
var Counters = []string{
	CounterInventory,
	CounterSKU,
	CounterProductCategory,
	CounterSupplier,
}

// Sequencer hands out values from named persisted counters.
//
// NextValue returns the stored value before incrementing and persists value+1.
// The counter row must exist: a missing row yields apperror NotFound, an update
// that changes no row yields apperror Integrity. Two concurrent callers on the
// same name never observe the same value.
//
// When ctx carries a transaction, implementations must join it so that the
// increment commits or rolls back with the caller's writes.
type Sequencer interface {
	NextValue(ctx context.Context, counterName string) (int64, error)
}
