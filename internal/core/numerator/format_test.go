package numerator

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInventoryID(t *testing.T) {
	tests := []struct {
		value int64
		year  int
		want  string
	}{
		{0, 2025, "IN000002025"},
		{9, 2025, "IN000092025"},
		{10, 2025, "IN000102025"},
		{12, 2025, "IN000122025"},
		{99, 2025, "IN000992025"},
		{100, 2025, "IN001002025"},
		{999, 2025, "IN009992025"},
		{1000, 2025, "IN010002025"},
		{9999, 2025, "IN099992025"},
		{10000, 2025, "IN100002025"},
		{123456, 2031, "IN1234562031"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InventoryID(tt.value, tt.year), "value=%d", tt.value)
	}
}

func TestCategoryID(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{1, "CAT001"},
		{5, "CAT005"},
		{9, "CAT009"},
		{10, "CAT010"},
		{99, "CAT099"},
		{100, "CATO100"},
		{150, "CATO150"},
		{1000, "CATO1000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryID(tt.value), "value=%d", tt.value)
	}
}

func TestSupplierID(t *testing.T) {
	tests := []struct {
		value int64
		year  int
		want  string
	}{
		{7, 2025, "SU00072025"},
		{9, 2025, "SU00092025"},
		{10, 2025, "SU00102025"},
		{99, 2025, "SU00992025"},
		{100, 2025, "SU01002025"},
		{999, 2030, "SU09992030"},
		{1000, 2030, "SU10002030"},
		{25000, 2030, "SU250002030"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SupplierID(tt.value, tt.year), "value=%d", tt.value)
	}
}

func TestSupplierID_MatchesPublishedPattern(t *testing.T) {
	re := regexp.MustCompile(`^SU\d+2025$`)
	for _, v := range []int64{0, 1, 42, 512, 8000, 99999} {
		assert.Regexp(t, re, SupplierID(v, 2025))
	}
}

func TestProductSKU(t *testing.T) {
	tests := []struct {
		name  string
		parts SKUParts
		want  string
	}{
		{
			name:  "full",
			parts: SKUParts{ProductName: "Apple", CategoryName: "Fruits", Weight: decimal.RequireFromString("1.5"), Unit: "kg", Sequence: 3},
			want:  "AF-1.5kg-003",
		},
		{
			name:  "no weight",
			parts: SKUParts{ProductName: "banana", CategoryName: "fruit", Weight: decimal.Zero, Unit: "", Sequence: 1},
			want:  "BF-001",
		},
		{
			name:  "whole weight keeps fraction",
			parts: SKUParts{ProductName: "milk", CategoryName: "dairy", Weight: decimal.NewFromInt(2), Unit: "litres", Sequence: 42},
			want:  "MD-2.0li-042",
		},
		{
			name:  "single char unit",
			parts: SKUParts{ProductName: "rice", CategoryName: "grain", Weight: decimal.NewFromInt(5), Unit: "g", Sequence: 100},
			want:  "RG-5.0g-100",
		},
		{
			name:  "weight without unit",
			parts: SKUParts{ProductName: "salt", CategoryName: "spice", Weight: decimal.RequireFromString("0.25"), Sequence: 7},
			want:  "SS-0.25-007",
		},
		{
			name:  "trailing zeros of stored scale dropped",
			parts: SKUParts{ProductName: "oats", CategoryName: "grain", Weight: decimal.RequireFromString("1.250"), Unit: "kg", Sequence: 8},
			want:  "OG-1.25kg-008",
		},
		{
			name:  "missing names",
			parts: SKUParts{Sequence: 1234},
			want:  "-1234",
		},
		{
			name:  "negative weight is ignored",
			parts: SKUParts{ProductName: "x", CategoryName: "y", Weight: decimal.NewFromInt(-1), Unit: "kg", Sequence: 10},
			want:  "XY-010",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductSKU(tt.parts))
		})
	}
}

func TestFormatters_AreDeterministic(t *testing.T) {
	parts := SKUParts{ProductName: "Apple", CategoryName: "Fruits", Weight: decimal.RequireFromString("1.5"), Unit: "kg", Sequence: 3}
	for i := 0; i < 5; i++ {
		assert.Equal(t, ProductSKU(parts), ProductSKU(parts))
		assert.Equal(t, InventoryID(77, 2025), InventoryID(77, 2025))
		assert.Equal(t, CategoryID(77), CategoryID(77))
		assert.Equal(t, SupplierID(77, 2025), SupplierID(77, 2025))
	}
}

func TestMockSequencer(t *testing.T) {
	seq := NewMockSequencer(map[string]int64{CounterSKU: 4})

	v, err := seq.NextValue(nil, CounterSKU)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), v)

	v, err = seq.NextValue(nil, CounterSKU)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), v)

	_, err = seq.NextValue(nil, CounterSupplier)
	assert.Error(t, err)
	assert.Equal(t, []string{CounterSKU, CounterSKU, CounterSupplier}, seq.Calls())
}
