package numerator

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Identifier prefixes.
const (
	PrefixInventory = "IN"
	PrefixCategory  = "CAT"
	PrefixSupplier  = "SU"

	// prefixCategoryWide is used for category values of three or more digits.
	// The letter O (not zero) matches identifiers already stored in production.
	prefixCategoryWide = "CATO"
)

// InventoryID renders a stock record id: IN + zero-padded value + year.
// Values up to 9999 get zeros so that one to four digits become five
// characters; larger values are written as is.
//
//	InventoryID(12, 2025)    == "IN000122025"
//	InventoryID(10000, 2025) == "IN100002025"
func InventoryID(value int64, year int) string {
	var zeros string
	switch {
	case value <= 9:
		zeros = "0000"
	case value <= 99:
		zeros = "000"
	case value <= 999:
		zeros = "00"
	case value <= 9999:
		zeros = "0"
	}
	return PrefixInventory + zeros + strconv.FormatInt(value, 10) + strconv.Itoa(year)
}

// CategoryID renders a product category id.
//
//	CategoryID(5)   == "CAT005"
//	CategoryID(99)  == "CAT099"
//	CategoryID(150) == "CATO150"
func CategoryID(value int64) string {
	switch {
	case value <= 9:
		return PrefixCategory + "00" + strconv.FormatInt(value, 10)
	case value <= 99:
		return PrefixCategory + "0" + strconv.FormatInt(value, 10)
	default:
		return prefixCategoryWide + strconv.FormatInt(value, 10)
	}
}

// SupplierID renders a supplier id: SU + zero-padded value + year.
//
//	SupplierID(7, 2025)   == "SU00072025"
//	SupplierID(999, 2030) == "SU09992030"
func SupplierID(value int64, year int) string {
	var zeros string
	switch {
	case value <= 9:
		zeros = "000"
	case value <= 99:
		zeros = "00"
	case value <= 999:
		zeros = "0"
	}
	return PrefixSupplier + zeros + strconv.FormatInt(value, 10) + strconv.Itoa(year)
}

// SKUParts holds the inputs of a product SKU.
type SKUParts struct {
	ProductName  string
	CategoryName string
	Weight       decimal.Decimal
	Unit         string
	Sequence     int64
}

// ProductSKU renders a stock keeping unit.
// Missing parts contribute nothing; the function never fails.
//
// Apple in Fruits weighing 1.5 kg with sequence 3 gives "AF-1.5kg-003";
// banana in fruit with no weight and sequence 1 gives "BF-001".
func ProductSKU(p SKUParts) string {
	var b strings.Builder
	b.WriteString(initial(p.ProductName))
	b.WriteString(initial(p.CategoryName))

	if p.Weight.IsPositive() {
		b.WriteByte('-')
		b.WriteString(formatWeight(p.Weight))
		b.WriteString(unitAbbrev(p.Unit))
	}

	b.WriteByte('-')
	b.WriteString(skuSequence(p.Sequence))
	return b.String()
}

// initial returns the upper-cased first character of s.
func initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}

// unitAbbrev keeps the first one or two characters of the unit.
func unitAbbrev(unit string) string {
	runes := []rune(unit)
	if len(runes) <= 2 {
		return unit
	}
	return string(runes[:2])
}

// formatWeight always keeps a fractional part: 2 -> "2.0", 1.5 -> "1.5".
func formatWeight(w decimal.Decimal) string {
	s := w.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func skuSequence(seq int64) string {
	s := strconv.FormatInt(seq, 10)
	switch {
	case seq <= 9:
		return "00" + s
	case seq <= 99:
		return "0" + s
	default:
		return s
	}
}
