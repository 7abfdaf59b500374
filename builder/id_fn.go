// City naming schemes used by constructors.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a city name from its zero-based index.
// It must be pure: the same idx always yields the same name.
type IDFn func(idx int) string

// cityPrefix is the prefix of CityIDFn names.
const cityPrefix = "City "

// CityIDFn returns "City <idx>", e.g. 0→"City 0". It is the default scheme
// and matches the names of the historical random-map generator.
func CityIDFn(idx int) string {
	return cityPrefix + strconv.Itoa(idx)
}

// DefaultIDFn returns the decimal string of idx, e.g. 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics if idx is out of range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the “Excel-style” column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + decimal index, e.g. "N0", "N1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
