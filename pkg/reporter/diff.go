package reporter

import (
	"cmp"
	"fmt"
	"math"
)

// diffSymbols is indexed by cmp.Compare(newValue, oldValue)+1.
//
//nolint:gochecknoglobals // Read-only lookup table.
var diffSymbols = [3]string{"-", "=", "+"}

// DiffString describes the change between two runs of a counter: "=" when
// the values are equal, otherwise "+" or "-" followed by the magnitude
// with two decimals.
func DiffString(oldValue, newValue float64) string {
	symbol := diffSymbols[cmp.Compare(newValue, oldValue)+1]
	diff := math.Abs(newValue - oldValue)
	if diff == 0 {
		return symbol
	}
	return symbol + fmt.Sprintf("%.2f", diff)
}
