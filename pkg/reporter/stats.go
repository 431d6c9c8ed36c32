package reporter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yaklabco/lintreport/pkg/layout"
)

// Stats holds the numeric counters of one analysis run, keyed by name
// (e.g. "module", "error", "statement").
type Stats map[string]float64

// statsHeader is the first row of a StatsTable.
//
//nolint:gochecknoglobals // Read-only table header.
var statsHeader = []string{"type", "number", "previous", "difference"}

// StatsTable builds a four-column table comparing stats with a previous
// run for the given keys. Keys missing from previous, or a nil previous,
// show "NC" (not computed) for both the old value and the difference.
func StatsTable(stats, previous Stats, keys ...string) *layout.Node {
	cells := make([]string, 0, len(statsHeader)*(len(keys)+1))
	cells = append(cells, statsHeader...)

	for _, key := range keys {
		current := stats[key]
		oldCell, diffCell := "NC", "NC"
		if old, ok := previous[key]; ok {
			oldCell = formatStat(old)
			diffCell = DiffString(old, current)
		}
		cells = append(cells, strings.ReplaceAll(key, "_", " "), formatStat(current), oldCell, diffCell)
	}

	return layout.NewTable(len(statsHeader), cells...)
}

// formatStat prints whole numbers without decimals and others with three.
func formatStat(value float64) string {
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return fmt.Sprintf("%.3f", value)
}
