package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/fdtools/balancelog/pkg/models"
	"github.com/fdtools/balancelog/pkg/parser"
)

// Filters narrow a parsed row set before aggregation. The presentation
// layer supplies them fresh on every invocation; nothing here persists.
type Filters struct {
	Start  string // "YYYY-MM-DD HH:MM:SS", UTC; empty = unbounded
	End    string
	Symbol string          // case-insensitive substring match
	Types  map[string]bool // empty = all types; blank row types match "(unknown)"
}

// Apply returns the rows passing every filter. Rows without a valid
// timestamp never pass: comparisons against an unknown instant cannot
// hold, so they are excluded from all time-ordered work.
func (f Filters) Apply(rows []models.Row) []models.Row {
	var t0, t1 time.Time
	if f.Start != "" {
		if t0 = parser.ParseUTC(f.Start); t0.IsZero() {
			return nil
		}
	}
	if f.End != "" {
		if t1 = parser.ParseUTC(f.End); t1.IsZero() {
			return nil
		}
	}
	symbol := strings.ToUpper(strings.TrimSpace(f.Symbol))

	var out []models.Row
	for _, r := range rows {
		if r.TS.IsZero() {
			continue
		}
		if !t0.IsZero() && r.TS.Before(t0) {
			continue
		}
		if !t1.IsZero() && r.TS.After(t1) {
			continue
		}
		if symbol != "" && !strings.Contains(strings.ToUpper(r.Symbol), symbol) {
			continue
		}
		if len(f.Types) > 0 && !f.Types[r.TypeOrUnknown()] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DetectedTypes lists the distinct type keys present, sorted, for the
// caller's type-selection UI.
func DetectedTypes(rows []models.Row) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		key := r.TypeOrUnknown()
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// TypeSet builds the Types map from a list of selected type keys.
func TypeSet(types []string) map[string]bool {
	if len(types) == 0 {
		return nil
	}
	set := make(map[string]bool, len(types))
	for _, t := range types {
		if t = strings.TrimSpace(t); t != "" {
			set[t] = true
		}
	}
	return set
}

// CountSymbols reports the number of distinct non-empty symbols.
func CountSymbols(rows []models.Row) int {
	seen := map[string]bool{}
	for _, r := range rows {
		if r.Symbol != "" {
			seen[r.Symbol] = true
		}
	}
	return len(seen)
}
