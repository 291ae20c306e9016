package analyze

import (
	"math"
	"sort"

	"github.com/fdtools/balancelog/pkg/format"
	"github.com/fdtools/balancelog/pkg/models"
)

// SumByAsset folds rows into per-asset totals. The result depends only on
// the multiset of rows; summation order may wiggle the last float bits.
func SumByAsset(rows []models.Row) models.TotalsMap {
	acc := models.TotalsMap{}
	for _, r := range rows {
		t := acc[r.Asset]
		if t == nil {
			t = &models.Totals{}
			acc[r.Asset] = t
		}
		t.Add(r.Amount)
	}
	return acc
}

// TotalsByType groups rows by transaction type, then aggregates per asset
// within each group. Blank types bucket under "(unknown)".
func TotalsByType(rows []models.Row) models.TotalsByType {
	byType := map[string][]models.Row{}
	var order []string
	for _, r := range rows {
		key := r.TypeOrUnknown()
		if _, seen := byType[key]; !seen {
			order = append(order, key)
		}
		byType[key] = append(byType[key], r)
	}
	out := models.TotalsByType{}
	for _, key := range order {
		out[key] = SumByAsset(byType[key])
	}
	return out
}

// SummaryRows flattens per-type totals into table rows. Bucket values
// below the display epsilon read as zero; rows that zero out entirely are
// dropped. Sorted by label, then asset.
func SummaryRows(rows []models.Row) []models.SummaryRow {
	totals := TotalsByType(rows)
	var out []models.SummaryRow
	for label, byAsset := range totals {
		for asset, e := range byAsset {
			row := models.SummaryRow{Label: label, Asset: asset}
			if format.NonZero(e.Pos) {
				row.In = format.Round12(e.Pos)
			}
			if format.NonZero(e.Neg) {
				row.Out = format.Round12(e.Neg)
			}
			if format.NonZero(e.Net) {
				row.Net = format.Round12(e.Net)
			}
			if row.In != 0 || row.Out != 0 || row.Net != 0 {
				out = append(out, row)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Asset < out[j].Asset
	})
	return out
}

// RankedSummaryRows orders summary rows the way the display table does:
// types by descending magnitude via RankTypes, assets alphabetically
// within each type.
func RankedSummaryRows(rows []models.Row) []models.SummaryRow {
	summary := SummaryRows(rows)
	rank := map[string]int{}
	for i, key := range RankTypes(TotalsByType(rows)) {
		rank[key] = i
	}
	sort.SliceStable(summary, func(i, j int) bool {
		if rank[summary[i].Label] != rank[summary[j].Label] {
			return rank[summary[i].Label] < rank[summary[j].Label]
		}
		return summary[i].Asset < summary[j].Asset
	})
	return summary
}

// RankTypes orders type keys by display magnitude, the per-type sum of
// |net|+pos+neg across assets, descending. Ties break on name so the
// order is stable.
func RankTypes(totals models.TotalsByType) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	magnitude := func(m models.TotalsMap) float64 {
		var sum float64
		for _, t := range m {
			sum += math.Abs(t.Net) + t.Pos + t.Neg
		}
		return sum
	}
	sort.Slice(keys, func(i, j int) bool {
		mi, mj := magnitude(totals[keys[i]]), magnitude(totals[keys[j]])
		if mi != mj {
			return mi > mj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// SortedAssets returns the map's asset keys in ascending order.
func SortedAssets(m models.TotalsMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
