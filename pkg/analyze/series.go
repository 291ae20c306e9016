package analyze

import (
	"math"
	"sort"
	"strings"

	"github.com/fdtools/balancelog/pkg/models"
)

// LinePoint is one point of the cumulative daily-net series.
type LinePoint struct {
	Label string  `json:"label"` // "YYYY-MM-DD"
	Value float64 `json:"value"`
}

// BarDatum is one asset's net over the whole row set.
type BarDatum struct {
	Asset string  `json:"asset"`
	Net   float64 `json:"net"`
}

// DailyNet builds a running balance-change series, one point per day,
// date ascending.
func DailyNet(rows []models.Row) []LinePoint {
	if len(rows) == 0 {
		return nil
	}
	perDay := map[string]float64{}
	var days []string
	for _, r := range rows {
		day, _, _ := strings.Cut(r.Time, " ")
		if day == "" {
			continue
		}
		if _, seen := perDay[day]; !seen {
			days = append(days, day)
		}
		perDay[day] += r.Amount
	}
	sort.Strings(days)

	out := make([]LinePoint, 0, len(days))
	var cum float64
	for _, day := range days {
		cum += perDay[day]
		out = append(out, LinePoint{Label: day, Value: cum})
	}
	return out
}

// AssetNet sums net per asset and returns up to the 12 largest movers by
// absolute net, descending.
func AssetNet(rows []models.Row) []BarDatum {
	if len(rows) == 0 {
		return nil
	}
	nets := map[string]float64{}
	var assets []string
	for _, r := range rows {
		if _, seen := nets[r.Asset]; !seen {
			assets = append(assets, r.Asset)
		}
		nets[r.Asset] += r.Amount
	}

	out := make([]BarDatum, 0, len(assets))
	for _, a := range assets {
		out = append(out, BarDatum{Asset: a, Net: nets[a]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Net) > math.Abs(out[j].Net)
	})
	if len(out) > 12 {
		out = out[:12]
	}
	return out
}
