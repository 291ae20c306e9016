package audit

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/fdtools/balancelog/pkg/analyze"
	"github.com/fdtools/balancelog/pkg/format"
	"github.com/fdtools/balancelog/pkg/models"
)

// dustAssets are wrapped/stable tokens whose sub-1e-7 final balances are
// rounding artifacts, not holdings, and get dropped from the report.
var dustAssets = []string{"BFUSD", "FDUSD", "LDUSDT"}

const dustThreshold = 1e-7

// Params configure one audit pass.
type Params struct {
	Anchor   time.Time
	End      time.Time          // zero = unbounded
	Baseline map[string]float64 // nil = not provided; final balances need it
	Transfer *models.AssetAmount
}

// Report is the audit outcome: the rendered text plus the structured
// final balances. The narrative reuses Final directly, so the two views
// share one arithmetic and can never disagree.
type Report struct {
	Text  string
	Final []models.AssetAmount // nil unless a baseline was provided
}

// Build filters rows to the anchor window, aggregates activity per type
// and asset, and reconciles baseline + anchor transfer + net activity
// into final expected balances.
func Build(rows []models.Row, p Params) (*Report, error) {
	if p.Anchor.IsZero() {
		return nil, errors.New("anchor timestamp is required")
	}

	var inRange []models.Row
	for _, r := range rows {
		if r.TS.IsZero() || r.TS.Before(p.Anchor) {
			continue
		}
		if !p.End.IsZero() && r.TS.After(p.End) {
			continue
		}
		inRange = append(inRange, r)
	}
	sort.SliceStable(inRange, func(i, j int) bool { return inRange[i].TS.Before(inRange[j].TS) })

	totals := analyze.TotalsByType(inRange)

	var lines []string
	lines = append(lines, "Agent Balance Audit")
	header := "Anchor (UTC+0): " + format.Time(p.Anchor, 0)
	if !p.End.IsZero() {
		header += "  →  End: " + format.Time(p.End, 0)
	}
	lines = append(lines, header)

	if len(p.Baseline) > 0 {
		items := make([]string, 0, len(p.Baseline))
		for _, asset := range sortedKeys(p.Baseline) {
			items = append(items, asset+" "+format.Trim(p.Baseline[asset]))
		}
		lines = append(lines, "", "Baseline (before anchor):", "  • "+strings.Join(items, "  •  "))
	} else {
		lines = append(lines, "", "Baseline: not provided (rolling from zero).")
	}

	if p.Transfer != nil {
		lines = append(lines, "", "Applied anchor transfer: "+format.Signed(p.Transfer.Amount)+" "+p.Transfer.Asset)
	}

	lines = append(lines, "", "Activity after anchor:")
	var perType []string
	for _, typeKey := range sortedTypeKeys(totals) {
		byAsset := totals[typeKey]
		var items []string
		for _, asset := range analyze.SortedAssets(byAsset) {
			e := byAsset[asset]
			var segs []string
			if format.NonZero(e.Pos) {
				segs = append(segs, "+"+format.Trim(e.Pos))
			}
			if format.NonZero(e.Neg) {
				segs = append(segs, "-"+format.Trim(e.Neg))
			}
			if len(segs) == 0 {
				continue
			}
			segs = append(segs, "= "+format.Trim(e.Net))
			items = append(items, asset+"  "+strings.Join(segs, " / "))
		}
		if len(items) > 0 {
			perType = append(perType, "• "+typeKey+": "+strings.Join(items, "  •  "))
		}
	}
	if len(perType) > 0 {
		lines = append(lines, perType...)
	} else {
		lines = append(lines, "  • No activity.")
	}

	assetNet := map[string]float64{}
	for _, byAsset := range totals {
		for asset, e := range byAsset {
			assetNet[asset] += e.Net
		}
	}
	lines = append(lines, "", "Net effect (after anchor):")
	var netLines []string
	for _, asset := range sortedKeys(assetNet) {
		if format.NonZero(assetNet[asset]) {
			netLines = append(netLines, "  • "+asset+"  "+format.Signed(assetNet[asset]))
		}
	}
	if len(netLines) > 0 {
		lines = append(lines, netLines...)
	} else {
		lines = append(lines, "  • 0")
	}

	report := &Report{}
	if len(p.Baseline) > 0 {
		final := make(map[string]float64, len(p.Baseline))
		for asset, v := range p.Baseline {
			final[asset] = v
		}
		if p.Transfer != nil {
			final[p.Transfer.Asset] += p.Transfer.Amount
		}
		for asset, net := range assetNet {
			final[asset] += net
		}
		for _, dust := range dustAssets {
			if math.Abs(final[dust]) < dustThreshold {
				delete(final, dust)
			}
		}

		var finalLines []string
		for _, asset := range sortedKeys(final) {
			if !format.NonZero(final[asset]) {
				continue
			}
			report.Final = append(report.Final, models.AssetAmount{Asset: asset, Amount: final[asset]})
			finalLines = append(finalLines, "  • "+asset+"  "+format.Trim(final[asset]))
		}
		if len(finalLines) > 0 {
			lines = append(lines, "", "Final expected balances:")
			lines = append(lines, finalLines...)
		}
	}

	report.Text = strings.Join(lines, "\n")
	return report, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTypeKeys(m models.TotalsByType) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
