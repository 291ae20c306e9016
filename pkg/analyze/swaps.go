package analyze

import (
	"sort"
	"strings"

	"github.com/fdtools/balancelog/pkg/format"
	"github.com/fdtools/balancelog/pkg/models"
)

// SwapKind selects which paired-leg transactions to group.
type SwapKind string

const (
	// CoinSwap matches any type containing COIN_SWAP (deposit and
	// withdraw legs).
	CoinSwap SwapKind = "COIN_SWAP"
	// AutoExchange matches the AUTO_EXCHANGE type exactly.
	AutoExchange SwapKind = "AUTO_EXCHANGE"
)

func (k SwapKind) matches(typ string) bool {
	if k == AutoExchange {
		return typ == models.TypeAutoExchange
	}
	return strings.Contains(typ, string(CoinSwap))
}

// GroupSwaps reduces paired in/out swap legs into one line per event.
// Legs belong together when they share a timestamp and the portion of
// extra before the first "@" (the swap description carries the rate after
// it). Rows without a valid timestamp are left out; the output is sorted
// ascending by time.
func GroupSwaps(rows []models.Row, kind SwapKind) []models.SwapLine {
	type group struct {
		first  models.Row
		assets []string
		net    map[string]float64
	}

	groups := map[string]*group{}
	var order []string
	for _, r := range rows {
		if !kind.matches(r.Type) || r.TS.IsZero() {
			continue
		}
		key := r.Time + "|" + strings.SplitN(r.Extra, "@", 2)[0]
		g := groups[key]
		if g == nil {
			g = &group{first: r, net: map[string]float64{}}
			groups[key] = g
			order = append(order, key)
		}
		if _, seen := g.net[r.Asset]; !seen {
			g.assets = append(g.assets, r.Asset)
		}
		g.net[r.Asset] += r.Amount
	}

	var out []models.SwapLine
	for _, key := range order {
		g := groups[key]
		var outs, ins []string
		for _, asset := range g.assets {
			amt := g.net[asset]
			if amt < 0 {
				outs = append(outs, format.Minus+format.Trim(-amt)+" "+asset)
			}
			if amt > 0 {
				ins = append(ins, "+"+format.Trim(amt)+" "+asset)
			}
		}
		if len(outs) == 0 && len(ins) == 0 {
			continue
		}
		var parts []string
		if len(outs) > 0 {
			parts = append(parts, "Out: "+strings.Join(outs, ", "))
		}
		if len(ins) > 0 {
			parts = append(parts, "In: "+strings.Join(ins, ", "))
		}
		out = append(out, models.SwapLine{
			Time: g.first.Time,
			TS:   g.first.TS,
			Text: g.first.Time + " — " + strings.Join(parts, "  →  "),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TS.Before(out[j].TS) })
	return out
}

// EventTotals aggregates event-contract activity by asset, orders and
// payouts separately. These are not leg-paired like swaps.
func EventTotals(rows []models.Row) (orders, payouts models.TotalsMap) {
	var orderRows, payoutRows []models.Row
	for _, r := range rows {
		switch r.Type {
		case models.TypeEventContractsOrder:
			orderRows = append(orderRows, r)
		case models.TypeEventContractsPayout:
			payoutRows = append(payoutRows, r)
		}
	}
	return SumByAsset(orderRows), SumByAsset(payoutRows)
}
