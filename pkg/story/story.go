// Package story renders the localized account narrative: a plain-text
// retelling of balance activity suitable for sending to an account
// holder. All math happens upstream; this package only arranges and
// translates.
package story

import (
	"sort"
	"strings"
	"time"

	"github.com/fdtools/balancelog/pkg/format"
	"github.com/fdtools/balancelog/pkg/i18n"
	"github.com/fdtools/balancelog/pkg/models"
)

// Entry is the per-asset inflow/outflow of one narrative group.
type Entry struct {
	In  float64
	Out float64
}

// Groups maps a localized group heading to its per-asset entries.
// Headings are already localized so the composer can recognize swap and
// funding groups by comparing against the language's own labels.
type Groups map[string]map[string]*Entry

// BuildGroups folds summary rows into narrative groups. Rows whose
// types share a friendly label merge, which is how both legs of a coin
// swap end up under one heading.
func BuildGroups(rows []models.SummaryRow, lang i18n.Lang) Groups {
	g := Groups{}
	for _, r := range rows {
		label := i18n.FriendlyLabel(r.Label, lang)
		asset := strings.ToUpper(r.Asset)
		byAsset := g[label]
		if byAsset == nil {
			byAsset = map[string]*Entry{}
			g[label] = byAsset
		}
		e := byAsset[asset]
		if e == nil {
			e = &Entry{}
			byAsset[asset] = e
		}
		e.In += r.In
		e.Out += r.Out
	}
	return g
}

// Options carries everything Compose needs. Start is the anchor instant
// in UTC; the zero value means no anchor was set and the start sentence
// is omitted. Final usually comes straight from an audit report.
type Options struct {
	Lang     i18n.Lang
	Start    time.Time
	Baseline map[string]float64
	Transfer *models.AssetAmount
	Groups   Groups
	Final    []models.AssetAmount
}

// Compose renders the narrative text.
func Compose(opts Options) string {
	t := i18n.TextsFor(opts.Lang)
	conf := i18n.ConfigFor(opts.Lang)
	var lines []string

	lines = append(lines, i18n.Format(t.TimesNote, map[string]string{"ZONE": conf.Label}))
	lines = append(lines, "")

	if len(opts.Baseline) > 0 {
		assets := make([]string, 0, len(opts.Baseline))
		for a := range opts.Baseline {
			assets = append(assets, a)
		}
		sort.Strings(assets)
		items := make([]string, len(assets))
		for i, a := range assets {
			items[i] = a + " " + format.Trim(opts.Baseline[a])
		}
		lines = append(lines, t.InitialBalancesIntro+" "+strings.Join(items, "  •  "))
	}

	startStr := ""
	if !opts.Start.IsZero() {
		startStr = format.Time(opts.Start, conf.Offset)
	}

	switch {
	case startStr != "" && opts.Transfer != nil:
		pretty := startStr + " " + conf.Label
		amtStr := format.Trim(opts.Transfer.Amount)
		vars := map[string]string{"AMOUNT": amtStr, "ASSET": opts.Transfer.Asset}
		sentence := i18n.Format(t.TransferSentenceFrom, vars)
		if opts.Transfer.Amount >= 0 {
			sentence = i18n.Format(t.TransferSentenceTo, vars)
		}
		line := pretty + " - " + sentence
		if before, ok := opts.Baseline[opts.Transfer.Asset]; ok {
			line += " " + i18n.Format(t.ChangedFromTo, map[string]string{
				"BEFORE": format.Trim(before),
				"AFTER":  format.Trim(before + opts.Transfer.Amount),
				"ASSET":  opts.Transfer.Asset,
			})
		} else {
			line += " " + t.BalanceChanged
		}
		lines = append(lines, "", line)
	case startStr != "":
		lines = append(lines, "", startStr+" "+conf.Label+" - "+t.StartLineNoTransfer)
	}
	lines = append(lines, "")

	names := make([]string, 0, len(opts.Groups))
	for name := range opts.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	lines = append(lines, t.AfterStart, "")

	for _, name := range names {
		byAsset := opts.Groups[name]
		assets := make([]string, 0, len(byAsset))
		for a := range byAsset {
			assets = append(assets, a)
		}
		sort.Strings(assets)

		lines = append(lines, name)

		switch {
		case name == t.CoinSwapMix || name == t.AutoExchangeMix:
			// Swaps show explicit in/out buckets so the reader can
			// pair what left against what came back.
			var outs, ins []string
			for _, a := range assets {
				e := byAsset[a]
				if e.Out > 0 {
					outs = append(outs, a+" -"+format.Trim(e.Out))
				}
				if e.In > 0 {
					ins = append(ins, a+" +"+format.Trim(e.In))
				}
			}
			if len(outs) > 0 {
				lines = append(lines, "  • "+t.Out+":  "+strings.Join(outs, ", "))
			}
			if len(ins) > 0 {
				lines = append(lines, "  • "+t.In+":   "+strings.Join(ins, ", "))
			}
		case name == t.FundingFee:
			var received, paid []string
			for _, a := range assets {
				e := byAsset[a]
				if e.In > 0 {
					received = append(received, a+" +"+format.Trim(e.In))
				}
				if e.Out > 0 {
					paid = append(paid, a+" -"+format.Trim(e.Out))
				}
			}
			if len(received) > 0 {
				lines = append(lines, "  • "+t.FundingFeesReceived+": "+strings.Join(received, ", "))
			}
			if len(paid) > 0 {
				lines = append(lines, "  • "+t.FundingFeesPaid+": "+strings.Join(paid, ", "))
			}
		default:
			for _, a := range assets {
				e := byAsset[a]
				var parts []string
				if e.In != 0 {
					parts = append(parts, "+"+format.Trim(e.In))
				}
				if e.Out != 0 {
					parts = append(parts, "-"+format.Trim(e.Out))
				}
				if len(parts) > 0 {
					lines = append(lines, "  • "+a+": "+strings.Join(parts, ", "))
				}
			}
		}
		lines = append(lines, "")
	}

	lines = append(lines, "—")
	if len(opts.Final) > 0 {
		lines = append(lines, t.FinalIntro)
		for _, f := range opts.Final {
			lines = append(lines, "  • "+f.Asset+" "+format.Final(f.Amount))
		}
	}

	return strings.Join(lines, "\n")
}
