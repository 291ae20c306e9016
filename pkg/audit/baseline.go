package audit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fdtools/balancelog/pkg/models"
)

const amountPattern = `-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`

var (
	assetFirstRE  = regexp.MustCompile(`^([A-Za-z0-9_]+)\s+(` + amountPattern + `)$`)
	amountFirstRE = regexp.MustCompile(`^(` + amountPattern + `)\s+([A-Za-z0-9_]+)$`)
)

// ParseBaseline reads a baseline block: one line per asset, either
// "ASSET amount" or "amount ASSET", amounts optionally in scientific
// notation. Repeated assets accumulate. Any malformed line fails the
// whole block — a partially applied baseline would silently corrupt the
// audit, so this is a hard stop, not skip-and-continue.
func ParseBaseline(s string) (map[string]float64, error) {
	var out map[string]float64
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var asset, amount string
		if m := assetFirstRE.FindStringSubmatch(line); m != nil {
			asset, amount = m[1], m[2]
		} else if m := amountFirstRE.FindStringSubmatch(line); m != nil {
			amount, asset = m[1], m[2]
		} else {
			return nil, fmt.Errorf("could not parse baseline line: %q", line)
		}

		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("could not parse baseline line: %q", line)
		}
		if out == nil {
			out = map[string]float64{}
		}
		out[strings.ToUpper(asset)] += d.InexactFloat64()
	}
	return out, nil
}

// ParseTransfer builds the anchor transfer from its two raw input
// fields. Returns nil when either side is blank or unparseable; an
// absent transfer is not an error.
func ParseTransfer(amountStr, assetStr string) *models.AssetAmount {
	asset := strings.ToUpper(strings.TrimSpace(assetStr))
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if asset == "" || err != nil {
		return nil
	}
	return &models.AssetAmount{Asset: asset, Amount: amount}
}

var finalLineRE = regexp.MustCompile(`•\s*([A-Za-z0-9_]+)\s+(` + amountPattern + `)`)

// ParseFinalBalances extracts the "Final expected balances" section from
// rendered audit text. Build already returns the same data structured;
// this exists for report text produced elsewhere.
func ParseFinalBalances(text string) []models.AssetAmount {
	lines := strings.Split(text, "\n")
	start := -1
	for i, l := range lines {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(l)), "final expected balances") {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}
	var out []models.AssetAmount
	for _, l := range lines[start+1:] {
		m := finalLineRE.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		out = append(out, models.AssetAmount{Asset: strings.ToUpper(m[1]), Amount: amount})
	}
	return out
}
