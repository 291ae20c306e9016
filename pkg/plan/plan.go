// Package plan loads audit plans: YAML files that pin down an audit
// run (anchor, optional end, baseline balances, anchor transfer and
// narrative language) so it can be repeated without retyping inputs.
package plan

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fdtools/balancelog/pkg/audit"
	"github.com/fdtools/balancelog/pkg/models"
	"github.com/fdtools/balancelog/pkg/parser"
)

type Transfer struct {
	Amount float64 `yaml:"amount"`
	Asset  string  `yaml:"asset"`
}

type Plan struct {
	Anchor   string             `yaml:"anchor"`
	End      string             `yaml:"end"`
	Baseline map[string]float64 `yaml:"baseline"`
	Transfer *Transfer          `yaml:"transfer"`
	Lang     string             `yaml:"lang"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if p.Anchor == "" {
		return nil, fmt.Errorf("plan has no anchor")
	}
	return &p, nil
}

// Params converts the plan into audit parameters. Timestamps must be
// "YYYY-MM-DD HH:MM:SS" in UTC, same as log rows.
func (p *Plan) Params() (audit.Params, error) {
	anchor := parser.ParseUTC(p.Anchor)
	if anchor.IsZero() {
		return audit.Params{}, fmt.Errorf("invalid anchor time: %q", p.Anchor)
	}

	params := audit.Params{Anchor: anchor}
	if p.End != "" {
		end := parser.ParseUTC(p.End)
		if end.IsZero() {
			return audit.Params{}, fmt.Errorf("invalid end time: %q", p.End)
		}
		params.End = end
	}
	if len(p.Baseline) > 0 {
		params.Baseline = make(map[string]float64, len(p.Baseline))
		for asset, amount := range p.Baseline {
			params.Baseline[strings.ToUpper(asset)] += amount
		}
	}
	if p.Transfer != nil {
		params.Transfer = &models.AssetAmount{
			Asset:  strings.ToUpper(p.Transfer.Asset),
			Amount: p.Transfer.Amount,
		}
	}
	return params, nil
}

func (p *Plan) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "anchor=%s", p.Anchor)
	if p.End != "" {
		fmt.Fprintf(&b, " end=%s", p.End)
	}
	if p.Lang != "" {
		fmt.Fprintf(&b, " lang=%s", p.Lang)
	}
	b.WriteString("\n")
	for _, asset := range sortedAssets(p.Baseline) {
		fmt.Fprintf(&b, "  baseline %s %v\n", asset, p.Baseline[asset])
	}
	if p.Transfer != nil {
		fmt.Fprintf(&b, "  transfer %v %s\n", p.Transfer.Amount, p.Transfer.Asset)
	}
	return b.String()
}

func (p *Plan) Print() {
	fmt.Print(p.String())
}

func sortedAssets(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
