package story

import (
	"strings"
	"testing"
	"time"

	"github.com/fdtools/balancelog/pkg/i18n"
	"github.com/fdtools/balancelog/pkg/models"
)

func utc(s string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04:05", s)
	return t
}

func TestBuildGroupsMergesSwapLegs(t *testing.T) {
	rows := []models.SummaryRow{
		{Label: "COIN_SWAP_WITHDRAW", Asset: "btc", Out: 1},
		{Label: "COIN_SWAP_DEPOSIT", Asset: "USDT", In: 100},
		{Label: "TRANSFER", Asset: "USDT", In: 50},
	}
	g := BuildGroups(rows, i18n.EN)

	swap := i18n.TextsFor(i18n.EN).CoinSwapMix
	byAsset, ok := g[swap]
	if !ok {
		t.Fatalf("no swap group, got %v", g)
	}
	if byAsset["BTC"] == nil || byAsset["BTC"].Out != 1 {
		t.Errorf("BTC leg = %+v", byAsset["BTC"])
	}
	if byAsset["USDT"] == nil || byAsset["USDT"].In != 100 {
		t.Errorf("USDT leg = %+v", byAsset["USDT"])
	}
	if g["Transfers"] == nil || g["Transfers"]["USDT"].In != 50 {
		t.Errorf("transfer group = %v", g["Transfers"])
	}
}

func TestComposeFullNarrative(t *testing.T) {
	en := i18n.TextsFor(i18n.EN)
	groups := Groups{
		en.CoinSwapMix: {
			"BTC":  {Out: 1},
			"USDT": {In: 100},
		},
		en.FundingFee: {
			"USDT": {In: 2, Out: 5},
		},
		"Transfers": {
			"USDT": {In: 50, Out: 10},
		},
	}

	text := Compose(Options{
		Lang:     i18n.EN,
		Start:    utc("2023-01-01 12:00:00"),
		Baseline: map[string]float64{"USDT": 1000},
		Transfer: &models.AssetAmount{Asset: "USDT", Amount: 100},
		Groups:   groups,
		Final:    []models.AssetAmount{{Asset: "USDT", Amount: 1137}},
	})

	for _, want := range []string{
		"All times are shown in UTC+0.",
		"Initial balances: USDT 1000",
		"2023-01-01 12:00:00 UTC+0 - a transfer of 100 USDT arrived in the account.",
		"The USDT balance changed from 1000 to 1100.",
		"After this point the account saw the following activity:",
		"  • Out:  BTC -1",
		"  • In:   USDT +100",
		"  • Received: USDT +2",
		"  • Paid: USDT -5",
		"  • USDT: +50, -10",
		"—",
		"Final expected balances:",
		"  • USDT 1137",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("narrative missing %q:\n%s", want, text)
		}
	}
}

func TestComposeTransferWithoutBaselineEntry(t *testing.T) {
	text := Compose(Options{
		Lang:     i18n.EN,
		Start:    utc("2023-01-01 12:00:00"),
		Transfer: &models.AssetAmount{Asset: "BTC", Amount: -2},
		Groups:   Groups{},
	})
	if !strings.Contains(text, "a transfer of -2 BTC left the account. The balance changed accordingly.") {
		t.Errorf("outgoing transfer sentence missing:\n%s", text)
	}
}

func TestComposeNoStart(t *testing.T) {
	text := Compose(Options{Lang: i18n.EN, Groups: Groups{}})
	if strings.Contains(text, " - ") {
		t.Errorf("start sentence should be absent:\n%s", text)
	}
	if !strings.Contains(text, "—") {
		t.Errorf("separator missing:\n%s", text)
	}
	if strings.Contains(text, "Final expected balances:") {
		t.Errorf("final section should be absent without balances:\n%s", text)
	}
}

// Times in the narrative shift by the language's fixed offset.
func TestComposeOffsetShiftsStart(t *testing.T) {
	text := Compose(Options{
		Lang:  i18n.TR,
		Start: utc("2023-01-01 23:00:00"),
		Groups: Groups{},
	})
	if !strings.Contains(text, "2023-01-02 02:00:00 UTC+3") {
		t.Errorf("expected UTC+3 shifted start:\n%s", text)
	}
	if !strings.Contains(text, "Tüm saatler UTC+3 olarak gösterilir.") {
		t.Errorf("expected Turkish header:\n%s", text)
	}
}

func TestComposeDustFinalRendersZero(t *testing.T) {
	text := Compose(Options{
		Lang:   i18n.EN,
		Groups: Groups{},
		Final:  []models.AssetAmount{{Asset: "BFUSD", Amount: 4e-8}},
	})
	if !strings.Contains(text, "  • BFUSD 0.0000") {
		t.Errorf("dust final should render 0.0000:\n%s", text)
	}
}
