package audit

import (
	"math"
	"strings"
	"testing"
)

func TestParseBaselineBothOrders(t *testing.T) {
	m, err := ParseBaseline("USDT 3450.12345678\n0.015 BTC\n")
	if err != nil {
		t.Fatalf("ParseBaseline failed: %v", err)
	}
	if m["USDT"] != 3450.12345678 {
		t.Errorf("USDT = %v", m["USDT"])
	}
	if m["BTC"] != 0.015 {
		t.Errorf("BTC = %v", m["BTC"])
	}
}

func TestParseBaselineScientific(t *testing.T) {
	m, err := ParseBaseline("BFUSD 5.4e-7")
	if err != nil {
		t.Fatalf("ParseBaseline failed: %v", err)
	}
	if math.Abs(m["BFUSD"]-5.4e-7) > 1e-18 {
		t.Errorf("BFUSD = %v", m["BFUSD"])
	}
}

func TestParseBaselineAccumulatesDuplicates(t *testing.T) {
	m, err := ParseBaseline("USDT 10\nUSDT 5")
	if err != nil {
		t.Fatalf("ParseBaseline failed: %v", err)
	}
	if m["USDT"] != 15 {
		t.Errorf("USDT = %v", m["USDT"])
	}
}

func TestParseBaselineLowercaseAsset(t *testing.T) {
	m, err := ParseBaseline("usdt 1")
	if err != nil {
		t.Fatalf("ParseBaseline failed: %v", err)
	}
	if m["USDT"] != 1 {
		t.Errorf("asset not upper-cased: %v", m)
	}
}

// A malformed line fails the whole block and names the line verbatim.
func TestParseBaselineMalformedLineIsFatal(t *testing.T) {
	_, err := ParseBaseline("USDT 10\nthis is not a balance\nBTC 1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"this is not a balance"`) {
		t.Errorf("error should quote the offending line: %v", err)
	}
}

func TestParseBaselineEmpty(t *testing.T) {
	m, err := ParseBaseline("  \n\n")
	if err != nil {
		t.Fatalf("ParseBaseline failed: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil map for empty block, got %v", m)
	}
}

func TestParseTransfer(t *testing.T) {
	tr := ParseTransfer(" 100.5 ", " usdt ")
	if tr == nil || tr.Asset != "USDT" || tr.Amount != 100.5 {
		t.Errorf("ParseTransfer = %+v", tr)
	}
	if ParseTransfer("", "USDT") != nil {
		t.Error("blank amount should yield nil")
	}
	if ParseTransfer("10", "") != nil {
		t.Error("blank asset should yield nil")
	}
	if ParseTransfer("abc", "USDT") != nil {
		t.Error("bad amount should yield nil")
	}
}

func TestParseFinalBalances(t *testing.T) {
	text := strings.Join([]string{
		"Agent Balance Audit",
		"Final expected balances:",
		"  • BTC  11",
		"  • USDT  80.5",
		"  • bfusd  5.4e-7",
	}, "\n")
	out := ParseFinalBalances(text)
	if len(out) != 3 {
		t.Fatalf("expected 3 balances, got %d", len(out))
	}
	if out[0].Asset != "BTC" || out[0].Amount != 11 {
		t.Errorf("balance 0 = %+v", out[0])
	}
	if out[2].Asset != "BFUSD" || math.Abs(out[2].Amount-5.4e-7) > 1e-18 {
		t.Errorf("balance 2 = %+v", out[2])
	}
}

func TestParseFinalBalancesMissingSection(t *testing.T) {
	if out := ParseFinalBalances("no such section"); out != nil {
		t.Errorf("expected nil, got %v", out)
	}
}
