package models

import "time"

// Row is one parsed balance-log entry. Rows are immutable once parsed; a
// new paste replaces the whole set.
type Row struct {
	ID     string
	UID    string
	Asset  string
	Type   string
	Amount float64
	Time   string    // normalized "YYYY-MM-DD HH:MM:SS", UTC
	TS     time.Time // zero when Time could not be parsed
	Symbol string
	Extra  string // trailing columns beyond the known seven, space-joined
	Raw    string // original source line, kept for diagnostics
}

// TypeOrUnknown returns the transaction type, or "(unknown)" when blank.
// Type is an open set; values never seen before pass through verbatim.
func (r Row) TypeOrUnknown() string {
	if r.Type == "" {
		return "(unknown)"
	}
	return r.Type
}

// Totals accumulates signed amounts for one asset bucket.
// Net always equals Pos - Neg.
type Totals struct {
	Pos float64 // sum of non-negative amounts
	Neg float64 // sum of absolute values of negative amounts
	Net float64
}

// Add routes amount into the bucket. Exactly-zero amounts land on the
// positive side and contribute nothing either way.
func (t *Totals) Add(amount float64) {
	if amount >= 0 {
		t.Pos += amount
	} else {
		t.Neg += -amount
	}
	t.Net += amount
}

// TotalsMap keys totals by asset.
type TotalsMap map[string]*Totals

// TotalsByType keys per-asset totals by transaction type.
type TotalsByType map[string]TotalsMap

// SummaryRow is one line of the type/asset summary table. In and Out are
// zero when the underlying bucket value is below the display epsilon.
type SummaryRow struct {
	Label string
	Asset string
	In    float64
	Out   float64
	Net   float64
}

// SwapLine is one rendered swap or auto-exchange event.
type SwapLine struct {
	Time string
	TS   time.Time
	Text string
}

// AssetAmount pairs an asset with a signed amount.
type AssetAmount struct {
	Asset  string
	Amount float64
}
