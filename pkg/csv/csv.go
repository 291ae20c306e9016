// Package csv exports analysis results for spreadsheets.
package csv

import (
	"bytes"
	"fmt"

	"github.com/fdtools/balancelog/pkg/format"
	"github.com/fdtools/balancelog/pkg/models"
)

type FilterFunc[T any] func(T) bool

// Summary renders summary rows as CSV. A nil filter keeps everything.
func Summary(rows []models.SummaryRow, filter FilterFunc[models.SummaryRow]) []byte {
	var buf bytes.Buffer
	buf.WriteString("Type,Asset,In,Out,Net\n")
	for _, r := range rows {
		if filter == nil || filter(r) {
			buf.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s\n",
				r.Label,
				r.Asset,
				format.Trim(r.In),
				format.Trim(r.Out),
				format.Trim(r.Net)))
		}
	}
	return buf.Bytes()
}

// Rows renders parsed log rows as CSV, one line per row in input order.
func Rows(rows []models.Row, filter FilterFunc[models.Row]) []byte {
	var buf bytes.Buffer
	buf.WriteString("Time,Type,Asset,Amount,Symbol\n")
	for _, r := range rows {
		if filter == nil || filter(r) {
			buf.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s\n",
				r.Time,
				r.TypeOrUnknown(),
				r.Asset,
				format.Trim(r.Amount),
				r.Symbol))
		}
	}
	return buf.Bytes()
}
