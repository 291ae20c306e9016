package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/extrame/xls"

	"github.com/fdtools/balancelog/pkg/models"
)

// ParseXLS reads a balance log exported as a legacy .xls workbook. The
// cell grid is tab-joined and pushed through the plain-text path so all
// ingestion routes share one column mapping.
func (p *Parser) ParseXLS(data []byte) ([]models.Row, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}

	cells := workbook.ReadAllCells(10000)
	if len(cells) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	var b strings.Builder
	for _, row := range cells {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return p.ParseText(b.String()), nil
}
