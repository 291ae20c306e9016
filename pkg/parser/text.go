package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/fdtools/balancelog/pkg/models"
)

var (
	// Exotic whitespace that web pages paste along: NBSP and the
	// en-quad..zero-width-space range.
	exoticSpaceRE = regexp.MustCompile(`[\x{00A0}\x{2000}-\x{200B}]`)

	tabRunRE = regexp.MustCompile(`\t+`)
	// Column separators for untabbed input, tried in this order per
	// position: runs of two or more spaces, " | ", any whitespace run.
	spaceSepRE = regexp.MustCompile(`\s{2,}|\s\|\s|\s+`)

	dateRE = regexp.MustCompile(`(\d{4}-\d{2}-\d{2} \d{1,2}:\d{2}:\d{2})`)
)

// ParseText parses a pasted balance log. Lines yielding fewer than six
// columns or a non-finite amount are dropped; everything else becomes a
// Row even when the timestamp is missing or malformed.
func (p *Parser) ParseText(text string) []models.Row {
	text = exoticSpaceRE.ReplaceAllString(text, " ")

	var rows []models.Row
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row, ok := p.parseLine(line)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// SplitColumns splits one log line into columns: on runs of tabs when the
// line contains any tab, otherwise on the space separators.
func SplitColumns(line string) []string {
	if strings.Contains(line, "\t") {
		return tabRunRE.Split(line, -1)
	}
	return spaceSepRE.Split(strings.TrimSpace(line), -1)
}

func (p *Parser) parseLine(line string) (models.Row, bool) {
	cols := SplitColumns(line)
	if len(cols) < 6 {
		return models.Row{}, false
	}

	amount, err := strconv.ParseFloat(cols[4], 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		p.logger.Debug("skipping line with unparseable amount", "line", line)
		return models.Row{}, false
	}

	timeStr := ""
	for _, c := range cols {
		if m := dateRE.FindString(c); m != "" {
			timeStr = NormalizeTime(m)
			break
		}
	}

	symbol := ""
	if len(cols) > 6 {
		symbol = cols[6]
	}
	extra := ""
	if len(cols) > 7 {
		extra = strings.Join(cols[7:], " ")
	}

	return models.Row{
		ID:     cols[0],
		UID:    cols[1],
		Asset:  cols[2],
		Type:   cols[3],
		Amount: amount,
		Time:   timeStr,
		TS:     ParseUTC(timeStr),
		Symbol: symbol,
		Extra:  extra,
		Raw:    line,
	}, true
}
