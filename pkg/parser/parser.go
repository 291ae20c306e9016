package parser

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fdtools/balancelog/pkg/models"
)

// Parser turns pasted or uploaded balance-log payloads into rows.
// Unparseable lines are skipped, never reported individually; an empty
// result is a degenerate success the caller may surface as advisory.
type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// ProcessBytes sniffs the payload and routes it to the right ingestion
// path: .xls workbooks, HTML fragments carrying a table, or plain text.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]models.Row, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".xls"):
		return p.ParseXLS(data)
	case looksLikeHTML(data):
		if rows, ok := p.ParseHTML(data); ok {
			return rows, nil
		}
		// No usable table; fall back to the plain-text path.
		return p.ParseText(string(data)), nil
	default:
		return p.ParseText(string(data)), nil
	}
}

func looksLikeHTML(data []byte) bool {
	head := bytes.TrimSpace(data)
	if len(head) == 0 || head[0] != '<' {
		return false
	}
	return bytes.Contains(bytes.ToLower(data), []byte("<table"))
}
