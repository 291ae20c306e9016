package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/fdtools/balancelog/pkg/filter"
	"github.com/fdtools/balancelog/pkg/models"
	"github.com/fdtools/balancelog/pkg/parser"
)

type rowFilters struct {
	start  string
	end    string
	symbol string
	types  []string
}

// loadRows reads the log ("-" means stdin), parses it and applies the
// global filters.
func loadRows(logger *log.Logger, path string, f rowFilters) ([]models.Row, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	rows, err := parser.New(logger).ProcessBytes(data, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed log", "file", path, "rows", len(rows))

	// The filter runs even with every field blank: rows without a
	// valid timestamp must never reach aggregation.
	return filter.Filters{
		Start:  f.start,
		End:    f.end,
		Symbol: f.symbol,
		Types:  filter.TypeSet(f.types),
	}.Apply(rows), nil
}
