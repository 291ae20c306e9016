package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

const twoRowLog = "1\t9001\tUSDT\tTRANSFER\t100\t2023-01-01 12:00:00\tBTCUSDT\n" +
	"2\t9001\tUSDT\tTRANSFER\t50\tnot-a-time\tBTCUSDT\n"

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Rows without a valid timestamp must be dropped even when no filter
// flags are set, so they never reach summary/swap/series aggregation.
func TestLoadRowsDropsTimelessRowsWithoutFilters(t *testing.T) {
	path := writeLog(t, twoRowLog)

	rows, err := loadRows(log.New(io.Discard), path, rowFilters{})
	if err != nil {
		t.Fatalf("loadRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Amount != 100 {
		t.Errorf("wrong row survived: %+v", rows[0])
	}
}

func TestLoadRowsAppliesFilters(t *testing.T) {
	path := writeLog(t, twoRowLog)

	rows, err := loadRows(log.New(io.Discard), path, rowFilters{symbol: "ethusdt"})
	if err != nil {
		t.Fatalf("loadRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("symbol filter should drop everything, got %d rows", len(rows))
	}
}
