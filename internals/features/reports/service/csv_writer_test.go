package service

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCSVHeaderThenRows(t *testing.T) {
	table := Table{
		Title:   "Student Summary Report",
		Period:  "2026-01-01 to 2026-01-31",
		Headers: []string{"Student", "Sessions", "Status"},
		Rows: [][]string{
			{"Ana Santos", "3", "Active"},
			{"Ben Reyes", "0", "Inactive"},
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := writeCSV(path, table); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(records))
	}
	if records[0][0] != "Student" {
		t.Fatalf("first record = %v, want the header row", records[0])
	}
	if records[1][0] != "Ana Santos" || records[2][2] != "Inactive" {
		t.Fatalf("data rows = %v", records[1:])
	}
}
