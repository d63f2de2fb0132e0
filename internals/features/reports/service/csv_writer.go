package service

import (
	"encoding/csv"
	"os"
)

// writeCSV renders the table as a plain CSV file: the header row followed
// by the data rows, nothing else. Title and period stay in the PDF and
// Excel renderings.
func writeCSV(path string, table Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	records := append([][]string{table.Headers}, table.Rows...)
	if err := w.WriteAll(records); err != nil {
		return err
	}
	return w.Error()
}
