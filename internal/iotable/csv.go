// Package iotable writes the aggregated time-series table to disk.
package iotable

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/gnames/gnredlist/pkg/aggregate"
)

// WriteCSV saves the table as CSV with a header row. Null cells are
// written as empty fields. An existing file is replaced.
func WriteCSV(path string, t *aggregate.Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".table-*.csv")
	if err != nil {
		return TableWriteError(path, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err = w.Write(t.Columns); err != nil {
		tmp.Close()
		return TableWriteError(path, err)
	}
	for i := range t.Rows {
		vals, _ := t.Strings(i)
		if err = w.Write(vals); err != nil {
			tmp.Close()
			return TableWriteError(path, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		tmp.Close()
		return TableWriteError(path, err)
	}

	if err = tmp.Close(); err != nil {
		return TableWriteError(path, err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return TableWriteError(path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return TableWriteError(path, err)
	}
	return nil
}
