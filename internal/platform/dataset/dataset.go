// Package dataset holds the shared plumbing for the CSV datasets: file
// opening with "absent vs broken" distinction, and the one-time header
// schema check performed at load rather than inside every query.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Open opens a dataset file. A missing file is reported as notFoundErr so
// handlers can render it as "not found, contact support" instead of a
// generic backend fault.
func Open(path string, notFoundErr error) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFoundErr
		}
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	return f, nil
}

// CheckHeader validates that every required column is present in the CSV
// header, order-independent, then rewinds the file for the actual parse.
// A missing column is wrapped in schemaErr.
func CheckHeader(f *os.File, required []string, schemaErr error) error {
	header, err := csv.NewReader(f).Read()
	if err != nil {
		return fmt.Errorf("%w: unreadable header", schemaErr)
	}
	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = struct{}{}
	}
	for _, col := range required {
		if _, ok := present[col]; !ok {
			return fmt.Errorf("%w: missing column %q", schemaErr, col)
		}
	}
	if _, err := f.Seek(0, 0); err != nil {
		return fmt.Errorf("rewind dataset: %w", err)
	}
	return nil
}
