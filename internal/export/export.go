package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Rana718/bankseed/internal/types"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileName is the file a table is written to and read back from.
func FileName(table string) string {
	return table + ".csv"
}

// WriteCSV writes the header and every row of t as UTF-8 with a byte-order mark.
func WriteCSV(w io.Writer, t *types.Table) error {
	bom := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	writer := csv.NewWriter(bom)

	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", t.Name, err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d of %s has %d cells, expected %d", i+1, t.Name, len(row), len(t.Columns))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, t.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return bom.Close()
}

func writeFile(path string, t *types.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file for %s: %w", t.Name, err)
	}

	if err := WriteCSV(file, t); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteTables writes each table to dir/<name>.csv, replacing existing files.
// Tables are written concurrently; the returned paths follow the input order.
func WriteTables(dir string, tables []*types.Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	paths := make([]string, len(tables))
	errs := make([]error, len(tables))
	var wg sync.WaitGroup

	for i, table := range tables {
		paths[i] = filepath.Join(dir, FileName(table.Name))
		wg.Add(1)
		go func(i int, t *types.Table) {
			defer wg.Done()
			errs[i] = writeFile(paths[i], t)
		}(i, table)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}
