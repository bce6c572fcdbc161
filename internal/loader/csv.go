package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rana718/bankseed/internal/database/common"
	"github.com/Rana718/bankseed/internal/types"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMalformedFile marks input whose header or row shape cannot be loaded.
var ErrMalformedFile = errors.New("malformed input file")

// ReadCSV reads a delimited file with a header row into a table named name.
// A leading UTF-8 byte-order mark is dropped; a missing file yields an error
// matching os.ErrNotExist.
func ReadCSV(path, name string) (*types.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeCSV(file, name)
}

func DecodeCSV(r io.Reader, name string) (*types.Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s has no header row", ErrMalformedFile, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, name, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	table := types.NewTable(name, columns...)
	if err := common.ValidateTable(table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	// the header fixes the field count of every following record
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, name, err)
		}
		table.AddRow(record...)
	}
	return table, nil
}
