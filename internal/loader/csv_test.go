package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCSVStripsBOM(t *testing.T) {
	input := "\ufeffcustomer_id,city\n1,الرياض\n2,\n"

	table, err := DecodeCSV(strings.NewReader(input), "customers")
	require.NoError(t, err)
	assert.Equal(t, []string{"customer_id", "city"}, table.Columns)
	assert.Equal(t, [][]string{{"1", "الرياض"}, {"2", ""}}, table.Rows)
}

func TestDecodeCSVWithoutBOM(t *testing.T) {
	table, err := DecodeCSV(strings.NewReader("a,b\n1,2\n"), "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Columns)
}

func TestDecodeCSVMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"ragged":           "a,b\n1\n",
		"bad header":       "a,not valid\n1,2\n",
		"duplicate header": "a,a\n1,2\n",
		"bare quote":       "a,b\n1,\"x\"y\n",
	}
	for name, input := range cases {
		_, err := DecodeCSV(strings.NewReader(input), "t")
		assert.True(t, errors.Is(err, ErrMalformedFile), "%s: %v", name, err)
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"), "nope")
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, ErrMalformedFile))
}
