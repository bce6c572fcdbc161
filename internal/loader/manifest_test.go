package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Rana718/bankseed/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	m, err := DefaultManifest()
	require.NoError(t, err)

	names := make([]string, len(m.Tables))
	for i, spec := range m.Tables {
		names[i] = spec.Name
		assert.Equal(t, spec.Name+".csv", spec.File)
	}
	assert.Equal(t, []string{
		"customers", "employees", "management", "branches", "accounts", "transactions", "loans", "payments",
	}, names)

	assert.Len(t, m.ForeignKeys, 6)
	assert.Contains(t, m.ForeignKeys, types.ForeignKey{
		Table: "transactions", Column: "recipient_account_id", RefTable: "accounts", RefColumn: "account_id",
	})
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	content := `
tables:
  - name: loans
  - name: payments
    file: repayments.csv
foreign_keys:
  - {table: payments, column: loan_id, ref_table: loans, ref_column: loan_id}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []TableSpec{{Name: "loans", File: "loans.csv"}, {Name: "payments", File: "repayments.csv"}}, m.Tables)
	assert.Len(t, m.ForeignKeys, 1)
}

func TestParseManifestInvalid(t *testing.T) {
	_, err := ParseManifest([]byte("tables: []"))
	assert.Error(t, err)

	_, err = ParseManifest([]byte("tables:\n  - name: loans\n  - name: loans\n"))
	assert.Error(t, err)

	_, err = ParseManifest([]byte("tables:\n  - name: \"drop table\"\n"))
	assert.Error(t, err)

	_, err = ParseManifest([]byte("tables: ["))
	assert.Error(t, err)
}
