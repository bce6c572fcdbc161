package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Rana718/bankseed/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *Adapter {
	t.Helper()
	a := New()
	require.NoError(t, a.Connect(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "bank.db")))
	t.Cleanup(func() { a.Close() })
	return a
}

func accountsTable() *types.Table {
	table := types.NewTable("accounts", "account_id", "customer_id", "balance", "opening_date", "status")
	table.AddRow("1", "1", "1500.25", "2021-03-04", "نشط")
	table.AddRow("2", "7", "99.00", "", "نشط")
	return table
}

var accountFKs = []types.ForeignKey{
	{Table: "accounts", Column: "customer_id", RefTable: "customers", RefColumn: "customer_id"},
	{Table: "loans", Column: "customer_id", RefTable: "customers", RefColumn: "customer_id"},
}

func TestReplaceTable(t *testing.T) {
	ctx := context.Background()
	a := openTestDB(t)

	require.NoError(t, a.ReplaceTable(ctx, accountsTable(), accountFKs))

	count, err := a.GetTableRowCount(ctx, "accounts")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	columns, err := a.GetTableColumns(ctx, "accounts")
	require.NoError(t, err)
	require.Len(t, columns, 5)
	assert.Equal(t, "account_id", columns[0].Name)
	assert.Equal(t, "INTEGER", columns[0].Type)
	assert.Equal(t, "REAL", columns[2].Type)
	assert.Equal(t, "TEXT", columns[3].Type)

	data, err := a.GetTableData(ctx, "accounts")
	require.NoError(t, err)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "", data.Rows[1][3], "empty cell is stored as NULL")
	assert.Equal(t, "نشط", data.Rows[0][4])
}

func TestReplaceTableReplacesExisting(t *testing.T) {
	ctx := context.Background()
	a := openTestDB(t)

	require.NoError(t, a.ReplaceTable(ctx, accountsTable(), nil))

	smaller := types.NewTable("accounts", "account_id", "note")
	smaller.AddRow("9", "x")
	require.NoError(t, a.ReplaceTable(ctx, smaller, nil))

	count, err := a.GetTableRowCount(ctx, "accounts")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	columns, err := a.GetTableColumns(ctx, "accounts")
	require.NoError(t, err)
	assert.Len(t, columns, 2)
}

func TestReplaceTableDeclaresUnenforcedForeignKeys(t *testing.T) {
	ctx := context.Background()
	a := openTestDB(t)

	// customers does not exist and customer_id 7 references nothing
	require.NoError(t, a.ReplaceTable(ctx, accountsTable(), accountFKs))

	fks, err := a.GetForeignKeys(ctx, "accounts")
	require.NoError(t, err)
	require.Len(t, fks, 1)
	assert.Equal(t, types.ForeignKey{
		Table: "accounts", Column: "customer_id", RefTable: "customers", RefColumn: "customer_id",
	}, fks[0])
}

func TestReplaceTableManyRows(t *testing.T) {
	ctx := context.Background()
	a := openTestDB(t)

	table := types.NewTable("payments", "payment_id", "loan_id", "amount")
	for i := 0; i < 2500; i++ {
		table.AddRow("1", "2", "10.5")
	}
	require.NoError(t, a.ReplaceTable(ctx, table, nil))

	count, err := a.GetTableRowCount(ctx, "payments")
	require.NoError(t, err)
	assert.Equal(t, 2500, count)
}

func TestReplaceTableRejectsBadNames(t *testing.T) {
	a := openTestDB(t)
	table := types.NewTable("bad name", "id")
	assert.Error(t, a.ReplaceTable(context.Background(), table, nil))
}

func TestDeclareRelations(t *testing.T) {
	ctx := context.Background()
	a := openTestDB(t)

	require.NoError(t, a.DeclareRelations(ctx, accountFKs))
	require.NoError(t, a.DeclareRelations(ctx, accountFKs[:1]))

	data, err := a.GetTableData(ctx, "_relations")
	require.NoError(t, err)
	assert.Equal(t, []string{"table_name", "column_name", "ref_table", "ref_column"}, data.Columns)
	assert.Equal(t, [][]string{{"accounts", "customer_id", "customers", "customer_id"}}, data.Rows)

	names, err := a.GetAllTableNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"_relations"}, names)
}
