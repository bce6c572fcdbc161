package database

import (
	"context"

	"github.com/Rana718/bankseed/internal/types"
)

// DatabaseAdapter is the relational store the loader writes into.
type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// ReplaceTable drops any existing table of the same name, recreates it
	// from the table's columns and inserts every row, all in one transaction.
	// Foreign keys whose Table matches are declared but never enforced.
	ReplaceTable(ctx context.Context, table *types.Table, fks []types.ForeignKey) error

	// DeclareRelations records the declared foreign keys in a documentation table.
	DeclareRelations(ctx context.Context, fks []types.ForeignKey) error

	GetAllTableNames(ctx context.Context) ([]string, error)
	GetTableColumns(ctx context.Context, tableName string) ([]types.ColumnInfo, error)
	GetTableRowCount(ctx context.Context, tableName string) (int, error)
	GetTableData(ctx context.Context, tableName string) (*types.Table, error)
}
