package mysql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/bankseed/internal/database/common"
	"github.com/Rana718/bankseed/internal/types"
)

var kindTypes = map[types.ColumnKind]string{
	types.KindInteger: "BIGINT",
	types.KindReal:    "DOUBLE",
	types.KindText:    "TEXT",
}

// ReplaceTable drops, recreates and fills the table. DDL commits implicitly
// in MySQL, so it runs outside the transaction that wraps the inserts.
func (m *Adapter) ReplaceTable(ctx context.Context, table *types.Table, fks []types.ForeignKey) error {
	if err := common.ValidateTable(table); err != nil {
		return err
	}
	kinds := common.InferColumnKinds(table)

	if _, err := m.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+quote(table.Name)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table.Name, err)
	}
	createSQL := m.GenerateCreateTableSQL(table, kinds, common.ForeignKeysOf(table, fks))
	if _, err := m.db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table.Name, err)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	columns := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		columns[i] = quote(col)
	}

	batch := common.BatchSize(len(columns))
	for start := 0; start < len(table.Rows); start += batch {
		end := min(start+batch, len(table.Rows))
		insert := m.qb.Insert(quote(table.Name)).Columns(columns...)
		for _, row := range table.Rows[start:end] {
			insert = insert.Values(common.ConvertRow(row, kinds)...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for %s: %w", table.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert rows %d-%d into %s: %w", start+1, end, table.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table.Name, err)
	}
	return nil
}

// GenerateCreateTableSQL records foreign keys as column comments; InnoDB
// would enforce a FOREIGN KEY clause.
func (m *Adapter) GenerateCreateTableSQL(table *types.Table, kinds []types.ColumnKind, fks []types.ForeignKey) string {
	refs := make(map[string]types.ForeignKey, len(fks))
	for _, fk := range fks {
		refs[fk.Column] = fk
	}

	defs := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		def := fmt.Sprintf("%s %s", quote(col), kindTypes[kinds[i]])
		if fk, ok := refs[col]; ok {
			def += fmt.Sprintf(" COMMENT 'references %s(%s)'", fk.RefTable, fk.RefColumn)
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n) DEFAULT CHARSET=utf8mb4",
		quote(table.Name), strings.Join(defs, ",\n  "))
}

func (m *Adapter) DeclareRelations(ctx context.Context, fks []types.ForeignKey) error {
	if _, err := m.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+quote(common.RelationsTable)); err != nil {
		return err
	}

	defs := make([]string, len(common.RelationColumns))
	for i, col := range common.RelationColumns {
		defs[i] = quote(col) + " VARCHAR(64) NOT NULL"
	}
	if _, err := m.db.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s) DEFAULT CHARSET=utf8mb4",
		quote(common.RelationsTable), strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("failed to create %s: %w", common.RelationsTable, err)
	}

	if len(fks) == 0 {
		return nil
	}

	columns := make([]string, len(common.RelationColumns))
	for i, col := range common.RelationColumns {
		columns[i] = quote(col)
	}
	insert := m.qb.Insert(quote(common.RelationsTable)).Columns(columns...)
	for _, row := range common.RelationRows(fks) {
		insert = insert.Values(row...)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	if _, err := m.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record relations: %w", err)
	}
	return nil
}

func (m *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return 0, err
	}

	query, args, err := m.qb.Select("COUNT(*)").From(quote(tableName)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := m.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (m *Adapter) GetTableData(ctx context.Context, tableName string) (*types.Table, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, "SELECT * FROM "+quote(tableName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	table := types.NewTable(tableName, columns...)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", tableName, err)
		}

		cells := make([]string, len(columns))
		for i, v := range values {
			cells[i] = common.ValueToString(v)
		}
		table.AddRow(cells...)
	}
	return table, rows.Err()
}
