package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/bankseed/internal/database/common"
	"github.com/Rana718/bankseed/internal/types"
)

var kindTypes = map[types.ColumnKind]string{
	types.KindInteger: "INTEGER",
	types.KindReal:    "REAL",
	types.KindText:    "TEXT",
}

func (s *Adapter) ReplaceTable(ctx context.Context, table *types.Table, fks []types.ForeignKey) error {
	if err := common.ValidateTable(table); err != nil {
		return err
	}
	kinds := common.InferColumnKinds(table)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quote(table.Name)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table.Name, err)
	}

	createSQL := s.GenerateCreateTableSQL(table, kinds, common.ForeignKeysOf(table, fks))
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table.Name, err)
	}

	columns := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		columns[i] = quote(col)
	}

	batch := common.BatchSize(len(columns))
	for start := 0; start < len(table.Rows); start += batch {
		end := min(start+batch, len(table.Rows))
		insert := s.qb.Insert(quote(table.Name)).Columns(columns...)
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

// GenerateCreateTableSQL renders CREATE TABLE with inline FOREIGN KEY clauses.
func (s *Adapter) GenerateCreateTableSQL(table *types.Table, kinds []types.ColumnKind, fks []types.ForeignKey) string {
	defs := make([]string, 0, len(table.Columns)+len(fks))
	for i, col := range table.Columns {
		defs = append(defs, fmt.Sprintf("%s %s", quote(col), kindTypes[kinds[i]]))
	}
	for _, fk := range fks {
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)",
			quote(fk.Column), quote(fk.RefTable), quote(fk.RefColumn)))
	}
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", quote(table.Name), strings.Join(defs, ",\n  "))
}

func (s *Adapter) DeclareRelations(ctx context.Context, fks []types.ForeignKey) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quote(common.RelationsTable)); err != nil {
		return err
	}

	defs := make([]string, len(common.RelationColumns))
	for i, col := range common.RelationColumns {
		defs[i] = quote(col) + " TEXT NOT NULL"
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)",
		quote(common.RelationsTable), strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("failed to create %s: %w", common.RelationsTable, err)
	}

	if len(fks) > 0 {
		insert := s.qb.Insert(quote(common.RelationsTable)).Columns(common.RelationColumns...)
		for _, row := range common.RelationRows(fks) {
			insert = insert.Values(row...)
		}
		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to record relations: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return 0, err
	}

	var count int
	query, args, err := s.qb.Select("COUNT(*)").From(quote(tableName)).ToSql()
	if err != nil {
		return 0, err
	}
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (s *Adapter) GetTableData(ctx context.Context, tableName string) (*types.Table, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+quote(tableName))
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
