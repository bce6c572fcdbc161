package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/bankseed/internal/database/common"
	"github.com/Rana718/bankseed/internal/types"
	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

var kindTypes = map[types.ColumnKind]string{
	types.KindInteger: "BIGINT",
	types.KindReal:    "DOUBLE PRECISION",
	types.KindText:    "TEXT",
}

// ReplaceTable recreates the table and bulk loads it with COPY. Foreign keys
// are kept as column comments, since a real constraint would be enforced.
func (p *Adapter) ReplaceTable(ctx context.Context, table *types.Table, fks []types.ForeignKey) error {
	if err := common.ValidateTable(table); err != nil {
		return err
	}
	kinds := common.InferColumnKinds(table)

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+quote(table.Name)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table.Name, err)
	}
	if _, err := tx.Exec(ctx, p.GenerateCreateTableSQL(table, kinds)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table.Name, err)
	}
	for _, stmt := range p.GenerateRelationComments(common.ForeignKeysOf(table, fks)) {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to annotate %s: %w", table.Name, err)
		}
	}

	rows := make([][]interface{}, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = common.ConvertRow(row, kinds)
	}
	copied, err := tx.CopyFrom(ctx, pgx.Identifier{table.Name}, table.Columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy rows into %s: %w", table.Name, err)
	}
	if int(copied) != len(rows) {
		return fmt.Errorf("copied %d of %d rows into %s", copied, len(rows), table.Name)
	}

	return tx.Commit(ctx)
}

func (p *Adapter) GenerateCreateTableSQL(table *types.Table, kinds []types.ColumnKind) string {
	defs := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		defs[i] = fmt.Sprintf("%s %s", quote(col), kindTypes[kinds[i]])
	}
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", quote(table.Name), strings.Join(defs, ",\n  "))
}

func (p *Adapter) GenerateRelationComments(fks []types.ForeignKey) []string {
	stmts := make([]string, len(fks))
	for i, fk := range fks {
		stmts[i] = fmt.Sprintf("COMMENT ON COLUMN %s.%s IS %s",
			quote(fk.Table), quote(fk.Column),
			pq.QuoteLiteral(fmt.Sprintf("references %s(%s)", fk.RefTable, fk.RefColumn)))
	}
	return stmts
}

func (p *Adapter) DeclareRelations(ctx context.Context, fks []types.ForeignKey) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+quote(common.RelationsTable)); err != nil {
		return err
	}

	defs := make([]string, len(common.RelationColumns))
	for i, col := range common.RelationColumns {
		defs[i] = quote(col) + " TEXT NOT NULL"
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("CREATE TABLE %s (%s)",
		quote(common.RelationsTable), strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("failed to create %s: %w", common.RelationsTable, err)
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{common.RelationsTable}, common.RelationColumns,
		pgx.CopyFromRows(common.RelationRows(fks))); err != nil {
		return fmt.Errorf("failed to record relations: %w", err)
	}

	return tx.Commit(ctx)
}

func (p *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return 0, err
	}

	query, args, err := p.qb.Select("COUNT(*)").From(quote(tableName)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (p *Adapter) GetTableData(ctx context.Context, tableName string) (*types.Table, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, "SELECT * FROM "+quote(tableName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}

	table := types.NewTable(tableName, columns...)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", tableName, err)
		}
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = common.ValueToString(v)
		}
		table.AddRow(cells...)
	}
	return table, rows.Err()
}
