package mysql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/bankseed/internal/types"
)

func (m *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := m.qb.Select("TABLE_NAME").
		From("information_schema.TABLES").
		Where(squirrel.Eq{"TABLE_SCHEMA": m.database, "TABLE_TYPE": "BASE TABLE"}).
		OrderBy("TABLE_NAME").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (m *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]types.ColumnInfo, error) {
	query, args, err := m.qb.Select("COLUMN_NAME", "DATA_TYPE", "IS_NULLABLE").
		From("information_schema.COLUMNS").
		Where(squirrel.Eq{"TABLE_SCHEMA": m.database, "TABLE_NAME": tableName}).
		OrderBy("ORDINAL_POSITION").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []types.ColumnInfo
	for rows.Next() {
		var name, dataType, nullable string
		if err := rows.Scan(&name, &dataType, &nullable); err != nil {
			return nil, err
		}
		columns = append(columns, types.ColumnInfo{
			Name:     name,
			Type:     dataType,
			Nullable: nullable == "YES",
		})
	}
	return columns, rows.Err()
}
