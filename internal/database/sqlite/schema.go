package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Rana718/bankseed/internal/database/common"
	"github.com/Rana718/bankseed/internal/types"
)

func (s *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := s.qb.Select("name").
		From("sqlite_master").
		Where("type = 'table'").
		Where("name NOT LIKE 'sqlite_%'").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
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

func (s *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]types.ColumnInfo, error) {
	// PRAGMA takes no bound parameters
	if err := common.ValidateIdentifier(tableName); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quote(tableName)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []types.ColumnInfo
	for rows.Next() {
		var (
			cid          int
			name         string
			dataType     string
			notNull      int
			defaultValue sql.NullString
			pk           int
		)
		if err := rows.Scan(&cid, &name, &dataType, &notNull, &defaultValue, &pk); err != nil {
			return nil, err
		}
		columns = append(columns, types.ColumnInfo{
			Name:     name,
			Type:     dataType,
			Nullable: notNull == 0,
		})
	}
	return columns, rows.Err()
}

// GetForeignKeys lists the FOREIGN KEY clauses declared on a table.
func (s *Adapter) GetForeignKeys(ctx context.Context, tableName string) ([]types.ForeignKey, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA foreign_key_list(%s)", quote(tableName)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []types.ForeignKey
	for rows.Next() {
		var (
			id, seq                         int
			refTable, from                  string
			to                              sql.NullString
			onUpdate, onDelete, matchClause string
		)
		if err := rows.Scan(&id, &seq, &refTable, &from, &to, &onUpdate, &onDelete, &matchClause); err != nil {
			return nil, err
		}
		fks = append(fks, types.ForeignKey{
			Table:     tableName,
			Column:    from,
			RefTable:  refTable,
			RefColumn: to.String,
		})
	}
	return fks, rows.Err()
}
