package introspect

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/eleven-am/crudgen/internal/logger"
	"github.com/eleven-am/crudgen/internal/schema"
	"github.com/jmoiron/sqlx"
)

// CatalogInspector reads tables from information_schema.
type CatalogInspector struct {
	db *sqlx.DB
}

func NewCatalogInspector(db *sqlx.DB) *CatalogInspector {
	return &CatalogInspector{db: db}
}

func (i *CatalogInspector) InspectTable(ctx context.Context, schemaName, table string) (*schema.TableSchema, error) {
	columns, err := i.columnNames(ctx, schemaName, table)
	if err != nil {
		return nil, err
	}

	keys, err := i.primaryKeyColumns(ctx, schemaName, table)
	if err != nil {
		return nil, err
	}

	logger.DB().WithField("table", table).Debugf("catalog: %d columns, key %v", len(columns), keys)

	return buildTable(table, columns, keys)
}

func (i *CatalogInspector) columnNames(ctx context.Context, schemaName, table string) ([]string, error) {
	query, args, err := squirrel.Select("column_name").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_schema": schemaName}).
		Where(squirrel.Eq{"table_name": table}).
		OrderBy("ordinal_position").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build columns query: %w", err)
	}

	var columns []string
	if err := i.db.SelectContext(ctx, &columns, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query columns of %s.%s: %w", schemaName, table, err)
	}

	return columns, nil
}

func (i *CatalogInspector) primaryKeyColumns(ctx context.Context, schemaName, table string) ([]string, error) {
	query, args, err := squirrel.Select("kcu.column_name").
		From("information_schema.table_constraints tc").
		Join("information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema").
		Where(squirrel.Eq{"tc.constraint_type": "PRIMARY KEY"}).
		Where(squirrel.Eq{"tc.table_schema": schemaName}).
		Where(squirrel.Eq{"tc.table_name": table}).
		OrderBy("kcu.ordinal_position").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build primary key query: %w", err)
	}

	var keys []string
	if err := i.db.SelectContext(ctx, &keys, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query primary key of %s.%s: %w", schemaName, table, err)
	}

	return keys, nil
}
