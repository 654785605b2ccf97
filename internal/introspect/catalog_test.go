package introspect

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eleven-am/crudgen/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	columnsQuery    = "SELECT column_name FROM information_schema.columns WHERE table_schema = $1 AND table_name = $2 ORDER BY ordinal_position"
	primaryKeyQuery = "SELECT kcu.column_name FROM information_schema.table_constraints tc JOIN information_schema.key_column_usage kcu"
)

func TestCatalogInspector_InspectTable(t *testing.T) {
	ctx := context.Background()

	t.Run("orders table", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(columnsQuery)).
			WithArgs("public", "orders").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
				AddRow("id").
				AddRow("customer_name").
				AddRow("total"))
		mock.ExpectQuery(regexp.QuoteMeta(primaryKeyQuery)).
			WithArgs("PRIMARY KEY", "public", "orders").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))

		table, err := NewCatalogInspector(db).InspectTable(ctx, "public", "orders")
		require.NoError(t, err)

		assert.Equal(t, "orders", table.Name)
		assert.Equal(t, "id", table.PrimaryKey)
		assert.Equal(t, []string{"id", "customer_name", "total"}, schema.ColumnNames(table.Columns))
		assert.True(t, table.Columns[0].IsPrimaryKey)
		assert.NoError(t, table.ValidatePrimaryKey())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing table", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(columnsQuery)).
			WithArgs("public", "ghost").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
		mock.ExpectQuery(regexp.QuoteMeta(primaryKeyQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

		_, err := NewCatalogInspector(db).InspectTable(ctx, "public", "ghost")
		assert.ErrorIs(t, err, ErrTableNotFound)
	})

	t.Run("composite key", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(columnsQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("order_id").AddRow("line"))
		mock.ExpectQuery(regexp.QuoteMeta(primaryKeyQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("order_id").AddRow("line"))

		_, err := NewCatalogInspector(db).InspectTable(ctx, "sales", "line_items")
		assert.ErrorIs(t, err, ErrCompositePrimaryKey)
	})

	t.Run("quoted column name", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(columnsQuery)).
			WithArgs("public", "orders").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
				AddRow("id").
				AddRow("total amount").
				AddRow("note"))
		mock.ExpectQuery(regexp.QuoteMeta(primaryKeyQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))

		table, err := NewCatalogInspector(db).InspectTable(ctx, "public", "orders")
		assert.Nil(t, table)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(columnsQuery)).
			WillReturnError(errors.New("connection reset"))

		_, err := NewCatalogInspector(db).InspectTable(ctx, "public", "orders")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query columns of public.orders")
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestCatalogInspector_FormatsTableBlock(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(columnsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("ID").AddRow("TOTAL"))
	mock.ExpectQuery(regexp.QuoteMeta(primaryKeyQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("ID"))

	table, err := NewCatalogInspector(db).InspectTable(context.Background(), "public", "ORDERS")
	require.NoError(t, err)

	block := schema.Format(table)
	assert.Equal(t, "table_name(\"ORDERS\");\ntable_attr(\"ID\").primarykey;\ntable_attr(\"TOTAL\");", block)
	assert.Equal(t, table, schema.Extract(block))
}
