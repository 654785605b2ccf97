package cli

import (
	"bytes"
	"context"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eleven-am/crudgen/internal/editor"
	"github.com/eleven-am/crudgen/internal/introspect"
	"github.com/eleven-am/crudgen/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogMock(t *testing.T, keys ...string) *introspect.CatalogInspector {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectQuery(regexp.QuoteMeta("SELECT column_name FROM information_schema.columns")).
		WithArgs("public", "orders").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
			AddRow("id").
			AddRow("total"))

	keyRows := sqlmock.NewRows([]string{"column_name"})
	for _, k := range keys {
		keyRows.AddRow(k)
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT kcu.column_name FROM information_schema.table_constraints")).
		WithArgs("PRIMARY KEY", "public", "orders").
		WillReturnRows(keyRows)

	return introspect.NewCatalogInspector(sqlx.NewDb(db, "sqlmock"))
}

func TestDescribeTable(t *testing.T) {
	ctx := context.Background()

	t.Run("prints the table block", func(t *testing.T) {
		var out bytes.Buffer
		rec := &editor.Recorder{}

		err := describeTable(ctx, newCatalogMock(t, "id"), "public", "orders", false, editor.RunOptions{Strict: true}, rec, &out)
		require.NoError(t, err)

		assert.Equal(t, "table_name(\"orders\");\ntable_attr(\"id\").primarykey;\ntable_attr(\"total\");\n", out.String())
		assert.Empty(t, rec.Infos)
	})

	t.Run("generates procedures", func(t *testing.T) {
		var out bytes.Buffer
		rec := &editor.Recorder{}

		err := describeTable(ctx, newCatalogMock(t, "id"), "public", "orders", true, editor.RunOptions{Strict: true}, rec, &out)
		require.NoError(t, err)

		text := out.String()
		assert.True(t, strings.HasPrefix(text, "table_name(\"orders\");"))
		assert.Contains(t, text, "CREATE OR REPLACE PACKAGE orders_package IS")
		assert.Contains(t, text, "WHERE id = u_id;")
		assert.Len(t, rec.Infos, 1)
	})

	t.Run("reports through the logger", func(t *testing.T) {
		var out, logs bytes.Buffer
		logger.Configure(&logs, false, true)
		defer logger.Configure(os.Stderr, false, false)

		err := describeTable(ctx, newCatalogMock(t, "id"), "public", "orders", true, editor.RunOptions{Strict: true}, &editor.LogNotifier{Log: logger.CLI()}, &out)
		require.NoError(t, err)

		assert.Contains(t, logs.String(), "CRUD operations for orders generated and updated successfully.")
		assert.Contains(t, logs.String(), "component=db")
		assert.NotContains(t, out.String(), "successfully")
	})

	t.Run("table without primary key", func(t *testing.T) {
		var out bytes.Buffer
		rec := &editor.Recorder{}

		err := describeTable(ctx, newCatalogMock(t), "public", "orders", true, editor.RunOptions{Strict: true}, rec, &out)
		require.Error(t, err)
		assert.Empty(t, out.String())
	})
}

func TestIntrospectCommand(t *testing.T) {
	t.Run("requires a database url", func(t *testing.T) {
		_, _, err := executeCommand(t, afero.NewMemMapFs(), "", "introspect", "--table", "orders")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database URL is required")
	})

	t.Run("requires a table", func(t *testing.T) {
		_, _, err := executeCommand(t, afero.NewMemMapFs(), "", "introspect", "--url", "postgres://localhost/db")
		assert.Error(t, err)
	})
}
