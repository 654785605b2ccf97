// Package introspect reads a table definition from a live PostgreSQL database
// and turns it into a schema.TableSchema.
package introspect

import (
	"context"
	"errors"
	"fmt"

	"github.com/eleven-am/crudgen/internal/schema"
	"github.com/jmoiron/sqlx"
)

var (
	ErrTableNotFound       = errors.New("table not found")
	ErrCompositePrimaryKey = errors.New("composite primary keys are not supported")
	ErrInvalidIdentifier   = errors.New("name cannot be written in a table block")
)

// Inspector names
const (
	KindCatalog = "catalog"
	KindAtlas   = "atlas"
)

// Inspector provides the definition of a single table
type Inspector interface {
	InspectTable(ctx context.Context, schemaName, table string) (*schema.TableSchema, error)
}

// NewInspector creates an inspector by name. An empty kind selects the catalog inspector.
func NewInspector(kind string, db *sqlx.DB) (Inspector, error) {
	switch kind {
	case "", KindCatalog:
		return NewCatalogInspector(db), nil
	case KindAtlas:
		return NewAtlasInspector(db), nil
	default:
		return nil, fmt.Errorf("unsupported inspector: %s", kind)
	}
}

// buildTable assembles a TableSchema from ordered column names and the key columns.
func buildTable(table string, columns, keys []string) (*schema.TableSchema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	if len(keys) > 1 {
		return nil, fmt.Errorf("%w: %s has %d key columns", ErrCompositePrimaryKey, table, len(keys))
	}
	if !schema.IsIdentifier(table) {
		return nil, fmt.Errorf("%w: table %q", ErrInvalidIdentifier, table)
	}
	for _, name := range columns {
		if !schema.IsIdentifier(name) {
			return nil, fmt.Errorf("%w: column %q of %s", ErrInvalidIdentifier, name, table)
		}
	}

	t := &schema.TableSchema{
		Name:    table,
		Columns: make([]schema.Column, 0, len(columns)),
	}
	if len(keys) == 1 {
		t.PrimaryKey = keys[0]
	}

	for _, name := range columns {
		t.Columns = append(t.Columns, schema.Column{
			Name:         name,
			IsPrimaryKey: name == t.PrimaryKey && t.PrimaryKey != "",
		})
	}

	return t, nil
}
