package introspect

import (
	"context"
	"fmt"

	"ariga.io/atlas/sql/postgres"
	atlasschema "ariga.io/atlas/sql/schema"
	"github.com/eleven-am/crudgen/internal/logger"
	"github.com/eleven-am/crudgen/internal/schema"
	"github.com/jmoiron/sqlx"
)

// AtlasInspector reads tables through the atlas PostgreSQL driver.
type AtlasInspector struct {
	db *sqlx.DB
}

func NewAtlasInspector(db *sqlx.DB) *AtlasInspector {
	return &AtlasInspector{db: db}
}

func (i *AtlasInspector) InspectTable(ctx context.Context, schemaName, table string) (*schema.TableSchema, error) {
	driver, err := postgres.Open(i.db.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to create atlas driver: %w", err)
	}

	s, err := driver.InspectSchema(ctx, schemaName, &atlasschema.InspectOptions{
		Tables: []string{table},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to inspect schema %s: %w", schemaName, err)
	}

	t, ok := s.Table(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrTableNotFound, schemaName, table)
	}

	logger.DB().WithField("table", table).Debugf("atlas: %d columns", len(t.Columns))

	return tableFromAtlas(t)
}

// tableFromAtlas converts an inspected atlas table.
func tableFromAtlas(t *atlasschema.Table) (*schema.TableSchema, error) {
	columns := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		columns[i] = col.Name
	}

	var keys []string
	if t.PrimaryKey != nil {
		for _, part := range t.PrimaryKey.Parts {
			if part.C == nil {
				return nil, fmt.Errorf("primary key of %s uses an expression", t.Name)
			}
			keys = append(keys, part.C.Name)
		}
	}

	return buildTable(t.Name, columns, keys)
}
