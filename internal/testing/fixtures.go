package testing

import (
	"strings"

	"github.com/eleven-am/crudgen/internal/schema"
)

// CreateTestTable builds a table whose first column is the primary key.
// An empty key creates a table without one.
func CreateTestTable(name, key string, columns ...string) *schema.TableSchema {
	t := &schema.TableSchema{Name: name, PrimaryKey: key}
	if key != "" {
		t.Columns = append(t.Columns, schema.Column{Name: key, IsPrimaryKey: true})
	}
	for _, col := range columns {
		t.Columns = append(t.Columns, schema.Column{Name: col})
	}
	return t
}

// CreateTestBlock returns the table block for the same table CreateTestTable builds
func CreateTestBlock(name, key string, columns ...string) string {
	return schema.Format(CreateTestTable(name, key, columns...))
}

// Lines joins lines the way a saved file holds them, with a final newline
func Lines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
