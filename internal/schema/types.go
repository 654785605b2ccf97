package schema

import "fmt"

// Column is one table_attr declaration.
type Column struct {
	Name         string
	IsPrimaryKey bool
}

// TableSchema is the parsed form of a table block
type TableSchema struct {
	Name       string
	Columns    []Column
	PrimaryKey string // name of the last column flagged primary key, empty if none
}

// DataColumns returns the columns not flagged as primary key, in source order.
func (t *TableSchema) DataColumns() []Column {
	cols := make([]Column, 0, len(t.Columns))
	for _, col := range t.Columns {
		if !col.IsPrimaryKey {
			cols = append(cols, col)
		}
	}
	return cols
}

// PrimaryKeyColumns returns every column flagged as primary key, in source order.
func (t *TableSchema) PrimaryKeyColumns() []Column {
	var cols []Column
	for _, col := range t.Columns {
		if col.IsPrimaryKey {
			cols = append(cols, col)
		}
	}
	return cols
}

// ColumnNames returns the names of the given columns.
func ColumnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}
	return names
}

// Validate checks that extraction produced a table name and at least one column.
func (t *TableSchema) Validate() error {
	if t.Name == "" {
		return &ValidationError{Err: ErrEmptyExtraction, Detail: "missing table name"}
	}
	if len(t.Columns) == 0 {
		return &ValidationError{Table: t.Name, Err: ErrEmptyExtraction, Detail: "no columns"}
	}
	return nil
}

// ValidatePrimaryKey checks that exactly one column is the primary key and that
// at least one other column is left for create and update.
func (t *TableSchema) ValidatePrimaryKey() error {
	keys := t.PrimaryKeyColumns()
	switch {
	case len(keys) == 0:
		return &ValidationError{Table: t.Name, Err: ErrNoPrimaryKey}
	case len(keys) > 1:
		return &ValidationError{
			Table:  t.Name,
			Column: keys[len(keys)-1].Name,
			Err:    ErrMultiplePrimaryKeys,
			Detail: fmt.Sprintf("%d columns flagged", len(keys)),
		}
	}

	if len(t.DataColumns()) == 0 {
		return &ValidationError{Table: t.Name, Column: t.PrimaryKey, Err: ErrNoDataColumns}
	}

	return nil
}
