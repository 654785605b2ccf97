package schema

import (
	"errors"
	"strings"
)

var (
	ErrGrammarMismatch     = errors.New("text does not start with a table_name declaration")
	ErrEmptyExtraction     = errors.New("failed to parse the table schema")
	ErrNoPrimaryKey        = errors.New("no primary key defined")
	ErrMultiplePrimaryKeys = errors.New("more than one primary key defined")
	ErrNoDataColumns       = errors.New("no columns besides the primary key")
)

// ValidationError describes why a TableSchema cannot be rendered
type ValidationError struct {
	Table  string // Table involved
	Column string // Column involved (if applicable)
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	parts := []string{"schema"}

	if e.Table != "" {
		parts = append(parts, "table="+e.Table)
	}

	if e.Column != "" {
		parts = append(parts, "column="+e.Column)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	return strings.Join(parts, ": ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
