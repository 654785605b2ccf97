// Package crudgen generates PL/SQL CRUD packages from table blocks. It is the
// entry point for hosts such as editor plugins that hold the text in memory.
package crudgen

import (
	"errors"
	"strings"

	"github.com/eleven-am/crudgen/internal/editor"
	"github.com/eleven-am/crudgen/internal/render"
	"github.com/eleven-am/crudgen/internal/schema"
)

var (
	ErrGrammarMismatch     = schema.ErrGrammarMismatch
	ErrEmptyExtraction     = schema.ErrEmptyExtraction
	ErrNoPrimaryKey        = schema.ErrNoPrimaryKey
	ErrMultiplePrimaryKeys = schema.ErrMultiplePrimaryKeys
	ErrNoDataColumns       = schema.ErrNoDataColumns
)

// Options controls validation and naming. Empty names use the defaults
// (_package, c_, u_, d_, gid_).
type Options struct {
	Strict        bool
	PackageSuffix string
	CreatePrefix  string
	UpdatePrefix  string
	DeletePrefix  string
	GetByIDPrefix string
}

// Result of a generation
type Result struct {
	Table        string
	Columns      []string
	PrimaryKey   string
	Declarations string
	Definitions  string
	Text         string // table block followed by both generated blocks
}

// Generate renders the CRUD package for the table block text.
func Generate(text string, opts Options) (*Result, error) {
	return GenerateSelection(text, text, opts)
}

// GenerateSelection renders the CRUD package for the table block selected in
// full and returns full with the generated blocks inserted after the selection.
func GenerateSelection(full, selected string, opts Options) (*Result, error) {
	if selected == "" {
		return nil, ErrGrammarMismatch
	}

	start := strings.Index(full, selected)
	if start < 0 {
		return nil, errors.New("selection not found in text")
	}

	buf := &editor.Buffer{Text: full, Start: start, End: start + len(selected)}
	if selected == full {
		buf = editor.NewBuffer(full)
	}

	rec := &editor.Recorder{}
	res, err := editor.Run(buf, rec, editor.RunOptions{
		Strict: opts.Strict,
		Render: render.Options{
			PackageSuffix: opts.PackageSuffix,
			CreatePrefix:  opts.CreatePrefix,
			UpdatePrefix:  opts.UpdatePrefix,
			DeletePrefix:  opts.DeletePrefix,
			GetByIDPrefix: opts.GetByIDPrefix,
		},
	})
	if err != nil {
		if len(rec.Errors) > 0 {
			return nil, &Error{Message: rec.Errors[0], Err: err}
		}
		return nil, err
	}

	return &Result{
		Table:        res.Table.Name,
		Columns:      schema.ColumnNames(res.Table.Columns),
		PrimaryKey:   res.Table.PrimaryKey,
		Declarations: res.Output.Declarations,
		Definitions:  res.Output.Definitions,
		Text:         res.Text,
	}, nil
}

// Error carries the message a host should show to the user.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
