package editor

import (
	"errors"
	"fmt"

	"github.com/eleven-am/crudgen/internal/logger"
	"github.com/eleven-am/crudgen/internal/render"
	"github.com/eleven-am/crudgen/internal/schema"
)

// User facing messages
const (
	msgNoEditor      = "No active editor found."
	msgFormat        = "Selected text does not match the expected format."
	msgParse         = "Failed to parse the table schema."
	msgSuccessFormat = "CRUD operations for %s generated and updated successfully."
	msgPreviewFormat = "CRUD operations for %s generated."
)

// RunOptions configures one generation.
type RunOptions struct {
	// Strict rejects tables without exactly one primary key before rendering.
	Strict bool
	Render render.Options
	// Preview reports success without claiming the buffer was updated.
	Preview bool
}

// Result describes a successful generation.
type Result struct {
	Table  *schema.TableSchema
	Output *render.Output
	Text   string // the buffer after replacement
}

// Run generates CRUD procedures for the table block selected in ed and writes
// them back after the selection. The buffer is written at most once and only
// after every check has passed.
func Run(ed Editor, n Notifier, opts RunOptions) (*Result, error) {
	log := logger.Editor()

	if ed == nil {
		n.Error(msgNoEditor)
		return nil, ErrNoActiveEditor
	}

	selected, err := ed.Selection()
	if err != nil {
		n.Error(msgNoEditor)
		return nil, fmt.Errorf("%w: %v", ErrNoActiveEditor, err)
	}

	if !schema.Matches(selected) {
		n.Error(msgFormat)
		return nil, schema.ErrGrammarMismatch
	}

	table := schema.Extract(selected)
	if err := table.Validate(); err != nil {
		n.Error(msgParse)
		return nil, err
	}

	if opts.Strict {
		if err := table.ValidatePrimaryKey(); err != nil {
			n.Error(primaryKeyMessage(table, err))
			return nil, err
		}
	} else if len(table.PrimaryKeyColumns()) != 1 {
		log.WithField("table", table.Name).Warnf("table has %d primary key columns, using %q", len(table.PrimaryKeyColumns()), table.PrimaryKey)
	}

	renderer, err := render.New(opts.Render)
	if err != nil {
		n.Error(err.Error())
		return nil, err
	}

	output, err := renderer.Render(table)
	if err != nil {
		n.Error(err.Error())
		return nil, fmt.Errorf("failed to render procedures for %s: %w", table.Name, err)
	}

	full, err := ed.FullText()
	if err != nil {
		n.Error(msgNoEditor)
		return nil, fmt.Errorf("%w: %v", ErrNoActiveEditor, err)
	}

	updated := Splice(full, selected, output.Expand(selected))
	if err := ed.ReplaceAll(updated); err != nil {
		n.Error(fmt.Sprintf("Failed to update the editor: %v", err))
		return nil, fmt.Errorf("failed to replace buffer: %w", err)
	}

	if opts.Preview {
		n.Info(fmt.Sprintf(msgPreviewFormat, table.Name))
	} else {
		n.Info(fmt.Sprintf(msgSuccessFormat, table.Name))
	}
	log.WithField("table", table.Name).Info("buffer updated")

	return &Result{Table: table, Output: output, Text: updated}, nil
}

func primaryKeyMessage(table *schema.TableSchema, err error) string {
	switch {
	case errors.Is(err, schema.ErrNoPrimaryKey):
		return fmt.Sprintf("Table %s has no primary key. Mark one column with .primarykey.", table.Name)
	case errors.Is(err, schema.ErrMultiplePrimaryKeys):
		return fmt.Sprintf("Table %s has more than one primary key. Mark exactly one column with .primarykey.", table.Name)
	case errors.Is(err, schema.ErrNoDataColumns):
		return fmt.Sprintf("Table %s has no columns besides its primary key.", table.Name)
	default:
		return err.Error()
	}
}
