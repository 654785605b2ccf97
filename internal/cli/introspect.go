package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/eleven-am/crudgen/internal/editor"
	"github.com/eleven-am/crudgen/internal/introspect"
	"github.com/eleven-am/crudgen/internal/logger"
	"github.com/eleven-am/crudgen/internal/schema"
	"github.com/spf13/cobra"
)

type introspectOptions struct {
	table     string
	schema    string
	inspector string
	generate  bool
}

func newIntrospectCmd() *cobra.Command {
	opts := &introspectOptions{}

	cmd := &cobra.Command{
		Use:   "introspect",
		Short: "Print the table block of a database table",
		Long: `Read a table from a PostgreSQL database and print it as a table block.

With --generate the CRUD procedures are rendered after the block, exactly as
the generate command would insert them. Progress and errors are logged; use
--verbose to see the success message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntrospect(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.table, "table", "", "table to inspect (required)")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "database schema (default from config, public)")
	cmd.Flags().StringVar(&opts.inspector, "inspector", "", "inspector to use: catalog or atlas")
	cmd.Flags().BoolVar(&opts.generate, "generate", false, "also render the CRUD procedures")
	cmd.MarkFlagRequired("table")

	return cmd
}

func runIntrospect(cmd *cobra.Command, in *introspectOptions) error {
	config := currentConfig()

	if in.table == "" {
		return fmt.Errorf("--table is required")
	}

	url := databaseURL
	if url == "" {
		url = config.Database.URL
	}
	if url == "" {
		return fmt.Errorf("database URL is required (use --url or database.url in crudgen.yaml)")
	}

	schemaName := in.schema
	if schemaName == "" {
		schemaName = config.Database.Schema
	}

	kind := in.inspector
	if kind == "" {
		kind = config.Database.Inspector
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbConfig := introspect.NewDBConfig(url)
	if config.Database.MaxConnections > 0 {
		dbConfig.MaxOpenConns = config.Database.MaxConnections
	}

	db, err := dbConfig.Connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer db.Close()

	inspector, err := introspect.NewInspector(kind, db)
	if err != nil {
		return err
	}

	opts := editor.RunOptions{Strict: config.Schema.StrictMode, Render: config.RenderOptions()}
	notifier := &editor.LogNotifier{Log: logger.CLI()}

	return describeTable(ctx, inspector, schemaName, in.table, in.generate, opts, notifier, cmd.OutOrStdout())
}

// describeTable writes the table block of table to out, followed by the
// generated procedures when generate is set.
func describeTable(ctx context.Context, inspector introspect.Inspector, schemaName, table string, generate bool, opts editor.RunOptions, n editor.Notifier, out io.Writer) error {
	log := logger.DB().WithFields(map[string]interface{}{
		"schema": schemaName,
		"table":  table,
	})

	t, err := inspector.InspectTable(ctx, schemaName, table)
	if err != nil {
		return fmt.Errorf("failed to inspect %s.%s: %w", schemaName, table, err)
	}
	log.Infof("inspected %d columns", len(t.Columns))

	block := schema.Format(t)
	if !generate {
		fmt.Fprintln(out, block)
		return nil
	}

	result, err := editor.Run(editor.NewBuffer(block), n, opts)
	if err != nil {
		return err
	}

	fmt.Fprint(out, result.Text)
	return nil
}
