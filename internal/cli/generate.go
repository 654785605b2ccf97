package cli

import (
	"fmt"
	"io"

	"github.com/eleven-am/crudgen/internal/editor"
	"github.com/eleven-am/crudgen/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const stdinPath = "/stdin.sql"

type generateOptions struct {
	lines  string
	stdout bool
	strict bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [file|-]",
		Short: "Generate CRUD procedures for a table block",
		Long: `Generate the PL/SQL package specification and body for the table block
selected in FILE and insert them right after the block.

The selection is the whole file unless --lines picks a range. With "-" the
table block is read from stdin and the expanded text is written to stdout.
With --stdout only the generated blocks are printed and FILE is left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.lines, "lines", "", "line range of the table block, START:END (1-based, inclusive)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the generated blocks instead of updating the file")
	cmd.Flags().BoolVar(&opts.strict, "strict", true, "require exactly one primary key column (overrides schema.strict_mode)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, gen *generateOptions) error {
	log := logger.CLI()
	config := currentConfig()

	opts := editor.RunOptions{
		Strict:  config.Schema.StrictMode,
		Render:  config.RenderOptions(),
		Preview: gen.stdout,
	}
	if cmd.Flags().Changed("strict") {
		opts.Strict = gen.strict
	}

	lines, err := editor.ParseLineRange(gen.lines)
	if err != nil {
		return err
	}

	notifier := &editor.WriterNotifier{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

	if len(args) == 0 {
		_, err := editor.Run(nil, notifier, opts)
		return err
	}

	path := args[0]
	fs := appFs
	fromStdin := path == "-"

	switch {
	case fromStdin:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		fs = afero.NewMemMapFs()
		if err := afero.WriteFile(fs, stdinPath, data, 0644); err != nil {
			return fmt.Errorf("failed to buffer stdin: %w", err)
		}
		path = stdinPath
	case gen.stdout:
		// writes land in memory and never reach the file
		fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(appFs), afero.NewMemMapFs())
	}

	if fromStdin || gen.stdout {
		notifier.Out = cmd.ErrOrStderr()
	}

	log.WithFields(map[string]interface{}{
		"file":   path,
		"lines":  lines.String(),
		"strict": opts.Strict,
	}).Debug("generating")

	buf, err := editor.OpenFile(fs, path, lines)
	if err != nil {
		notifier.Error("No active editor found.")
		return err
	}

	result, err := editor.Run(buf, notifier, opts)
	if err != nil {
		return err
	}

	switch {
	case gen.stdout:
		fmt.Fprint(cmd.OutOrStdout(), result.Output.Declarations+"\n\n"+result.Output.Definitions)
	case fromStdin:
		fmt.Fprint(cmd.OutOrStdout(), result.Text)
	}

	return nil
}
