package cli

import (
	"github.com/eleven-am/crudgen/internal/logger"
	"github.com/eleven-am/crudgen/pkg/crudgen"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Global configuration variables
var (
	appFs         afero.Fs = afero.NewOsFs()
	configFile    string
	crudgenConfig *CrudgenConfig
	databaseURL   string
	debug         bool
	verbose       bool
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "crudgen",
		Short: "crudgen - PL/SQL CRUD package generator",
		Long: `crudgen expands a table block such as

  table_name("ORDERS");
  table_attr("ID").primarykey;
  table_attr("TOTAL");

into a PL/SQL package specification and body with create, update, delete,
get-by-id and get-all procedures for the table.

Table blocks can be written by hand or read from a live PostgreSQL table
with the introspect command.`,
		Version:       crudgen.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Configure(cmd.ErrOrStderr(), debug, verbose)
			log := logger.CLI()

			var err error
			crudgenConfig, err = LoadConfig(appFs, configFile)
			if err != nil {
				log.Warnf("Failed to load config file: %v", err)
			}

			if crudgenConfig == nil {
				crudgenConfig = DefaultConfig()
			} else {
				log.Debugf("loaded configuration version %s", crudgenConfig.Version)
			}

			if databaseURL == "" && crudgenConfig.Database.URL != "" {
				databaseURL = crudgenConfig.Database.URL
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: crudgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "url", "", "database connection URL for introspect")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newIntrospectCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// currentConfig returns the loaded configuration, or the defaults when a
// command runs without the root pre-run (as in tests).
func currentConfig() *CrudgenConfig {
	if crudgenConfig == nil {
		return DefaultConfig()
	}
	return crudgenConfig
}
