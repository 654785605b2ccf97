package cli

import (
	"fmt"

	"github.com/eleven-am/crudgen/pkg/crudgen"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display crudgen version and build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), crudgen.FullVersionInfo())
		},
	}
}
