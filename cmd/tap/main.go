package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tap",
		Short: "Taproom — keg inventory tracker",
		Long:  "Taproom tracks beer kegs held in memory for the lifetime of the process. Run without arguments to open the interactive menu.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "tap.yaml", "path to Taproom config file")
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMenuCmd())
	cmd.AddCommand(newKegCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tap %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
