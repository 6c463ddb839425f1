package main

import (
	"github.com/spf13/cobra"
	"github.com/zulandar/taproom/internal/shell"
)

func newMenuCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive keg tracker menu",
		Long:  "Runs the numbered menu loop: add kegs, update volumes, list the inventory. State lives in memory and is discarded on exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "tap.yaml", "path to Taproom config file")
	return cmd
}

func runMenu(cmd *cobra.Command, configPath string) error {
	cfg, tr, err := openTracker(configPath)
	if err != nil {
		return err
	}
	defer tr.Close()

	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), tr, cfg.Units)
	return sh.Run()
}
