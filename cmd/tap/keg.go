package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/zulandar/taproom/internal/config"
	"github.com/zulandar/taproom/internal/shell"
	"github.com/zulandar/taproom/internal/store"
	"github.com/zulandar/taproom/internal/store/memstore"
	"github.com/zulandar/taproom/internal/store/sqlitestore"
	"github.com/zulandar/taproom/internal/tracker"
)

func newKegCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keg",
		Short: "Keg inventory commands",
	}

	cmd.AddCommand(newKegListCmd())
	cmd.AddCommand(newKegShowCmd())
	return cmd
}

func newKegListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List kegs",
		Long:  "Renders the inventory table once and exits. Without a seed_file in the config there is nothing to show.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKegList(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "tap.yaml", "path to Taproom config file")
	return cmd
}

func runKegList(cmd *cobra.Command, configPath string) error {
	_, tr, err := openTracker(configPath)
	if err != nil {
		return err
	}
	defer tr.Close()

	kegs, err := tr.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(kegs) == 0 {
		fmt.Fprintln(out, "No kegs in the system.")
		return nil
	}
	shell.WriteTable(out, kegs)
	return nil
}

func newKegShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show keg details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKegShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "tap.yaml", "path to Taproom config file")
	return cmd
}

func runKegShow(cmd *cobra.Command, configPath, rawID string) error {
	cfg, tr, err := openTracker(configPath)
	if err != nil {
		return err
	}
	defer tr.Close()

	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not a keg ID", rawID)
	}

	keg, err := tr.Get(uint(id))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %d\n", keg.ID)
	fmt.Fprintf(out, "Beer Type: %s\n", keg.BeerType)
	fmt.Fprintf(out, "Size:      %s %s\n", shell.FormatVolume(keg.Size), cfg.Units)
	fmt.Fprintf(out, "Current:   %s %s\n", shell.FormatVolume(keg.CurrentVolume), cfg.Units)
	fmt.Fprintf(out, "Location:  %s\n", keg.Location)
	fmt.Fprintf(out, "Updated:   %s\n", time.Unix(keg.LastUpdated, 0).Format("2006-01-02 15:04:05"))
	return nil
}

// openTracker loads config, opens the configured storage driver, and
// applies the seed file if one is set.
func openTracker(configPath string) (*config.Config, *tracker.Tracker, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	var st store.Store
	switch cfg.Storage.Driver {
	case "sqlite":
		st, err = sqlitestore.Open()
		if err != nil {
			return nil, nil, err
		}
	default:
		st = memstore.New()
	}

	tr := tracker.New(st, nil)
	if cfg.SeedFile != "" {
		if err := applySeed(tr, cfg.SeedFile); err != nil {
			tr.Close()
			return nil, nil, err
		}
	}
	return cfg, tr, nil
}

// applySeed loads the startup inventory through the normal operations so
// seed entries face the same validation as interactive input.
func applySeed(tr *tracker.Tracker, path string) error {
	seed, err := config.LoadSeed(path)
	if err != nil {
		return err
	}
	for i, sk := range seed.Kegs {
		keg, err := tr.Add(tracker.AddOpts{BeerType: sk.BeerType, Size: sk.Size, Location: sk.Location})
		if err != nil {
			return fmt.Errorf("seed keg %d: %w", i+1, err)
		}
		if sk.Volume != nil {
			if err := tr.UpdateVolume(keg.ID, *sk.Volume); err != nil {
				return fmt.Errorf("seed keg %d: %w", i+1, err)
			}
		}
	}
	return nil
}
