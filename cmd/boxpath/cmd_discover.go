package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/oceanbgc/boxpath/internal/registry"
)

var discoverDepth int

var discoverCmd = &cobra.Command{
	Use:   "discover [path]",
	Short: "Map subfolders of a directory to normalized identifiers",
	Long: "discover scans a directory (the sync root by default) and prints " +
		"an identifier-keyed listing of its subfolders, the same mapping " +
		"auto-discovery uses.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := ""
		if len(args) == 1 {
			base = args[0]
		} else {
			root, err := resolver.Root()
			if err != nil {
				return err
			}
			base = root
		}

		discovered, err := registry.Discover(base, discoverDepth)
		if err != nil {
			return fmt.Errorf("discover %s: %w", base, err)
		}

		ids := make([]string, 0, len(discovered))
		for id := range discovered {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			fmt.Printf("%-32s %s\n", id, discovered[id])
		}
		return nil
	},
}

func init() {
	discoverCmd.Flags().IntVar(&discoverDepth, "depth", 2,
		"how many directory levels to scan")
}
