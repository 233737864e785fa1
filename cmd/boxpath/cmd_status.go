package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oceanbgc/boxpath/internal/core/status"
	"github.com/oceanbgc/boxpath/internal/domain"
	"github.com/oceanbgc/boxpath/internal/logger"
)

var (
	statusDownload bool
	statusEach     bool
)

var statusCmd = &cobra.Command{
	Use:   "status <path>...",
	Short: "Report cloud-sync status for files or directories",
	Long: "status classifies each path as synced, online-only, or syncing. " +
		"With --each, a directory argument is expanded to its immediate " +
		"entries; otherwise the directory entry itself is classified.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prober := status.New()
		log := logger.Get()

		var opts []status.Option
		if statusDownload {
			opts = append(opts, status.WithDownload())
		}

		for _, arg := range args {
			for _, path := range expand(arg) {
				report := prober.Probe(path, opts...)
				log.Debug("probed path", "path", path, "state", string(report.State))
				printReport(report)
			}
		}
		return nil
	},
}

// expand turns a directory argument into its immediate entries when --each
// is set. Aggregation over a tree stays a caller-level loop.
func expand(path string) []string {
	if !statusEach {
		return []string{path}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return []string{path}
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(path, entry.Name()))
	}
	if len(paths) == 0 {
		return []string{path}
	}
	return paths
}

func printReport(r domain.StatusReport) {
	label := string(r.State)
	if r.Err != "" {
		label = fmt.Sprintf("%s (%s)", label, r.Err)
	}
	if r.Downloaded {
		label += " [download requested]"
	}
	fmt.Printf("%-12s %s\n", label, r.Path)
}

func init() {
	statusCmd.Flags().BoolVar(&statusDownload, "download", false,
		"request hydration of online-only entries")
	statusCmd.Flags().BoolVar(&statusEach, "each", false,
		"expand directory arguments to their immediate entries")
}
