package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oceanbgc/boxpath/internal/config"
	"github.com/oceanbgc/boxpath/internal/core/locator"
	"github.com/oceanbgc/boxpath/internal/logger"
	"github.com/oceanbgc/boxpath/internal/registry"
)

var version = "0.3.0"

var (
	configFile string
	cfg        *config.Config
	resolver   *locator.Resolver
)

var rootCmd = &cobra.Command{
	Use:   "boxpath",
	Short: "Resolve and inspect the group's cloud-synced folder paths",
	Long: "boxpath locates the group's cloud-sync root folder, maps logical names " +
		"to paths beneath it, reports per-file sync status, and scaffolds " +
		"standard research-project directory trees.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}

		if err := logger.Init(logger.Config{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			File: logger.FileConfig{
				Enabled:    cfg.Log.File.Enabled,
				Path:       cfg.Log.File.Path,
				MaxSizeMB:  cfg.Log.File.MaxSizeMB,
				MaxAgeDays: cfg.Log.File.MaxAgeDays,
				MaxBackups: cfg.Log.File.MaxBackups,
				Compress:   cfg.Log.File.Compress,
			},
		}); err != nil {
			return err
		}

		resolver = locator.NewResolver(locator.New(cfg.GroupFolder), cfg.BasePath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Shutdown()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("boxpath %s\n", version)
	},
}

// sessionPaths builds the path registry for the resolved root
func sessionPaths() (*registry.Paths, error) {
	root, err := resolver.Root()
	if err != nil {
		return nil, err
	}
	return registry.New(root, cfg.PersonalFolder), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(rootPathCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(projectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
