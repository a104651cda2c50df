package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	srtm "github.com/suprasteel/easy-srtm"
	"github.com/suprasteel/easy-srtm/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "easy-srtm",
	Short: "Terrain elevation lookups from a directory of SRTM tiles",
	Long: `easy-srtm reads terrain elevations from a directory of SRTM HGT tiles.

Point it at a folder of .hgt files (named per the SRTM convention,
e.g. N49W002.hgt) and query elevations by latitude and longitude, from
the command line or over HTTP.

Configuration is read from flags, the environment, or a .env file. The
tile directory comes from --tiles-dir or HGT_TILES_FOLDER.`,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("tiles-dir", "d", "", "directory containing .hgt tiles (default $HGT_TILES_FOLDER)")
	rootCmd.PersistentFlags().Int("cache-size", 0, "maximum number of open tile handles (default $TILE_CACHE_SIZE or 128)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL or info)")
	rootCmd.PersistentFlags().Bool("log-console", false, "human-readable log output (default $LOG_CONSOLE)")
}

// loadConfig merges the environment with flags, flags winning.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()
	if v, _ := cmd.Flags().GetString("tiles-dir"); v != "" {
		cfg.TilesDir = v
	}
	if v, _ := cmd.Flags().GetInt("cache-size"); v > 0 {
		cfg.CacheSize = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetBool("log-console"); v {
		cfg.LogConsole = true
	}
	return cfg
}

func newService(cfg config.Config) (*srtm.ElevationService, error) {
	fi, err := os.Stat(cfg.TilesDir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, errors.New("not a dir: " + cfg.TilesDir)
	}
	return srtm.NewElevationService(
		os.DirFS(cfg.TilesDir),
		srtm.WithCacheSize(cfg.CacheSize),
	)
}
