package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	srtm "github.com/suprasteel/easy-srtm"
	"github.com/suprasteel/easy-srtm/internal/logger"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch TILE...",
	Short: "Download tiles into the tile directory",
	Long: `Download the named tiles (e.g. N49W001 or N49W001.hgt) into the tile
directory. The source URL template must contain a {name} placeholder
and comes from --url-template or HGT_URL_TEMPLATE.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if v, _ := cmd.Flags().GetString("url-template"); v != "" {
			cfg.URLTemplate = v
		}
		if cfg.URLTemplate == "" {
			return errors.New("no URL template: set --url-template or HGT_URL_TEMPLATE")
		}
		log := logger.Build(cfg.LogLevel, cfg.LogConsole)

		downloader := srtm.NewDownloader(cfg.TilesDir, cfg.URLTemplate)
		for _, name := range args {
			if !strings.HasSuffix(name, ".hgt") {
				name += ".hgt"
			}
			log.Info().Str("tile", name).Msg("fetching")
			if err := downloader.Fetch(cmd.Context(), name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("url-template", "", "tile source URL template with a {name} placeholder (default $HGT_URL_TEMPLATE)")
	rootCmd.AddCommand(fetchCmd)
}
