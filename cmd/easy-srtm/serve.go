package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/suprasteel/easy-srtm/internal/logger"
	"github.com/suprasteel/easy-srtm/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve elevation lookups over HTTP",
	Long: `Start an HTTP server exposing:
  - /elevation?lat=...&lng=...  elevation at a coordinate, as JSON
  - /healthz                    health check
  - /metrics                    Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if v, _ := cmd.Flags().GetString("addr"); v != "" {
			cfg.Addr = v
		}
		log := logger.Build(cfg.LogLevel, cfg.LogConsole)

		service, err := newService(cfg)
		if err != nil {
			return err
		}
		defer service.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info().Str("tiles_dir", cfg.TilesDir).Msg("serving elevations")
		return server.Run(ctx, cfg.Addr, service, log)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default $ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}
