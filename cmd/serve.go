package cmd

import (
	"os/signal"
	"syscall"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/internal/dashboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd runs the HTTP dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP dashboard and JSON API",
	Long: `Serve the score card page and a JSON API until interrupted.

Routes:
  GET  /                  score card for query-string ratings
  GET  /health            liveness probe
  GET  /api/v1/ratings    rating factors with bounds and defaults
  GET  /api/v1/score      score from query-string ratings
  POST /api/v1/score      score from a JSON body
  GET  /api/v1/factors    weighted success-factor table
  POST /api/v1/factors    weighted custom table from a JSON body
  GET  /api/v1/tiers      tier definitions

Examples:
  # Listen on the default address
  dealscore serve

  # Allow a browser front-end on another origin
  dealscore serve --addr :8080 --cors-origins https://deals.example.com --log-format json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger, err := contract.NewLogger(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		logger.Info("starting dashboard", zap.String("addr", cfg.Addr), zap.String("history", string(cfg.HistoryBackend)))
		return dashboard.New(cfg, storeManager, logger).ListenAndServe(ctx)
	},
}
