package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/frankyi-gh/aplcheck/internal/api"
	"github.com/frankyi-gh/aplcheck/internal/audit"
	"github.com/frankyi-gh/aplcheck/internal/config"
	"github.com/frankyi-gh/aplcheck/internal/engine"
	"github.com/frankyi-gh/aplcheck/internal/store"
)

var serveConfigFile string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the aplcheck server",
	Long: `Runs the HTTP API: checks and traces against the configured APL, stored
run listing, and admin APL updates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load(serveConfigFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if addr == "" {
			addr = cfg.Server.Addr
		}
		if addr == "" {
			addr = ":8913"
		}
		if cfg.Server.SigningKey == "" {
			return fmt.Errorf("server.signing_key is required to protect admin routes")
		}

		apl, err := cfg.APL.Build()
		if err != nil {
			return fmt.Errorf("building apl: %w", err)
		}
		log.Info().
			Int("rules", len(apl.Rules)).
			Int("conditions", len(apl.Conditions)).
			Msg("APL loaded")

		auditor, err := audit.FromConfig(cfg.Audit)
		if err != nil {
			return fmt.Errorf("building auditor: %w", err)
		}
		defer func() {
			if err := auditor.Close(); err != nil {
				log.Error().Err(err).Msg("closing auditor")
			}
		}()

		manager := engine.NewManager(apl)
		runStore := store.NewInMemoryRunStore()

		srv := api.NewServer(manager, runStore, auditor)

		server := &http.Server{
			Addr:    addr,
			Handler: srv.Routes([]byte(cfg.Server.SigningKey)),
		}

		go func() {
			log.Info().Msgf("Starting server on %s...", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("server failed")
			}
		}()

		// wait for interrupt signal to gracefully shut down
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info().Msg("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "aplcheck.yaml", "Path to the server config file")
	serveCmd.Flags().String("addr", "", "Address to listen on (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
