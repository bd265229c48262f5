package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/arefai/juzdigest/internal/api"
)

var daily bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated site over HTTP",
	Long: `Serve the output directory as a static site, with an authenticated
POST /api/generate endpoint to trigger a run. With --daily, a generation run
is also scheduled on GENERATE_CRON (default "0 6 * * *").

Example:
  juzdigest serve
  juzdigest serve --daily`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&daily, "daily", false, "schedule a daily generation run")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("JUZDIGEST_API_KEY is required in serve mode")
	}

	runner, err := buildRunner()
	if err != nil {
		return err
	}
	srv := api.NewServer(runner, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var scheduler *cron.Cron
	if daily {
		scheduler = cron.New()
		if _, err := scheduler.AddFunc(cfg.GenerateCron, func() {
			if !srv.TriggerGenerate() {
				log.Warn("scheduled run skipped, previous run still in progress")
			}
		}); err != nil {
			return fmt.Errorf("add cron job: %w", err)
		}
		scheduler.Start()
		log.Info("daily generation scheduled", "cron", cfg.GenerateCron)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		if scheduler != nil {
			scheduler.Stop()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting juzdigest", "port", cfg.Port, "output_dir", cfg.OutputDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
