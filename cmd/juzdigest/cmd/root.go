package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arefai/juzdigest/internal/config"
)

var (
	verbose bool
	cfg     config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "juzdigest",
	Short: "Daily juz tafsir site generator",
	Long: `juzdigest fetches Ibn Kathir tafsir for the day's juz from the
Quran.com API, summarises it with Claude, and renders a static HTML site.

Commands:
  generate  Generate today's juz page (or a specific juz)
  serve     Serve the generated site over HTTP`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfg = config.Load()
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
}
