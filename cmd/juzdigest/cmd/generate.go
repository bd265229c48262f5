package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arefai/juzdigest/internal/generate"
	"github.com/arefai/juzdigest/internal/quran"
	"github.com/arefai/juzdigest/internal/summarize"
)

var (
	localMode bool
	juzFlag   int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate today's juz page",
	Long: `Fetch tafsir for the scheduled juz (or --juz N), summarise it, and
write the page, manifest, and archive index into the output directory.

Example:
  juzdigest generate
  juzdigest generate --local
  juzdigest generate --juz 5`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&localMode, "local", false, "use canned data, no API calls")
	generateCmd.Flags().IntVar(&juzFlag, "juz", 0, "override the scheduled juz number (1-30)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if juzFlag != 0 {
		cfg.JuzOverride = juzFlag
	}

	runner, err := buildRunner()
	if err != nil {
		return err
	}

	_, err = runner.Run(cmd.Context())
	return err
}

// buildRunner wires the fetcher and summarisation pipeline, or the local
// mock runner when --local is set.
func buildRunner() (*generate.Runner, error) {
	if localMode {
		log.Info("local mode: using mock data, no API calls")
		return generate.NewLocal(cfg, log), nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fetcher := quran.NewClient(cfg.QuranAPIBase, cfg.TafsirResourceID, cfg.FetchTimeout)
	caller := summarize.NewAnthropicCaller(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	pipeline := summarize.NewPipeline(caller, summarize.Options{
		MaxTokens:     cfg.MaxTokens,
		ChunkMaxChars: cfg.ChunkMaxChars,
		ChunkPause:    cfg.ChunkPause,
		Logger:        log,
	})

	return generate.New(cfg, fetcher, pipeline, log), nil
}
