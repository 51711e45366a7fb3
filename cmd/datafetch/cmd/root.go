package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/argkit/pkg/config"
	"github.com/dmitrymomot/argkit/pkg/logger"
	"github.com/dmitrymomot/argkit/pkg/validator"
)

// fetchConfig carries environment defaults for the CLI. Flags override these
// per invocation.
type fetchConfig struct {
	OutputDir string `env:"DATAFETCH_OUTPUT_DIR" envDefault:"."`
	Proxy     string `env:"DATAFETCH_PROXY"`
	LogFormat string `env:"DATAFETCH_LOG_FORMAT" envDefault:"text"`
}

func (c fetchConfig) Validate() error {
	if c.LogFormat != string(logger.FormatText) && c.LogFormat != string(logger.FormatJSON) {
		return fmt.Errorf("%w: unknown log format %q", validator.ErrInvalidValue, c.LogFormat)
	}
	_, err := validator.ValidateProxyURL(c.Proxy)
	return err
}

var (
	cfg     fetchConfig
	log     *slog.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "datafetch",
	Short: "Download, verify and extract dataset archives",
	Long: `datafetch downloads dataset files with progress reporting, verifies
them against SHA-256 checksums, extracts zip archives safely, and walks
extracted corpora.

Sources are given either as individual flags or as a YAML manifest listing
several datasets. All paths and URLs are validated before any network or
filesystem work starts.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(&cfg); err != nil {
			return err
		}

		opts := []logger.Option{logger.WithFormat(logger.Format(cfg.LogFormat))}
		if verbose {
			opts = append(opts, logger.WithVerbose())
		}
		log = logger.New(opts...)
		logger.SetAsDefault(log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
