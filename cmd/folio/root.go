package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.dev/internal/catalog"
	"folio.dev/internal/config"
	"folio.dev/internal/logging"
)

// options are the flags shared by every subcommand. Unset flags fall back
// to the environment configuration
type options struct {
	dataFile   string
	dataURL    string
	contentDir string
	fallback   string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Portfolio catalog tools",
		Long:          "Validate the project file, preview the listing and export the site as static files.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dataFile, "data", "", "project file (JSON or YAML), overrides DATA_FILE")
	flags.StringVar(&opts.dataURL, "url", "", "remote project file, overrides DATA_URL")
	flags.StringVar(&opts.contentDir, "content", "", "details directory, overrides CONTENT_DIR")
	flags.StringVar(&opts.fallback, "fallback", "", "fallback policy (builtin|error), overrides FALLBACK")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")

	cmd.AddCommand(
		newGenerateCommand(opts),
		newSlugCommand(),
		newCheckCommand(opts),
		newListCommand(opts),
	)
	return cmd
}

// config merges the flags over the environment
func (o *options) config() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.dataFile != "" {
		cfg.DataFile = o.dataFile
		cfg.DataURL = ""
	}
	if o.dataURL != "" {
		cfg.DataURL = o.dataURL
	}
	if o.contentDir != "" {
		cfg.ContentDir = o.contentDir
	}
	if o.fallback != "" {
		if _, err := catalog.ParsePolicy(o.fallback); err != nil {
			return nil, err
		}
		cfg.Fallback = o.fallback
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(logging.Config{
		Component: "cli",
		Level:     cfg.LogLevel,
		Output:    cmd.ErrOrStderr(),
	})
}
