package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.dev/internal/catalog"
	"folio.dev/internal/content"
	"folio.dev/internal/export"
	"folio.dev/internal/templates"
)

func newGenerateCommand(opts *options) *cobra.Command {
	var (
		title   string
		workers int
		noCopy  bool
	)

	cmd := &cobra.Command{
		Use:   "generate <out-dir>",
		Short: "Export the site as static HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			c, err := catalog.NewLoader(cfg.Source(), cfg.Policy(), logger).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load projects: %w", err)
			}

			pages, err := templates.New()
			if err != nil {
				return err
			}

			store := content.NewStore(cfg.ContentDir, content.NewRenderer("../"))
			run := export.Options{OutputDir: args[0], Title: title, Workers: workers}
			if !noCopy {
				run.StaticDir = cfg.StaticDir
				run.AssetsDir = cfg.AssetsDir
			}

			res, err := export.New(c, store, pages, logger).Run(cmd.Context(), run)
			if err != nil {
				logger.Error("export failed", zap.Error(err))
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d projects and %d tag pages to %s\n", res.Projects, res.Tags, args[0])
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "Portfolio", "site title")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "pages rendered in parallel")
	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "do not copy the static and assets directories")
	return cmd
}
