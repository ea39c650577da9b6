package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"folio.dev/internal/catalog"
)

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the project file and the details directory",
		Long: "Parses the project file without falling back to the built-in list, " +
			"checks that titles yield unique slugs and reports details " +
			"files that match no project.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			source := cfg.Source()
			list, err := source.Load(cmd.Context())
			if err != nil {
				return err
			}
			c, err := catalog.New(list)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tTITLE\tDETAILS")
			for _, v := range c.Views() {
				if v.Slug == "" {
					continue
				}
				details := "-"
				if _, err := os.Stat(detailsPath(cfg.ContentDir, v.Slug)); err == nil {
					details = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", v.Slug, v.Title, details)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			orphans, err := orphanDetails(cfg.ContentDir, c)
			if err != nil {
				return err
			}
			for _, p := range c.Unlinked() {
				fmt.Fprintf(out, "warning: %q yields no slug and has no detail page\n", p.Title)
			}
			for _, name := range orphans {
				fmt.Fprintf(out, "warning: %s matches no project\n", name)
			}

			_, err = fmt.Fprintf(out, "%s: %d projects OK\n", source, c.Len())
			return err
		},
	}
}

func detailsPath(dir, slug string) string {
	return filepath.Join(dir, "projects", slug+".md")
}

// orphanDetails lists the details files whose name is not a known slug
func orphanDetails(dir string, c *catalog.Catalog) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dir, "projects"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var orphans []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if e.IsDir() || !ok {
			continue
		}
		if _, _, err := c.Lookup(name); errors.Is(err, catalog.ErrNotFound) {
			orphans = append(orphans, e.Name())
		}
	}
	return orphans, nil
}
