package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"folio.dev/internal/catalog"
	"folio.dev/internal/filter"
	"folio.dev/internal/view"
)

func newListCommand(opts *options) *cobra.Command {
	var state view.State

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the listing as the page would show it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
				return err
			}

			listing := view.Render(state, c.Projects())
			out := cmd.OutOrStdout()
			if listing.Empty {
				_, err := fmt.Fprintln(out, "Aucun projet pour le moment.")
				return err
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "\tSLUG\tTITLE\tTECH")
			for i, p := range listing.Projects {
				mark := " "
				if i >= listing.Page.Start && i < listing.Page.End {
					mark = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, p.Slug, p.Title, strings.Join(p.Tech, ", "))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "tag %s, page %d/%d, %d per page\n",
				listing.Tag, listing.Page.Index+1, listing.Page.Count, listing.Page.Size)
			return err
		},
	}

	cmd.Flags().StringVar(&state.Tag, "tag", filter.All, "tag filter")
	cmd.Flags().StringVar(&state.Search, "search", "", "search term")
	cmd.Flags().IntVar(&state.Width, "width", 0, "viewport width in pixels (0 means wide)")
	cmd.Flags().IntVar(&state.Page, "page", 0, "page index, clamped to the page count")
	return cmd
}
