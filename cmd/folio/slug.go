package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"folio.dev/internal/slug"
)

func newSlugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <text>...",
		Short: "Print the slug of a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), slug.Generate(strings.Join(args, " ")))
			return err
		},
	}
}
