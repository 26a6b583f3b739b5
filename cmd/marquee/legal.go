package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/legal"
)

func newLegalCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "legal",
		Short: "Print the legal notice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), legal.Render(width))
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "wrap width")
	return cmd
}
