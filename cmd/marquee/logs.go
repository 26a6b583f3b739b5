package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logtail"
)

func newLogsCmd(flags *globalFlags) *cobra.Command {
	var (
		lines int
		level string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the tail of the marquee log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			path := cfg.LogPath()
			out, err := logtail.Read(path, lines)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no log entries in %s\n", path)
				return nil
			}
			if level != "" {
				out = logtail.Filter(out, level)
			}
			if !plain {
				out = logtail.ColorizeLines(out)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n"))
			return err
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 200, "number of lines to show (0 for all)")
	cmd.Flags().StringVar(&level, "level", "", "minimum level: debug, info, warn or error")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}
