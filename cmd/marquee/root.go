package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	prefsPath  string
}

func (g *globalFlags) options() app.Options {
	return app.Options{ConfigPath: g.configPath, PrefsPath: g.prefsPath, Version: Version}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "marquee",
		Short:         "Trending titles and notifications in your terminal",
		Long:          `marquee shows this week's trending movies and shows in an auto-advancing banner, with a notifications feed and a top-ten row.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/marquee/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/marquee/prefs.toml)")

	root.AddCommand(
		newTrendingCmd(flags),
		newBannerCmd(flags),
		newNotificationsCmd(flags),
		newReadCmd(flags),
		newLegalCmd(),
		newLogsCmd(flags),
	)
	return root
}
