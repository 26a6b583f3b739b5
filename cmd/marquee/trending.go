package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/carousel"
	"github.com/five82/marquee/internal/catalog"
)

const fetchTimeout = 15 * time.Second

func newTrendingCmd(flags *globalFlags) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Print the banner slides and the top ten",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Bootstrap(cmd.Context(), flags.options())
			if err != nil {
				return err
			}
			defer env.Close()

			items, err := fetchTrending(cmd.Context(), env.Client)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			slides := items[:min(len(items), env.Config.Banner.Slides)]
			fmt.Fprintln(out, "BANNER")
			printTitles(out, slides)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "TOP 10")
			printTitles(out, topTen(items, kind))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "all", "top-ten filter: all, movie or tv")
	return cmd
}

func newBannerCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "banner",
		Short: "Cycle the banner in the terminal until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Bootstrap(cmd.Context(), flags.options())
			if err != nil {
				return err
			}
			defer env.Close()

			items, err := fetchTrending(cmd.Context(), env.Client)
			if err != nil {
				return err
			}

			changes := make(chan carousel.View[catalog.Title], 1)
			banner, err := carousel.New(carousel.Options[catalog.Title]{
				Window:       env.Config.Banner.Slides,
				AdvanceEvery: env.Config.Banner.AdvanceEvery,
				PauseFor:     env.Config.Banner.PauseFor,
				Logger:       env.Logger.With("component", "banner"),
				OnChange: func(v carousel.View[catalog.Title]) {
					select {
					case changes <- v:
					default:
					}
				},
			})
			if err != nil {
				return err
			}
			defer banner.Close()

			out := cmd.OutOrStdout()
			banner.Update(items)
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case v := <-changes:
					if v.IsEmpty() {
						fmt.Fprintln(out, "nothing trending")
						return nil
					}
					fmt.Fprintf(out, "[%d/%d] %s  %s\n", v.Index+1, v.Total, v.Item.DisplayName(), v.Item.WatchPath())
				}
			}
		},
	}
}

func fetchTrending(ctx context.Context, client catalog.Fetcher) ([]catalog.Title, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	items, err := client.FetchTrending(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch trending: %w", err)
	}
	return items, nil
}

func topTen(items []catalog.Title, kind string) []catalog.Title {
	kind = strings.ToLower(strings.TrimSpace(kind))
	var out []catalog.Title
	for _, item := range items {
		if len(out) == 10 {
			break
		}
		if kind != "" && kind != "all" && item.MediaKind() != kind {
			continue
		}
		out = append(out, item)
	}
	return out
}

func printTitles(out io.Writer, items []catalog.Title) {
	if len(items) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, item := range items {
		year := item.Year()
		if year == "" {
			year = "-"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%.1f\n", i+1, item.DisplayName(), year, item.MediaKind(), item.VoteAverage)
	}
	_ = w.Flush()
}
