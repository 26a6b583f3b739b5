package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/readstate"
)

func newNotificationsCmd(flags *globalFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notes"},
		Short:   "List notifications, unread only by default",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Bootstrap(cmd.Context(), flags.options())
			if err != nil {
				return err
			}
			defer env.Close()

			items, err := fetchNotifications(cmd.Context(), env.Client)
			if err != nil {
				return err
			}
			read, err := env.Reads.ReadSet(cmd.Context())
			if err != nil {
				return fmt.Errorf("load read state: %w", err)
			}

			out := cmd.OutOrStdout()
			unread := readstate.UnreadCount(items, read)
			fmt.Fprintf(out, "%d notifications, %d unread\n", len(items), unread)
			if !all && unread == 0 {
				return nil
			}

			now := time.Now()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, n := range items {
				if !all && read[n.ID] {
					continue
				}
				marker := " "
				if !read[n.ID] {
					marker = "●"
				}
				when := "-"
				if t := n.Time(); !t.IsZero() {
					when = humanize.RelTime(t, now, "ago", "from now")
				}
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\n", marker, n.ID, n.Icon(), n.Title, when, n.WatchPath())
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include notifications already read")
	return cmd
}

func newReadCmd(flags *globalFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [id...]",
		Short: "Mark notifications as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return errors.New("give at least one notification id or --all")
			}

			env, err := app.Bootstrap(cmd.Context(), flags.options())
			if err != nil {
				return err
			}
			defer env.Close()

			ids := args
			if all {
				items, err := fetchNotifications(cmd.Context(), env.Client)
				if err != nil {
					return err
				}
				ids = readstate.IDs(items)
			}
			if err := env.Reads.MarkAllRead(cmd.Context(), ids); err != nil {
				return fmt.Errorf("mark read: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "marked %d notifications read\n", len(ids))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "mark every notification in the feed")
	return cmd
}

func fetchNotifications(ctx context.Context, client catalog.Fetcher) ([]catalog.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	items, err := client.FetchNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch notifications: %w", err)
	}
	return catalog.SortNewestFirst(items), nil
}
