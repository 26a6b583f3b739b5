package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/readstate"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the marquee application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	Version    string
}

// Env holds the collaborators shared by the TUI and the CLI commands.
type Env struct {
	Config config.Config
	Logger *slog.Logger
	Client *catalog.Client
	Store  *state.Store
	Reads  readstate.Tracker

	closers []io.Closer
}

// Bootstrap loads configuration and opens the log file and read-state
// database. When another process holds the database, read marks fall back
// to memory for this run.
func Bootstrap(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, logFile, err := logging.Open(cfg.LogPath(), logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Version: opts.Version,
	})
	if err != nil {
		return nil, err
	}
	env := &Env{Config: cfg, Logger: logger, Store: &state.Store{}, closers: []io.Closer{logFile}}

	env.Client, err = catalog.NewClient(catalog.Options{
		APIBase:          cfg.APIBase,
		APIKey:           cfg.APIKey,
		ImageBase:        cfg.ImageBase,
		NotificationsURL: cfg.NotificationsURL,
		UserAgent:        "marquee/" + versionOrDev(opts.Version),
	})
	if err != nil {
		_ = env.Close()
		return nil, fmt.Errorf("init catalog client: %w", err)
	}

	reads, err := readstate.Open(ctx, cfg.DatabasePath())
	switch {
	case errors.Is(err, readstate.ErrLocked):
		logger.Warn("read-state database locked, read marks will not persist", "path", cfg.DatabasePath())
		env.Reads = readstate.NewMemory()
	case err != nil:
		_ = env.Close()
		return nil, fmt.Errorf("open read-state: %w", err)
	default:
		env.Reads = reads
	}
	// Close in reverse so the database goes before the log file.
	env.closers = append([]io.Closer{env.Reads}, env.closers...)

	return env, nil
}

// StartPollers launches the trending poller and, when a feed is
// configured, the notifications poller. The returned function asks both to
// refresh now.
func (e *Env) StartPollers(ctx context.Context) func() {
	triggers := []Trigger{
		StartPoller(ctx, trendingFeed(e.Client, e.Store, e.Config.TrendingEvery), e.Logger),
	}
	if e.Client.NotificationsEnabled() {
		triggers = append(triggers,
			StartPoller(ctx, notificationsFeed(e.Client, e.Store, e.Config.NotificationsEvery), e.Logger))
	} else {
		e.Logger.Info("notifications feed not configured, skipping poller")
	}
	return func() {
		for _, t := range triggers {
			t()
		}
	}
}

// Close releases everything Bootstrap opened.
func (e *Env) Close() error {
	var errs []error
	for _, c := range e.closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// Run boots the marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Bootstrap(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	env.Logger.Info("starting", "api_base", env.Config.APIBase,
		"notifications", env.Client.NotificationsEnabled())
	refresh := env.StartPollers(ctx)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     env.Store,
		Reads:     env.Reads,
		Images:    env.Client,
		Banner:    env.Config.Banner,
		Refresh:   refresh,
		Logger:    env.Logger,
		ThemeName: userPrefs.Theme,
		Filter:    userPrefs.Filter,
		PrefsPath: opts.PrefsPath,
	})
}

func versionOrDev(v string) string {
	if v == "" {
		return "dev"
	}
	return v
}
