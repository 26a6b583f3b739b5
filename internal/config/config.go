package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything marquee reads from config.toml.
type Config struct {
	APIBase          string
	APIKey           string
	ImageBase        string
	NotificationsURL string
	DataDir          string
	LogLevel         string
	LogFormat        string

	TrendingEvery      time.Duration
	NotificationsEvery time.Duration

	Banner Banner
}

// Banner holds the carousel timing.
type Banner struct {
	Slides       int
	AdvanceEvery time.Duration
	PauseFor     time.Duration
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	defaultConfigPath   = "~/.config/marquee/config.toml"
	defaultDataDir      = "~/.local/share/marquee"
	defaultAPIBase      = "https://api.themoviedb.org/3"
	defaultImageBase    = "https://image.tmdb.org/t/p"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultTrending     = time.Hour
	defaultNotifyEvery  = 5 * time.Minute
	defaultSlides       = 6
	defaultAdvanceEvery = 5 * time.Second
	defaultPauseFor     = 8 * time.Second

	// apiKeyEnv overrides api_key so the key can stay out of the file.
	apiKeyEnv = "MARQUEE_API_KEY"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:            defaultAPIBase,
		ImageBase:          defaultImageBase,
		DataDir:            mustExpand(defaultDataDir),
		LogLevel:           defaultLogLevel,
		LogFormat:          defaultLogFormat,
		TrendingEvery:      defaultTrending,
		NotificationsEvery: defaultNotifyEvery,
		Banner: Banner{
			Slides:       defaultSlides,
			AdvanceEvery: defaultAdvanceEvery,
			PauseFor:     defaultPauseFor,
		},
	}
}

type rawConfig struct {
	APIBase          string `toml:"api_base"`
	APIKey           string `toml:"api_key"`
	ImageBase        string `toml:"image_base"`
	NotificationsURL string `toml:"notifications_url"`
	DataDir          string `toml:"data_dir"`
	LogLevel         string `toml:"log_level"`
	LogFormat        string `toml:"log_format"`

	Refresh struct {
		Trending      string `toml:"trending"`
		Notifications string `toml:"notifications"`
	} `toml:"refresh"`

	Banner struct {
		Slides       int    `toml:"slides"`
		AdvanceEvery string `toml:"advance_every"`
		PauseFor     string `toml:"pause_for"`
	} `toml:"banner"`
}

// Load locates and parses the marquee config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	setString(&cfg.APIBase, raw.APIBase)
	setString(&cfg.APIKey, raw.APIKey)
	setString(&cfg.ImageBase, raw.ImageBase)
	setString(&cfg.NotificationsURL, raw.NotificationsURL)
	setString(&cfg.LogLevel, strings.ToLower(raw.LogLevel))
	setString(&cfg.LogFormat, strings.ToLower(raw.LogFormat))
	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}

	durations := []struct {
		key  string
		raw  string
		dest *time.Duration
	}{
		{"refresh.trending", raw.Refresh.Trending, &cfg.TrendingEvery},
		{"refresh.notifications", raw.Refresh.Notifications, &cfg.NotificationsEvery},
		{"banner.advance_every", raw.Banner.AdvanceEvery, &cfg.Banner.AdvanceEvery},
		{"banner.pause_for", raw.Banner.PauseFor, &cfg.Banner.PauseFor},
	}
	for _, d := range durations {
		if err := setDuration(d.dest, d.key, d.raw); err != nil {
			return Config{}, err
		}
	}
	if raw.Banner.Slides != 0 {
		cfg.Banner.Slides = raw.Banner.Slides
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Banner.Slides < 1:
		return fmt.Errorf("%w: banner.slides must be at least 1, got %d", ErrInvalid, c.Banner.Slides)
	case c.Banner.AdvanceEvery <= 0:
		return fmt.Errorf("%w: banner.advance_every must be positive", ErrInvalid)
	case c.Banner.PauseFor <= c.Banner.AdvanceEvery:
		return fmt.Errorf("%w: banner.pause_for (%s) must exceed banner.advance_every (%s)",
			ErrInvalid, c.Banner.PauseFor, c.Banner.AdvanceEvery)
	case c.TrendingEvery <= 0:
		return fmt.Errorf("%w: refresh.trending must be positive", ErrInvalid)
	case c.NotificationsEvery <= 0:
		return fmt.Errorf("%w: refresh.notifications must be positive", ErrInvalid)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug, info, warn or error)", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	return nil
}

// LogPath returns the application log file.
func (c Config) LogPath() string {
	return filepath.Join(c.dataDir(), "marquee.log")
}

// DatabasePath returns the read-state database file.
func (c Config) DatabasePath() string {
	return filepath.Join(c.dataDir(), "marquee.db")
}

func (c Config) dataDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir)
	}
	return c.DataDir
}

func applyEnv(cfg *Config) {
	if key := strings.TrimSpace(os.Getenv(apiKeyEnv)); key != "" {
		cfg.APIKey = key
	}
}

func setString(dest *string, raw string) {
	if v := strings.TrimSpace(raw); v != "" {
		*dest = v
	}
}

func setDuration(dest *time.Duration, key, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	*dest = d
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
