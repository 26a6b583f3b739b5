package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(apiKeyEnv, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}

	wantDataDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.Banner.Slides != 6 || cfg.Banner.AdvanceEvery != 5*time.Second || cfg.Banner.PauseFor != 8*time.Second {
		t.Fatalf("Banner = %+v, want 6 slides every 5s, pause 8s", cfg.Banner)
	}
	if cfg.TrendingEvery != time.Hour || cfg.NotificationsEvery != 5*time.Minute {
		t.Fatalf("refresh = %s/%s, want 1h/5m", cfg.TrendingEvery, cfg.NotificationsEvery)
	}
	if cfg.NotificationsURL != "" {
		t.Fatalf("NotificationsURL = %q, want empty", cfg.NotificationsURL)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(apiKeyEnv, "")

	path := writeConfig(t, `
api_base = "  https://catalog.example.com/v3  "
api_key = " secret "
notifications_url = "https://feed.example.com/notifications.json"
data_dir = "  ~/.marquee  "
log_level = "DEBUG"
log_format = "json"

[refresh]
trending = "30m"
notifications = "90s"

[banner]
slides = 4
advance_every = "3s"
pause_for = "10s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "https://catalog.example.com/v3" {
		t.Fatalf("APIBase = %q", cfg.APIBase)
	}
	if cfg.APIKey != "secret" {
		t.Fatalf("APIKey = %q, want %q", cfg.APIKey, "secret")
	}
	if !strings.HasPrefix(cfg.DataDir, home) {
		t.Fatalf("DataDir = %q, want it under HOME %q", cfg.DataDir, home)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("log = %q/%q, want debug/json", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.TrendingEvery != 30*time.Minute || cfg.NotificationsEvery != 90*time.Second {
		t.Fatalf("refresh = %s/%s, want 30m/90s", cfg.TrendingEvery, cfg.NotificationsEvery)
	}
	want := Banner{Slides: 4, AdvanceEvery: 3 * time.Second, PauseFor: 10 * time.Second}
	if cfg.Banner != want {
		t.Fatalf("Banner = %+v, want %+v", cfg.Banner, want)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.DataDir, "marquee.db") {
		t.Fatalf("DatabasePath = %q", cfg.DatabasePath())
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(apiKeyEnv, "")

	path := writeConfig(t, `
api_base = "   "
data_dir = ""

[banner]
advance_every = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	wantDataDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.Banner.AdvanceEvery != defaultAdvanceEvery {
		t.Fatalf("AdvanceEvery = %s, want %s", cfg.Banner.AdvanceEvery, defaultAdvanceEvery)
	}
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(apiKeyEnv, "from-env")

	cfg, err := Load(writeConfig(t, `api_key = "from-file"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Fatalf("APIKey = %q, want from-env", cfg.APIKey)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `api_base = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad duration", "[refresh]\ntrending = \"soon\"\n", "refresh.trending"},
		{"zero slides", "[banner]\nslides = -1\n", "banner.slides"},
		{"pause not longer than advance", "[banner]\nadvance_every = \"8s\"\npause_for = \"8s\"\n", "banner.pause_for"},
		{"negative refresh", "[refresh]\nnotifications = \"-1m\"\n", "refresh.notifications"},
		{"unknown level", "log_level = \"loud\"\n", "log_level"},
		{"unknown format", "log_format = \"xml\"\n", "log_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want %s failure", tt.want)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Load error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenDataDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/marquee.log")) {
		t.Fatalf("LogPath = %q, want it to end with /marquee.log", got)
	}
}
