// Package config handles loading and validating the marquee configuration file.
//
// # Overview
//
// marquee reads a single TOML file that names the catalog API, the
// optional notifications feed, where local data lives, and how the
// promotional banner is timed.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// MARQUEE_API_KEY, when set, replaces api_key from the file.
//
// # TOML Format
//
//	api_base = "https://api.themoviedb.org/3"
//	api_key = ""
//	image_base = "https://image.tmdb.org/t/p"
//	notifications_url = ""
//	data_dir = "~/.local/share/marquee"
//	log_level = "info"
//	log_format = "text"
//
//	[refresh]
//	trending = "1h"
//	notifications = "5m"
//
//	[banner]
//	slides = 6
//	advance_every = "5s"
//	pause_for = "8s"
//
// Every field is optional. Durations use time.ParseDuration syntax. An
// empty notifications_url disables the notifications feed.
//
// # Derived Paths
//
//   - Log file: <data_dir>/marquee.log
//   - Read-state database: <data_dir>/marquee.db
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors ("parse config: ...")
//   - Values that fail Validate, wrapped around ErrInvalid
//
// The banner rule worth knowing: pause_for must be strictly longer than
// advance_every, otherwise a manual navigation could be followed almost
// immediately by an automatic one.
package config
