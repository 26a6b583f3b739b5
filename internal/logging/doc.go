// Package logging builds the structured slog logger marquee writes to its
// log file.
//
// The interactive UI owns stdout, so the application logs to
// <data_dir>/marquee.log via Open. Components derive child loggers with
// logger.With("component", "poller") and friends.
package logging
