// Package logging provides structured logging using Go's slog package.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace is more verbose than debug. Used for per-row dataset parsing
// and raw client payloads.
const LevelTrace = slog.Level(-8)

// Config holds logging configuration.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Format  string // json, text, pretty
	Service string // service name for default attrs
	Version string // service version for default attrs

	// File optionally mirrors every record to a rolling JSON file.
	File FileConfig

	// Quiet disables the terminal handler so only File receives records.
	// The TUI client sets this because bubbletea owns the terminal.
	Quiet bool
}

// FileConfig configures the rolling log file.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a new configured slog.Logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a new configured slog.Logger with a custom writer.
// Includes secret redaction by default.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)

	handlers := make([]slog.Handler, 0, 2)
	if !cfg.Quiet {
		handlers = append(handlers, terminalHandler(cfg.Format, level, w))
	}

	if cfg.File.Enabled && cfg.File.Path != "" {
		handlers = append(handlers, fileHandler(&cfg.File, level))
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = slog.NewJSONHandler(io.Discard, nil)
	case 1:
		handler = handlers[0]
	default:
		handler = NewMultiHandler(handlers...)
	}

	return slog.New(handler).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}

func terminalHandler(format string, level slog.Level, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	}

	switch strings.ToLower(format) {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "pretty":
		return log.NewWithOptions(w, log.Options{
			Level:           slogToCharmLevel(level),
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		})
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// fileHandler always writes JSON so rotated files stay machine-readable.
func fileHandler(cfg *FileConfig, level slog.Level) slog.Handler {
	roller := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	return slog.NewJSONHandler(roller, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	})
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// slogToCharmLevel maps slog levels onto the coarser charm levels.
func slogToCharmLevel(level slog.Level) log.Level {
	switch {
	case level < slog.LevelInfo:
		return log.DebugLevel
	case level < slog.LevelWarn:
		return log.InfoLevel
	case level < slog.LevelError:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
