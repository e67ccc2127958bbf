package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options controls where and how log records are written.
type Options struct {
	Level string
	// Dir receives info.log and error.log. Empty disables file output.
	Dir string
	// Pretty selects the colored tint console handler instead of plain text.
	Pretty bool
	// Console defaults to os.Stdout.
	Console io.Writer
}

// New creates a structured slog.Logger based on the provided options.
// Console output is always on; when Dir is set, every record is also written as
// JSON to info.log and errors are duplicated into error.log.
func New(opts Options) (*slog.Logger, error) {
	handlerLevel, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	var consoleHandler slog.Handler
	if opts.Pretty {
		consoleHandler = tint.NewHandler(console, &tint.Options{
			Level:      handlerLevel,
			TimeFormat: time.Kitchen,
		})
	} else {
		consoleHandler = slog.NewTextHandler(console, &slog.HandlerOptions{Level: handlerLevel})
	}

	if opts.Dir == "" {
		return slog.New(NewMultiLevelHandler(handlerLevel, consoleHandler, nil, nil)), nil
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, err
	}

	errorFile, err := os.OpenFile(filepath.Join(opts.Dir, "error.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, err
	}

	infoFile, err := os.OpenFile(filepath.Join(opts.Dir, "info.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		_ = errorFile.Close()
		return nil, err
	}

	infoFileHandler := slog.NewJSONHandler(infoFile, &slog.HandlerOptions{Level: handlerLevel})
	errorFileHandler := slog.NewJSONHandler(errorFile, &slog.HandlerOptions{Level: slog.LevelError})

	return slog.New(NewMultiLevelHandler(handlerLevel, consoleHandler, infoFileHandler, errorFileHandler)), nil
}

// Discard returns a logger that drops everything. Used by tests and tools.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// MultiLevelHandler routes logs to multiple handlers (console + files).
// File handlers are optional.
type MultiLevelHandler struct {
	consoleHandler   slog.Handler
	infoFileHandler  slog.Handler
	errorFileHandler slog.Handler
	level            slog.Leveler
}

func NewMultiLevelHandler(level slog.Leveler, consoleHandler, infoFileHandler, errorFileHandler slog.Handler) *MultiLevelHandler {
	return &MultiLevelHandler{
		consoleHandler:   consoleHandler,
		infoFileHandler:  infoFileHandler,
		errorFileHandler: errorFileHandler,
		level:            level,
	}
}

func (h *MultiLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *MultiLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.consoleHandler.Handle(ctx, r.Clone()); err != nil {
		return err
	}

	if h.infoFileHandler != nil {
		if err := h.infoFileHandler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}

	if h.errorFileHandler != nil && r.Level >= slog.LevelError {
		return h.errorFileHandler.Handle(ctx, r)
	}

	return nil
}

func (h *MultiLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MultiLevelHandler{
		consoleHandler:   h.consoleHandler.WithAttrs(attrs),
		infoFileHandler:  withAttrs(h.infoFileHandler, attrs),
		errorFileHandler: withAttrs(h.errorFileHandler, attrs),
		level:            h.level,
	}
}

func (h *MultiLevelHandler) WithGroup(name string) slog.Handler {
	return &MultiLevelHandler{
		consoleHandler:   h.consoleHandler.WithGroup(name),
		infoFileHandler:  withGroup(h.infoFileHandler, name),
		errorFileHandler: withGroup(h.errorFileHandler, name),
		level:            h.level,
	}
}

func withAttrs(h slog.Handler, attrs []slog.Attr) slog.Handler {
	if h == nil {
		return nil
	}
	return h.WithAttrs(attrs)
}

func withGroup(h slog.Handler, name string) slog.Handler {
	if h == nil {
		return nil
	}
	return h.WithGroup(name)
}

// ParseLevel maps the APP_LOG_LEVEL strings onto slog levels.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.New("invalid log level")
	}
}
