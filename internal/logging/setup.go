package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrijs2005/letstalk/internal/filex"
	slogmulti "github.com/samber/slog-multi"
)

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a Logger writing text records to console. When logFile is not
// empty, JSON records are additionally appended to that file and both
// handlers are fanned out. The returned closer releases the file.
func New(console io.Writer, level string, logFile string) (Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	handlers := []slog.Handler{slog.NewTextHandler(console, opts)}
	var closer io.Closer = nopCloser{}

	if logFile != "" {
		if _, err := filex.EnsureParentDir(logFile); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closer = f
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	return NewSlogLogger(slog.New(handler)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
