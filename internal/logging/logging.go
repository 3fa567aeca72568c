package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/roach88/ward/internal/config"
)

// New builds the application logger.
//
// The terminal belongs to the TUI, so logs never go to stdout or stderr.
// With a log file configured they are written through a rotating
// lumberjack writer; otherwise they are discarded. The returned closer
// releases the file and is never nil.
func New(cfg *config.Config) (*slog.Logger, io.Closer) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()})
	return slog.New(h).With(slog.String("app", "ward")), w
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
