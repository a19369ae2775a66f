// Package logx builds the process logger and owns the in-memory sink that
// feeds the event log region.
package logx

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"pkt.systems/pslog"
)

// Setup builds the process logger. Verbosity and format overrides come from
// pslog's environment variables, read once here. Every line goes to ring and,
// when path is non-empty, is appended to that file as well. The returned
// close function releases the file and is safe to call when no file was opened.
func Setup(ring *Ring, path string) (pslog.Logger, func() error, error) {
	var w io.Writer = ring
	closeFn := func() error { return nil }
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(ring, f)
		closeFn = f.Close
	}
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(w),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole, NoColor: true}),
	)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)
	return logger, closeFn, nil
}

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithTab annotates the logger with the active tab title.
func WithTab(log pslog.Logger, tab string) pslog.Logger {
	if tab != "" {
		log = log.With("tab", tab)
	}
	return log
}
