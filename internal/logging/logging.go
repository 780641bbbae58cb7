// Package logging builds the application's slog logger. The terminal UI owns
// stdout, so logs go to a file or nowhere.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	maxLogSizeBytes  = 4 * 1024 * 1024
	keepLogSizeBytes = 3 * 1024 * 1024
)

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error
	Path   string // empty discards output
	Format string // text or json
}

// New returns a logger for opts and a closer for the underlying file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.Path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	w, err := newFileWriter(opts.Path, maxLogSizeBytes, keepLogSizeBytes)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(NewHandler(w, opts)), w, nil
}

// NewHandler returns a text or JSON handler writing to w.
func NewHandler(w io.Writer, opts Options) slog.Handler {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	if strings.EqualFold(opts.Format, "json") {
		return slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.NewTextHandler(w, handlerOpts)
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fileWriter appends to a log file and trims it to the newest keep bytes
// once it grows past max.
type fileWriter struct {
	mu   sync.Mutex
	file *os.File
	max  int64
	keep int64
}

func newFileWriter(path string, max, keep int64) (*fileWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	w := &fileWriter{file: file, max: max, keep: keep}
	if err := w.truncateIfNeeded(); err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

func (w *fileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.truncateIfNeeded(); err != nil {
		return n, err
	}
	return n, nil
}

func (w *fileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

func (w *fileWriter) truncateIfNeeded() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= w.max {
		return nil
	}

	buf := make([]byte, w.keep)
	n, err := w.file.ReadAt(buf, size-w.keep)
	if err != nil && err != io.EOF {
		return err
	}
	buf = buf[:n]

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	// O_APPEND writes land at the new end after truncation.
	_, err = w.file.Write(buf)
	return err
}
