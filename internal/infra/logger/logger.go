package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	logDir  = ".skyfare/logs"
	logName = "skyfare.log"
)

type Config struct {
	Root  string
	Debug bool
}

type state struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu  sync.RWMutex
	cur = discard()
)

// Setup points the global logger at <root>/.skyfare/logs/skyfare.log.
// On failure the global logger discards everything and the error is returned.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, filepath.FromSlash(logDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, logName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: utcTime,
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	next := state{
		log:  slog.New(slog.NewJSONHandler(f, opts)),
		file: f,
		path: path,
	}

	mu.Lock()
	cur = next
	mu.Unlock()

	next.log.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if cur.file != nil {
			cerr = cur.file.Close()
		}
		cur = discard()
		return cerr
	}, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// For returns the global logger tagged with a component name.
func For(component string) *slog.Logger {
	return L().With("component", component)
}

// Path is the active log file, or "" while logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	cur = discard()
}

func discard() state {
	return state{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}
