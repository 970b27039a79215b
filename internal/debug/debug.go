package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logFile  *os.File
	mu       sync.Mutex
	loadOnce sync.Once
	explicit bool // set by Init; the environment is then ignored
)

// Init opens path for appending and routes subsequent Log calls to it.
// It replaces any previously opened log file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	explicit = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug: empty log path")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// Close closes the debug log file. Logging is disabled until the next Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	return logFile != nil
}

// Log writes a message to the debug log with a timestamp. The first call
// consults the environment; with no log path configured it does nothing.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

// loadLocked opens the configured log file once. Caller must hold mu.
func loadLocked() {
	loadOnce.Do(func() {
		if explicit {
			return
		}
		cfg, err := LoadConfig()
		if err != nil || cfg.Path == "" {
			return
		}
		if err := initLocked(cfg.Path); err != nil {
			fmt.Fprintf(os.Stderr, "inputfmt: %v\n", err)
		}
	})
}
