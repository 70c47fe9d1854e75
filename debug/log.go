package debug

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu       sync.Mutex
	file     *os.File
	log      *logrus.Logger
	counters = make(map[string]int)
)

// Enable starts debug logging to ~/.config/go-launchpad/debug.log
func Enable() error {
	mu.Lock()
	defer mu.Unlock()

	if log != nil {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".config", "go-launchpad")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		TimestampFormat:  "15:04:05.000",
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	}
	// Single writer behind our own mutex.
	l.SetNoLock()

	file = f
	log = l
	l.WithField("category", "debug").Debug("debug logging started")
	return nil
}

// Disable stops debug logging
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	log = nil
}

// Log writes a message to the debug log
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if log == nil {
		return
	}
	log.WithField("category", category).Debugf(format, args...)
}

// LogEvery logs only every N calls (use for high-frequency events)
func LogEvery(n int, category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if log == nil {
		return
	}
	key := category + format
	counters[key]++
	if counters[key]%n != 0 {
		return
	}
	log.WithField("category", category).WithField("count", counters[key]).Debugf(format, args...)
}
