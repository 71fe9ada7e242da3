package logs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	Logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

// Until Initialize runs, warnings and errors go to stderr.
func init() {
	Logger = newLogger(os.Stderr, log.WarnLevel, log.TextFormatter)
}

func newLogger(w io.Writer, level log.Level, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "mdboard",
		Level:           level,
		ReportTimestamp: true,
		Formatter:       formatter,
	})
}

// Initialize redirects the logger to <logDir>/mdboard.log at the given level
// ("debug", "info", "warn", "error"). An empty logDir keeps the stderr logger and
// only changes its level.
func Initialize(logDir, level string) error {
	mu.Lock()
	defer mu.Unlock()

	lvl := log.WarnLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("parse log level %q: %w", level, err)
		}
		lvl = parsed
	}

	if logDir == "" {
		Logger.SetLevel(lvl)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(logDir, "mdboard.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Logger.Warn("failed to open log file", "path", logPath, "err", err)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = newLogger(f, lvl, log.LogfmtFormatter)

	Logger.Info("logger initialized", "path", logPath, "level", lvl.String())

	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger = newLogger(os.Stderr, log.WarnLevel, log.TextFormatter)
		return err
	}
	return nil
}
