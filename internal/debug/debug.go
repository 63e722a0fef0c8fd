// Package debug is the process-wide debug logger enabled by --debug.
// Output goes to stderr through a zap console core.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
	logger            = newLogger(os.Stderr, isTerminal(os.Stderr))
)

const timeLayout = "15:04:05.000"

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	logger = newLogger(out, !noColor && isTerminal(out))
}

// SetOutput redirects debug output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	logger = newLogger(out, !noColor && isTerminal(out))
}

// isTerminal reports whether w is a terminal; colour is only written there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newLogger builds a console logger producing lines like
// "15:04:05.000 DEBUG message".
func newLogger(w io.Writer, color bool) *zap.Logger {
	levelEncoder := zapcore.CapitalLevelEncoder
	if color {
		levelEncoder = zapcore.CapitalColorLevelEncoder
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeLevel:      levelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// current returns the logger when debug mode is on, nil otherwise.
func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return nil
	}
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	l := current()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	l := current()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	l := current()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf("%s = %v", key, value))
}

// DebugJSON prints structured data as a JSON field for debugging
func DebugJSON(key string, v interface{}) {
	l := current()
	if l == nil {
		return
	}
	l.Debug(key, zap.Any(key, v))
}
