package drive

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger receives the world's diagnostics: drive registration at info level,
// rebuilt snapshots at debug level and disabled drives as warnings.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// newLogger returns a silent logger unless config asks for output.
func newLogger(config Config) Logger {
	if config.LogPrefix == "" && !config.Debug {
		return NewNopLogger()
	}
	return NewDefaultLogger(config.LogPrefix, config.Debug)
}

// DefaultLogger writes debug and info lines to stdout, warnings and errors to
// stderr.
type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(os.Stdout, "", flags),
		err:    log.New(os.Stderr, "", flags),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) logf(to *log.Logger, level string, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if l.prefix == "" {
		to.Printf("%s: %s", level, message)
		return
	}
	to.Printf("[%s] %s: %s", l.prefix, level, message)
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.DebugEnabled() {
		l.logf(l.out, "DEBUG", format, args...)
	}
}

func (l *DefaultLogger) Infof(format string, args ...any)  { l.logf(l.out, "INFO", format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.logf(l.err, "WARN", format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.logf(l.err, "ERROR", format, args...) }

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}
