package log

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Level is the minimum severity a Logger writes.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// Names accepted by --log-level, indexed by Level.
var levelNames = [...]string{"debug", "info", "warn", "error", "none"}

func LevelNames() []string { return levelNames[:] }

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// LevelFromString is case insensitive. Unknown names log at info.
func LevelFromString(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if name == s {
			return Level(i)
		}
	}
	return LevelInfo
}

type Logger struct {
	out   *log.Logger
	level Level
}

func New(w io.Writer, level Level) *Logger {
	return &Logger{out: log.New(w, "optsim ", log.LstdFlags|log.Lmicroseconds|log.Lmsgprefix), level: level}
}

// Open logs to the named file, appending, or to stderr for "-". The terminal
// is in raw mode while the program runs, so a file is the usual choice.
func Open(path string, level Level) (*Logger, io.Closer, error) {
	if "-" == path || "" == path {
		return New(os.Stderr, level), io.NopCloser(os.Stderr), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if nil != err {
		return nil, nil, errors.Wrapf(err, "unable to open log file %s", path)
	}
	return New(f, level), f, nil
}

func (l *Logger) logf(level Level, format string, v []interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("["+strings.ToUpper(level.String())+"] "+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(LevelDebug, format, v) }

func (l *Logger) Infof(format string, v ...interface{}) { l.logf(LevelInfo, format, v) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.logf(LevelWarn, format, v) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(LevelError, format, v) }
