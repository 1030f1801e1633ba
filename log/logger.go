package log

import (
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function. They are ordered
// from most to least verbose.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// The logger format
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

var (
	mu             sync.Mutex
	leveledBackend logging.LeveledBackend
	currentLevel   = Notice
)

// The logger interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Redirect all loggers to the given sink. The active level is preserved.
func SetSink(sink io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(toLoggingLevel(currentLevel), "")
	logging.SetBackend(leveledBackend)
}

// Set logger verbosity.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	currentLevel = level
	leveledBackend.SetLevel(toLoggingLevel(level), "")
}

// Get the active logger verbosity.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return currentLevel
}

func toLoggingLevel(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	}
	return logging.NOTICE
}

func init() {
	SetSink(os.Stdout)
}
