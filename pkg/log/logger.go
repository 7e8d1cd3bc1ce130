package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// The logger format
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// The internal leveled logger backend
var leveledBackend logging.LeveledBackend

// Logger is implemented by the named loggers returned from New. Only the
// formatted variants are exposed.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a named logger. The name shows up as the module column.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output sink. The level resets to Info.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets logger verbosity for all modules.
func SetLevel(level Level) {
	leveledBackend.SetLevel(toLoggingLevel(level), "")
}

func toLoggingLevel(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Notice:
		return logging.NOTICE
	case Warning:
		return logging.WARNING
	default:
		return logging.ERROR
	}
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}
