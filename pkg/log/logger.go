package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, from Debug (most verbose) to Error.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// format prefixes every record with a timestamp, the module name and the level
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// leveledBackend is the active sink; SetLevel adjusts its threshold
var leveledBackend logging.LeveledBackend

// Logger is a leveled logger. go-logging loggers returned by New and the
// Discard logger implement it.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger that tags its records with name
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends all log output to sink, keeping the current level
func SetSink(sink io.Writer) {
	level := logging.NOTICE
	if leveledBackend != nil {
		level = leveledBackend.GetLevel("")
	}

	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(level, "")
	logging.SetBackend(leveledBackend)
}

// backendLevels maps verbosity levels onto go-logging levels
var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// SetLevel sets the minimum level that is written for every module.
// Unknown levels are ignored.
func SetLevel(level Level) {
	if backendLevel, ok := backendLevels[level]; ok {
		leveledBackend.SetLevel(backendLevel, "")
	}
}

// Discard returns a logger that drops everything
func Discard() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(v ...interface{})                   {}
func (nopLogger) Debugf(format string, v ...interface{})   {}
func (nopLogger) Notice(v ...interface{})                  {}
func (nopLogger) Noticef(format string, v ...interface{})  {}
func (nopLogger) Info(v ...interface{})                    {}
func (nopLogger) Infof(format string, v ...interface{})    {}
func (nopLogger) Warning(v ...interface{})                 {}
func (nopLogger) Warningf(format string, v ...interface{}) {}
func (nopLogger) Error(v ...interface{})                   {}
func (nopLogger) Errorf(format string, v ...interface{})   {}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
