package log

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Logger interface {
	Debug(message string, opts ...interface{})
	Info(message string, opts ...interface{})
	Warning(message string, opts ...interface{})
	Error(message string, opts ...interface{})
	Child(opts ...interface{}) Logger
}

type fieldLogger struct {
	entry *log.Entry
}

func (f *fieldLogger) Debug(message string, opts ...interface{}) {
	f.entry.WithFields(fields(opts)).Debug(message)
}

func (f *fieldLogger) Info(message string, opts ...interface{}) {
	f.entry.WithFields(fields(opts)).Info(message)
}

func (f *fieldLogger) Warning(message string, opts ...interface{}) {
	f.entry.WithFields(fields(opts)).Warning(message)
}

func (f *fieldLogger) Error(message string, opts ...interface{}) {
	f.entry.WithFields(fields(opts)).Error(message)
}

func (f *fieldLogger) Child(opts ...interface{}) Logger {
	return &fieldLogger{
		entry: f.entry.WithFields(fields(opts)),
	}
}

func fields(opts []interface{}) log.Fields {
	if len(opts)%2 != 0 {
		panic("mismatched log key/value pairs")
	}

	out := make(log.Fields)
	for i := 0; i < len(opts); i += 2 {
		out[opts[i].(string)] = opts[i+1]
	}
	return out
}

func ModuleLogger(name string) Logger {
	return &fieldLogger{
		entry: log.WithField("module", name),
	}
}

func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(lvl)
	return nil
}
