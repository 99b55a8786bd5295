package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

type Fields logrus.Fields

// Entry ties a log line to its module so that emission can be gated by
// the module debug mask before logrus sees anything.
type Entry struct {
	mod Module
}

func (entry Entry) log() *logrus.Entry {
	return logrus.StandardLogger().WithField("_mod", modNames[entry.mod])
}

func (entry Entry) WithFields(fields Fields) *logrus.Entry {
	return entry.log().WithFields(logrus.Fields(fields))
}

func (mod Module) WithFields(fields Fields) *logrus.Entry {
	return Entry{mod: mod}.WithFields(fields)
}

// printf-like family

func (entry Entry) Debugf(format string, args ...any) {
	if entry.mod.Enabled(DebugLevel) {
		entry.log().Debugf(format, args...)
	}
}

func (entry Entry) Infof(format string, args ...any) {
	if entry.mod.Enabled(InfoLevel) {
		entry.log().Infof(format, args...)
	}
}

func (entry Entry) Warnf(format string, args ...any) {
	if entry.mod.Enabled(WarnLevel) {
		entry.log().Warnf(format, args...)
	}
}

func (entry Entry) Errorf(format string, args ...any) {
	if entry.mod.Enabled(ErrorLevel) {
		entry.log().Errorf(format, args...)
	}
}

func (entry Entry) Fatalf(format string, args ...any) {
	if entry.mod.Enabled(FatalLevel) {
		entry.log().Fatalf(format, args...)
	}
}

func (mod Module) Debugf(format string, args ...any) { Entry{mod: mod}.Debugf(format, args...) }
func (mod Module) Infof(format string, args ...any)  { Entry{mod: mod}.Infof(format, args...) }
func (mod Module) Warnf(format string, args ...any)  { Entry{mod: mod}.Warnf(format, args...) }
func (mod Module) Errorf(format string, args ...any) { Entry{mod: mod}.Errorf(format, args...) }
func (mod Module) Fatalf(format string, args ...any) { Entry{mod: mod}.Fatalf(format, args...) }
