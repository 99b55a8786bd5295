package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

// EntryZ is a log line under construction: a message plus a fixed-size
// list of typed fields, chained fluently and emitted by End(). Fields
// are only formatted if the line is actually emitted.
type EntryZ struct {
	mod     Module
	level   Level
	msg     string
	fields  [8]ZField
	nfields int
}

func (mod Module) DebugZ(msg string) EntryZ {
	return EntryZ{mod: mod, level: DebugLevel, msg: msg}
}

func (mod Module) InfoZ(msg string) EntryZ {
	return EntryZ{mod: mod, level: InfoLevel, msg: msg}
}

func (mod Module) WarnZ(msg string) EntryZ {
	return EntryZ{mod: mod, level: WarnLevel, msg: msg}
}

func (mod Module) ErrorZ(msg string) EntryZ {
	return EntryZ{mod: mod, level: ErrorLevel, msg: msg}
}

func (mod Module) FatalZ(msg string) EntryZ {
	return EntryZ{mod: mod, level: FatalLevel, msg: msg}
}

func (z EntryZ) append(f ZField) EntryZ {
	if z.nfields < len(z.fields) {
		z.fields[z.nfields] = f
		z.nfields++
	}
	return z
}

func (z EntryZ) String(key, val string) EntryZ {
	return z.append(ZField{Type: FieldTypeString, Key: key, String: val})
}

func (z EntryZ) Bool(key string, val bool) EntryZ {
	return z.append(ZField{Type: FieldTypeBool, Key: key, Boolean: val})
}

func (z EntryZ) Int(key string, val int) EntryZ {
	return z.append(ZField{Type: FieldTypeInt, Key: key, Integer: uint64(val)})
}

func (z EntryZ) Hex8(key string, val uint8) EntryZ {
	return z.append(ZField{Type: FieldTypeHex8, Key: key, Integer: uint64(val)})
}

func (z EntryZ) Hex16(key string, val uint16) EntryZ {
	return z.append(ZField{Type: FieldTypeHex16, Key: key, Integer: uint64(val)})
}

func (z EntryZ) Error(key string, err error) EntryZ {
	return z.append(ZField{Type: FieldTypeError, Key: key, Err: err})
}

func (z EntryZ) Stringer(key string, val interface{ String() string }) EntryZ {
	return z.append(ZField{Type: FieldTypeString, Key: key, String: val.String()})
}

// End emits the log line, unless its module/level is disabled.
func (z EntryZ) End() {
	if !z.mod.Enabled(z.level) {
		return
	}
	fields := make(logrus.Fields, z.nfields)
	for i := range z.fields[:z.nfields] {
		fields[z.fields[i].Key] = z.fields[i].Value()
	}
	entry := logrus.StandardLogger().
		WithField("_mod", modNames[z.mod]).
		WithFields(fields)

	switch z.level {
	case PanicLevel:
		entry.Panic(z.msg)
	case FatalLevel:
		entry.Fatal(z.msg)
	case ErrorLevel:
		entry.Error(z.msg)
	case WarnLevel:
		entry.Warn(z.msg)
	case InfoLevel:
		entry.Info(z.msg)
	default:
		entry.Debug(z.msg)
	}
}
