package log

import (
	"fmt"
	"strconv"
)

type FieldType int

const (
	FieldTypeUnknown FieldType = iota
	FieldTypeBool
	FieldTypeString
	FieldTypeHex8
	FieldTypeHex16
	FieldTypeInt
	FieldTypeError
)

// ZField is a typed log field, formatted lazily by Value.
type ZField struct {
	Type FieldType
	Key  string

	// Only one of these is populated, depending on Type.
	String  string
	Integer uint64
	Err     error
	Boolean bool
}

func (f *ZField) Value() string {
	switch f.Type {
	case FieldTypeBool:
		if f.Boolean {
			return "true"
		}
		return "false"
	case FieldTypeString:
		return f.String
	case FieldTypeInt:
		return strconv.FormatInt(int64(f.Integer), 10)
	case FieldTypeHex8:
		return fmt.Sprintf("%02x", uint(f.Integer))
	case FieldTypeHex16:
		return fmt.Sprintf("%04x", uint(f.Integer))
	case FieldTypeError:
		if f.Err == nil {
			return "<nil>"
		}
		return f.Err.Error()
	}
	return ""
}
