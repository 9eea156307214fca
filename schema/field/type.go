package field

import (
	"fmt"
	"strings"
)

// Type is the data type of a mapped column. It decides how a literal
// value for that column is rendered in generated SQL.
type Type uint8

// List of column types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeInt
	TypeInt64
	TypeFloat64
	TypeString
	TypeText
	TypeUUID
	TypeEnum
	TypeOther
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeFloat64: "float64",
	TypeString:  "string",
	TypeText:    "text",
	TypeUUID:    "uuid",
	TypeEnum:    "enum",
	TypeOther:   "other",
}

var constNames = [...]string{
	TypeBool:    "TypeBool",
	TypeInt:     "TypeInt",
	TypeInt64:   "TypeInt64",
	TypeFloat64: "TypeFloat64",
	TypeString:  "TypeString",
	TypeText:    "TypeText",
	TypeUUID:    "TypeUUID",
	TypeEnum:    "TypeEnum",
	TypeOther:   "TypeOther",
}

// sqlNames maps common SQL spellings onto column types.
var sqlNames = map[string]Type{
	"boolean":  TypeBool,
	"integer":  TypeInt,
	"smallint": TypeInt,
	"bigint":   TypeInt64,
	"long":     TypeInt64,
	"double":   TypeFloat64,
	"float":    TypeFloat64,
	"real":     TypeFloat64,
	"numeric":  TypeFloat64,
	"decimal":  TypeFloat64,
	"varchar":  TypeString,
	"char":     TypeString,
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// ConstName returns the constant name of a type.
func (t Type) ConstName() string {
	if t.Valid() {
		return constNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is a known type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt && t <= TypeFloat64
}

// Textual reports if literal values of this type are rendered as quoted
// strings.
func (t Type) Textual() bool {
	switch t {
	case TypeString, TypeText, TypeUUID, TypeEnum:
		return true
	default:
		return false
	}
}

// IsVarchar is an alias for Textual.
func (t Type) IsVarchar() bool { return t.Textual() }

// ParseType returns the Type named by s. Both the String form ("int64")
// and common SQL spellings ("bigint", "varchar") are accepted.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(name, '('); i > 0 {
		// varchar(255), decimal(10,2)
		name = strings.TrimSpace(name[:i])
	}
	for t := TypeBool; t < endTypes; t++ {
		if typeNames[t] == name {
			return t, nil
		}
	}
	if t, ok := sqlNames[name]; ok {
		return t, nil
	}
	return TypeInvalid, fmt.Errorf("field: unknown type %q", s)
}
