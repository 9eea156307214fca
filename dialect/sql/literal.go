package sql

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/syssam/persist/schema/field"
)

var errAbsent = errors.New("value is absent")

// numberRe matches decimal integer and float literals.
var numberRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// integerRe matches decimal integer literals.
var integerRe = regexp.MustCompile(`^[+-]?\d+$`)

// renderLiteral renders v as a SQL literal for a column of type typ.
func renderLiteral(typ field.Type, v any) (string, error) {
	v, err := indirect(v)
	if err != nil {
		return "", err
	}
	switch {
	case typ == field.TypeUUID:
		s, err := uuidLiteral(v)
		if err != nil {
			return "", err
		}
		return quote(s), nil
	case typ.Textual():
		return quote(textLiteral(v)), nil
	case typ.Numeric():
		return numericLiteral(typ, v)
	case typ == field.TypeBool:
		return boolLiteral(v)
	default:
		return textLiteral(v), nil
	}
}

// indirect unwraps driver.Valuer values and pointers, and reports absent
// values (nil, nil pointers, NULL valuers) as errors.
func indirect(v any) (any, error) {
	if v == nil {
		return nil, errAbsent
	}
	if dv, ok := v.(driver.Valuer); ok {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, errAbsent
		}
		val, err := dv.Value()
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, errAbsent
		}
		return val, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errAbsent
		}
		rv = rv.Elem()
	}
	return rv.Interface(), nil
}

func quote(s string) string {
	return "'" + s + "'"
}

func textLiteral(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(v)
}

func uuidLiteral(v any) (string, error) {
	var s string
	switch u := v.(type) {
	case string:
		s = u
	case []byte:
		if len(u) == 16 {
			id, err := uuid.FromBytes(u)
			if err != nil {
				return "", err
			}
			return id.String(), nil
		}
		s = string(u)
	case fmt.Stringer:
		s = u.String()
	default:
		return "", fmt.Errorf("unsupported type %T for uuid column", v)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func numericLiteral(typ field.Type, v any) (string, error) {
	integral := typ != field.TypeFloat64
	if b, ok := v.([]byte); ok {
		return numberString(string(b), integral)
	}
	// Kinds cover named types such as `type OrderID int64`.
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return floatLiteral(rv.Float(), 32, integral)
	case reflect.Float64:
		return floatLiteral(rv.Float(), 64, integral)
	case reflect.String:
		return numberString(rv.String(), integral)
	}
	if n, ok := v.(fmt.Stringer); ok {
		return numberString(n.String(), integral)
	}
	return "", fmt.Errorf("unsupported type %T for numeric column", v)
}

func floatLiteral(f float64, bitSize int, integral bool) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%v is not a finite number", f)
	}
	if integral && f != math.Trunc(f) {
		return "", fmt.Errorf("%v is not an integer", f)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize), nil
}

func numberString(s string, integral bool) (string, error) {
	if integral {
		if !integerRe.MatchString(s) {
			return "", fmt.Errorf("%q is not an integer", s)
		}
		return s, nil
	}
	if !numberRe.MatchString(s) {
		return "", fmt.Errorf("%q is not a number", s)
	}
	return s, nil
}

func boolLiteral(v any) (string, error) {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.String:
		parsed, err := strconv.ParseBool(rv.String())
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(parsed), nil
	default:
		return "", fmt.Errorf("unsupported type %T for bool column", v)
	}
}
