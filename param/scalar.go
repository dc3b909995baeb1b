package param

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// Kind identifies the native scalar kinds the codec accepts.
// The set is closed: every codec dispatch is an exhaustive switch over
// these kinds, and native values outside the set are rejected up front.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt64
	KindFloat64
	KindString
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	}
	return "invalid"
}

// scalar is a native scalar value normalized into the closed Kind union.
type scalar struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	raw  []byte
}

// scalarOf normalizes a native Go value into the Kind union.
// Narrower integer and float widths widen losslessly; everything outside
// the union fails with ErrUnsupportedType naming the offending type.
func scalarOf(value any) (scalar, error) {
	switch v := value.(type) {
	case bool:
		return scalar{kind: KindBool, b: v}, nil
	case string:
		return scalar{kind: KindString, s: v}, nil
	case int:
		return scalar{kind: KindInt64, i: int64(v)}, nil
	case int32:
		return scalar{kind: KindInt64, i: int64(v)}, nil
	case int64:
		return scalar{kind: KindInt64, i: v}, nil
	case float32:
		return scalar{kind: KindFloat64, f: float64(v)}, nil
	case float64:
		return scalar{kind: KindFloat64, f: v}, nil
	case []byte:
		return scalar{kind: KindBytes, raw: v}, nil
	}
	return scalar{}, fmt.Errorf("%w: no mapping for native type %T", ErrUnsupportedType, value)
}

// inferType maps a native kind to its logical type. The mapping is
// deliberately narrow: bytes (and anything else without a fixed mapping)
// must be given an explicit type through Of.
func (s scalar) inferType() (Type, error) {
	switch s.kind {
	case KindBool:
		return TypeBool, nil
	case KindInt64:
		return TypeInt64, nil
	case KindFloat64:
		return TypeFloat64, nil
	case KindString:
		return TypeString, nil
	}
	return "", fmt.Errorf("%w: no logical type inferred for %s values", ErrUnsupportedType, s.kind)
}

// encodeScalar produces the canonical string encoding of a native scalar
// under the declared logical type. The encoding is a fixed function: one
// textual form per (value, type) pair.
func encodeScalar(s scalar, t Type) (string, error) {
	switch t {
	case TypeBool:
		if s.kind == KindBool {
			return strconv.FormatBool(s.b), nil
		}
	case TypeInt64:
		if s.kind == KindInt64 {
			return strconv.FormatInt(s.i, 10), nil
		}
	case TypeFloat64:
		if s.kind == KindFloat64 {
			// Shortest form that parses back to the same float64.
			return strconv.FormatFloat(s.f, 'g', -1, 64), nil
		}
	case TypeString:
		if s.kind == KindString {
			return s.s, nil
		}
	case TypeBytes:
		if s.kind == KindBytes {
			return base64.StdEncoding.EncodeToString(s.raw), nil
		}
	case TypeTimestamp:
		switch s.kind {
		case KindInt64:
			return formatTimestampMicros(s.i), nil
		case KindString:
			return validateTemporal(s.s, t)
		}
	case TypeDate, TypeTime, TypeDateTime:
		if s.kind == KindString {
			return validateTemporal(s.s, t)
		}
	case TypeArray, TypeStruct:
		return "", fmt.Errorf("%w: cannot encode %s as a scalar value", ErrUnsupportedType, t)
	default:
		return "", fmt.Errorf("%w: no scalar encoding for type %q", ErrUnsupportedType, t)
	}
	return "", typeMismatchError(t, s.kind)
}

// Of creates a Value with the given native value and logical type.
func Of(value any, t Type) (Value, error) {
	s, err := scalarOf(value)
	if err != nil {
		return Value{}, err
	}
	return ofScalar(s, t)
}

// Infer creates a Value with a logical type inferred from the native value:
// bool becomes BOOL, string becomes STRING, integers become INT64, and
// floats become FLOAT64. No other native types are supported through this
// entry point; give them an explicit type through Of.
func Infer(value any) (Value, error) {
	s, err := scalarOf(value)
	if err != nil {
		return Value{}, err
	}
	t, err := s.inferType()
	if err != nil {
		return Value{}, err
	}
	return ofScalar(s, t)
}

func ofScalar(s scalar, t Type) (Value, error) {
	encoded, err := encodeScalar(s, t)
	if err != nil {
		return Value{}, err
	}
	return NewBuilder().SetValue(encoded).SetType(t).Build()
}

// Bool creates a Value with a type of BOOL.
func Bool(value bool) (Value, error) {
	return Of(value, TypeBool)
}

// Int64 creates a Value with a type of INT64.
func Int64(value int64) (Value, error) {
	return Of(value, TypeInt64)
}

// Float64 creates a Value with a type of FLOAT64.
func Float64(value float64) (Value, error) {
	return Of(value, TypeFloat64)
}

// String creates a Value with a type of STRING.
func String(value string) (Value, error) {
	return Of(value, TypeString)
}

// Bytes creates a Value with a type of BYTES. The bytes are carried as
// standard base64.
func Bytes(value []byte) (Value, error) {
	return Of(value, TypeBytes)
}

// Timestamp creates a Value with a type of TIMESTAMP from microseconds
// since the Unix epoch, formatted in UTC as
// "2014-08-19 12:41:35.220000+00:00".
func Timestamp(micros int64) (Value, error) {
	return Of(micros, TypeTimestamp)
}

// TimestampString creates a Value with a type of TIMESTAMP. The value must
// be in the format "2014-08-19 12:41:35.220000+00:00".
func TimestampString(value string) (Value, error) {
	return Of(value, TypeTimestamp)
}

// Date creates a Value with a type of DATE. The value must be in the
// format "2014-08-19".
func Date(value string) (Value, error) {
	return Of(value, TypeDate)
}

// Time creates a Value with a type of TIME. The value must be in the
// format "12:41:35.220000".
func Time(value string) (Value, error) {
	return Of(value, TypeTime)
}

// DateTime creates a Value with a type of DATETIME. The value must be in
// the format "2014-08-19 12:41:35.220000".
func DateTime(value string) (Value, error) {
	return Of(value, TypeDateTime)
}

// Array creates a Value with a type of ARRAY and the given element type.
// Each native value is encoded as a scalar of the element type, preserving
// order. An empty input is legal and yields an empty ARRAY value.
func Array[T any](values []T, elementType Type) (Value, error) {
	elems := make([]Value, 0, len(values))
	for i, v := range values {
		e, err := Of(v, elementType)
		if err != nil {
			return Value{}, fmt.Errorf("array value %d: %w", i, err)
		}
		elems = append(elems, e)
	}
	return NewBuilder().
		SetArrayValues(elems).
		SetType(TypeArray).
		SetArrayType(elementType).
		Build()
}
