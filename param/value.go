package param

import "fmt"

// Value is a query parameter value paired with its logical type.
//
// A Value holds either a string-encoded scalar or, for ARRAY types, an
// ordered sequence of element Values tagged with a shared element type.
// Values are immutable once built and safe to share across goroutines.
//
// Construct a Value through the typed factories (Bool, Int64, ...), the
// type-inferring Infer, the Array factory, or a Builder when fields come
// from an external source such as a decoded wire pair.
type Value struct {
	value       string
	hasValue    bool
	arrayValues []Value
	typ         Type
	arrayType   Type
}

// Scalar returns the string-encoded scalar payload.
// Returns the empty string for ARRAY values.
func (v Value) Scalar() string {
	return v.value
}

// ArrayValues returns a copy of the element values.
// Returns nil for scalar values; an empty non-nil slice for empty arrays.
func (v Value) ArrayValues() []Value {
	if v.arrayValues == nil {
		return nil
	}
	out := make([]Value, len(v.arrayValues))
	copy(out, v.arrayValues)
	return out
}

// Type returns the logical type of this value.
func (v Value) Type() Type {
	return v.typ
}

// ArrayType returns the element type for ARRAY values.
// Returns the empty Type for scalar values.
func (v Value) ArrayType() Type {
	return v.arrayType
}

// Equal reports whether two values are structurally equal: same type, same
// element type, same scalar payload, and pairwise-equal elements in order.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ || v.arrayType != o.arrayType {
		return false
	}
	if v.hasValue != o.hasValue || v.value != o.value {
		return false
	}
	if len(v.arrayValues) != len(o.arrayValues) {
		return false
	}
	for i := range v.arrayValues {
		if !v.arrayValues[i].Equal(o.arrayValues[i]) {
			return false
		}
	}
	return true
}

// Builder assembles a Value field by field.
//
// Setters store fields without validation; Build validates the cross-field
// invariants in one place, so a partially specified builder can never leak
// an inconsistent Value. A Builder is single-owner: it is not safe for
// concurrent use.
type Builder struct {
	value       string
	hasValue    bool
	arrayValues []Value
	hasArray    bool
	typ         Type
	arrayType   Type
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ToBuilder returns a Builder pre-populated with this value's fields.
// Element values are copied; mutating the builder never aliases the
// original value.
func (v Value) ToBuilder() *Builder {
	b := &Builder{
		value:     v.value,
		hasValue:  v.hasValue,
		typ:       v.typ,
		arrayType: v.arrayType,
	}
	if v.arrayValues != nil {
		b.hasArray = true
		b.arrayValues = make([]Value, len(v.arrayValues))
		copy(b.arrayValues, v.arrayValues)
	}
	return b
}

// SetValue sets the scalar payload.
func (b *Builder) SetValue(value string) *Builder {
	b.value = value
	b.hasValue = true
	return b
}

// SetArrayValues sets the element values. The type must be set to ARRAY.
// The slice is copied; a nil slice clears the elements.
func (b *Builder) SetArrayValues(values []Value) *Builder {
	if values == nil {
		b.arrayValues = nil
		b.hasArray = false
		return b
	}
	b.arrayValues = make([]Value, len(values))
	copy(b.arrayValues, values)
	b.hasArray = true
	return b
}

// SetType sets the logical type.
func (b *Builder) SetType(t Type) *Builder {
	b.typ = t
	return b
}

// SetArrayType sets the element type. The type must be set to ARRAY.
func (b *Builder) SetArrayType(t Type) *Builder {
	b.arrayType = t
	return b
}

// Build validates the builder's fields and returns an immutable Value.
// Returns ErrInvalidParameter on the first violated invariant.
func (b *Builder) Build() (Value, error) {
	if b.hasArray {
		if b.typ != TypeArray {
			return Value{}, invalidParameterError("type must be ARRAY if array values are set")
		}
		if b.arrayType == "" {
			return Value{}, invalidParameterError("array type must be set if array values are set")
		}
		if b.hasValue {
			return Value{}, invalidParameterError("value can't be set if array values are set")
		}
		if b.arrayType == TypeArray {
			return Value{}, invalidParameterError("nested ARRAY parameters are not supported")
		}
		if b.arrayType == TypeStruct {
			return Value{}, invalidParameterError("STRUCT parameters are not supported")
		}
		for i, e := range b.arrayValues {
			if e.typ != b.arrayType {
				return Value{}, invalidParameterError(fmt.Sprintf(
					"array value %d has type %s, want %s", i, e.typ, b.arrayType))
			}
		}
	} else {
		if b.typ == TypeArray {
			return Value{}, invalidParameterError("type can't be ARRAY if array values are not set")
		}
		if b.arrayType != "" {
			return Value{}, invalidParameterError("array type can't be set if array values are not set")
		}
		if !b.hasValue {
			return Value{}, invalidParameterError("value must be set if array values are not set")
		}
	}
	if b.typ == "" {
		return Value{}, invalidParameterError("type must be set")
	}
	if b.typ == TypeStruct {
		return Value{}, invalidParameterError("STRUCT parameters are not supported")
	}

	v := Value{
		value:     b.value,
		hasValue:  b.hasValue,
		typ:       b.typ,
		arrayType: b.arrayType,
	}
	if b.hasArray {
		v.arrayValues = make([]Value, len(b.arrayValues))
		copy(v.arrayValues, b.arrayValues)
	}
	return v, nil
}
