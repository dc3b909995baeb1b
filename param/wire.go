package param

import "fmt"

// WireValue is the value-payload half of a parameter wire pair.
// Scalars carry Value; arrays carry the ordered element payloads. Element
// types are not repeated per element: the type descriptor carries the
// element type once, at the array level.
type WireValue struct {
	Value       *string     `json:"value,omitempty" msgpack:"value,omitempty"`
	ArrayValues []WireValue `json:"arrayValues,omitempty" msgpack:"arrayValues,omitempty"`
}

// WireType is the type-descriptor half of a parameter wire pair.
// Type holds a logical type name; ArrayType is present only for ARRAY.
type WireType struct {
	Type      string    `json:"type" msgpack:"type"`
	ArrayType *WireType `json:"arrayType,omitempty" msgpack:"arrayType,omitempty"`
}

// ToWire converts the value into its wire pair.
// For arrays the payload always carries the (possibly empty) element list,
// so empty arrays survive the round trip.
func (v Value) ToWire() (WireValue, WireType) {
	wt := WireType{Type: string(v.typ)}
	if v.typ == TypeArray {
		wt.ArrayType = &WireType{Type: string(v.arrayType)}
		children := make([]WireValue, len(v.arrayValues))
		for i, e := range v.arrayValues {
			children[i], _ = e.ToWire()
		}
		return WireValue{ArrayValues: children}, wt
	}
	s := v.value
	return WireValue{Value: &s}, wt
}

// FromWire reconstructs a Value from a wire pair. It is the exact inverse
// of ToWire for every valid Value.
//
// Dispatch follows the type descriptor, never the payload shape. Scalar
// literals are trusted wire data and are not re-validated against their
// temporal layouts, but construction still runs through the builder, so
// structural invariants hold for decoded values too. Type names outside
// the closed enumeration fail with ErrUnknownType.
func FromWire(value WireValue, typ WireType) (Value, error) {
	t, err := ParseType(typ.Type)
	if err != nil {
		return Value{}, err
	}
	b := NewBuilder().SetType(t)
	if t == TypeArray {
		if typ.ArrayType == nil {
			return Value{}, invalidParameterError("ARRAY type descriptor is missing its element type")
		}
		elementType, err := ParseType(typ.ArrayType.Type)
		if err != nil {
			return Value{}, err
		}
		elems := make([]Value, 0, len(value.ArrayValues))
		for i, child := range value.ArrayValues {
			e, err := FromWire(child, *typ.ArrayType)
			if err != nil {
				return Value{}, fmt.Errorf("array value %d: %w", i, err)
			}
			elems = append(elems, e)
		}
		b.SetArrayValues(elems).SetArrayType(elementType)
	} else {
		if value.Value == nil {
			return Value{}, invalidParameterError("value must be set if array values are not set")
		}
		b.SetValue(*value.Value)
	}
	return b.Build()
}
