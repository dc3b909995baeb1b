package param

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRoundTripScalars(t *testing.T) {
	factories := []struct {
		name  string
		build func() (Value, error)
	}{
		{"bool", func() (Value, error) { return Bool(true) }},
		{"int64", func() (Value, error) { return Int64(42) }},
		{"float64", func() (Value, error) { return Float64(3.14) }},
		{"string", func() (Value, error) { return String("romeoandjuliet") }},
		{"empty string", func() (Value, error) { return String("") }},
		{"bytes", func() (Value, error) { return Bytes([]byte{0, 1, 2}) }},
		{"timestamp", func() (Value, error) { return Timestamp(1408452095220000) }},
		{"date", func() (Value, error) { return Date("2014-08-19") }},
		{"time", func() (Value, error) { return Time("12:41:35.220000") }},
		{"datetime", func() (Value, error) { return DateTime("2014-08-19 12:41:35.220000") }},
	}

	for _, f := range factories {
		v, err := f.build()
		if err != nil {
			t.Fatalf("%s: construction failed: %v", f.name, err)
		}

		wv, wt := v.ToWire()
		got, err := FromWire(wv, wt)
		if err != nil {
			t.Fatalf("%s: FromWire failed: %v", f.name, err)
		}
		if !got.Equal(v) {
			t.Errorf("%s: round trip changed value: got %+v, want %+v", f.name, got, v)
		}
	}
}

func TestRoundTripArray(t *testing.T) {
	v, err := Array([]int64{1, 2, 3}, TypeInt64)
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}

	wv, wt := v.ToWire()
	if wt.Type != "ARRAY" {
		t.Errorf("expected type descriptor ARRAY, got %s", wt.Type)
	}
	if wt.ArrayType == nil || wt.ArrayType.Type != "INT64" {
		t.Errorf("expected array type descriptor INT64, got %+v", wt.ArrayType)
	}
	if len(wv.ArrayValues) != 3 {
		t.Fatalf("expected 3 wire array values, got %d", len(wv.ArrayValues))
	}
	// Element types travel once, at the array level; children carry only
	// their payloads.
	for i, child := range wv.ArrayValues {
		if child.Value == nil {
			t.Fatalf("wire array value %d missing payload", i)
		}
	}

	got, err := FromWire(wv, wt)
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("round trip changed array value")
	}
}

func TestRoundTripEmptyArray(t *testing.T) {
	v, err := Array([]string{}, TypeString)
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}

	wv, wt := v.ToWire()
	if wv.ArrayValues == nil {
		t.Fatalf("expected non-nil wire array values for empty array")
	}

	got, err := FromWire(wv, wt)
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("round trip changed empty array value")
	}
	if got.Type() != TypeArray || got.ArrayType() != TypeString {
		t.Errorf("expected empty STRING array, got type %s array type %s", got.Type(), got.ArrayType())
	}
}

func TestFromWireUnknownType(t *testing.T) {
	s := "x"
	_, err := FromWire(WireValue{Value: &s}, WireType{Type: "GEOGRAPHY"})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}

	_, err = FromWire(WireValue{ArrayValues: []WireValue{}}, WireType{
		Type:      "ARRAY",
		ArrayType: &WireType{Type: "bogus"},
	})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType for element type, got %v", err)
	}
}

func TestFromWireArrayMissingElementType(t *testing.T) {
	_, err := FromWire(WireValue{ArrayValues: []WireValue{}}, WireType{Type: "ARRAY"})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestFromWireScalarMissingValue(t *testing.T) {
	_, err := FromWire(WireValue{}, WireType{Type: "STRING"})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestFromWireTrustsScalarLiterals(t *testing.T) {
	// Wire data is pre-validated by the service; decode does not re-check
	// temporal layouts.
	s := "not-a-date"
	v, err := FromWire(WireValue{Value: &s}, WireType{Type: "DATE"})
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}
	if v.Scalar() != "not-a-date" {
		t.Errorf("expected literal carried through, got %q", v.Scalar())
	}
}

func TestWireJSONShape(t *testing.T) {
	v, err := Int64(42)
	if err != nil {
		t.Fatalf("Int64 failed: %v", err)
	}
	wv, wt := v.ToWire()

	valueJSON, err := json.Marshal(wv)
	if err != nil {
		t.Fatalf("marshal value payload: %v", err)
	}
	if string(valueJSON) != `{"value":"42"}` {
		t.Errorf("unexpected value payload JSON: %s", valueJSON)
	}

	typeJSON, err := json.Marshal(wt)
	if err != nil {
		t.Fatalf("marshal type descriptor: %v", err)
	}
	if string(typeJSON) != `{"type":"INT64"}` {
		t.Errorf("unexpected type descriptor JSON: %s", typeJSON)
	}
}

func TestWireJSONShapeArray(t *testing.T) {
	v, err := Array([]string{"a"}, TypeString)
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}
	wv, wt := v.ToWire()

	valueJSON, err := json.Marshal(wv)
	if err != nil {
		t.Fatalf("marshal value payload: %v", err)
	}
	if string(valueJSON) != `{"arrayValues":[{"value":"a"}]}` {
		t.Errorf("unexpected value payload JSON: %s", valueJSON)
	}

	typeJSON, err := json.Marshal(wt)
	if err != nil {
		t.Fatalf("marshal type descriptor: %v", err)
	}
	if string(typeJSON) != `{"type":"ARRAY","arrayType":{"type":"STRING"}}` {
		t.Errorf("unexpected type descriptor JSON: %s", typeJSON)
	}
}

func TestWireJSONRoundTrip(t *testing.T) {
	v, err := Array([]int64{7, 8}, TypeInt64)
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}
	wv, wt := v.ToWire()

	valueJSON, err := json.Marshal(wv)
	if err != nil {
		t.Fatalf("marshal value payload: %v", err)
	}
	typeJSON, err := json.Marshal(wt)
	if err != nil {
		t.Fatalf("marshal type descriptor: %v", err)
	}

	var decodedValue WireValue
	if err := json.Unmarshal(valueJSON, &decodedValue); err != nil {
		t.Fatalf("unmarshal value payload: %v", err)
	}
	var decodedType WireType
	if err := json.Unmarshal(typeJSON, &decodedType); err != nil {
		t.Fatalf("unmarshal type descriptor: %v", err)
	}

	got, err := FromWire(decodedValue, decodedType)
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("JSON round trip changed array value")
	}
}

func TestParseType(t *testing.T) {
	for _, name := range []string{"BOOL", "INT64", "FLOAT64", "STRING", "BYTES",
		"TIMESTAMP", "DATE", "TIME", "DATETIME", "ARRAY", "STRUCT"} {
		got, err := ParseType(name)
		if err != nil {
			t.Errorf("ParseType(%q) failed: %v", name, err)
		}
		if string(got) != name {
			t.Errorf("ParseType(%q) = %q", name, got)
		}
	}

	if _, err := ParseType("int64"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType for lowercase name, got %v", err)
	}
	if _, err := ParseType(""); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType for empty name, got %v", err)
	}
}
