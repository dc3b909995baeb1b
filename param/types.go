package param

// Type identifies the logical type of a query parameter value.
// The set is closed: the query service recognizes exactly these names,
// and anything else is rejected during wire decoding.
type Type string

const (
	TypeBool      Type = "BOOL"
	TypeInt64     Type = "INT64"
	TypeFloat64   Type = "FLOAT64"
	TypeString    Type = "STRING"
	TypeBytes     Type = "BYTES"
	TypeTimestamp Type = "TIMESTAMP"
	TypeDate      Type = "DATE"
	TypeTime      Type = "TIME"
	TypeDateTime  Type = "DATETIME"
	TypeArray     Type = "ARRAY"

	// TypeStruct is reserved by the service but not supported as a
	// parameter type. Attempting to build or encode a STRUCT parameter
	// fails; it exists so wire decoding can name it in errors.
	TypeStruct Type = "STRUCT"
)

// ParseType returns the Type for a wire type name.
// Returns ErrUnknownType if the name is not in the closed enumeration.
func ParseType(name string) (Type, error) {
	switch t := Type(name); t {
	case TypeBool, TypeInt64, TypeFloat64, TypeString, TypeBytes,
		TypeTimestamp, TypeDate, TypeTime, TypeDateTime,
		TypeArray, TypeStruct:
		return t, nil
	}
	return "", unknownTypeError(name)
}

// IsTemporal returns true if the type is a date/time type.
func (t Type) IsTemporal() bool {
	switch t {
	case TypeTimestamp, TypeDate, TypeTime, TypeDateTime:
		return true
	}
	return false
}

// IsComposite returns true if the type is a composite type.
// Composite types cannot be encoded as scalar values.
func (t Type) IsComposite() bool {
	switch t {
	case TypeArray, TypeStruct:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}
