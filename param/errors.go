package param

import (
	"errors"
	"fmt"
)

// Standard errors returned by the param package.
// All are local validation failures: non-retryable, raised synchronously at
// the point of detection, and terminal for the single value being processed.
var (
	// ErrInvalidParameter indicates a cross-field invariant violation at
	// Build() time (e.g. both a scalar value and array values set).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedType indicates a native or logical type with no defined
	// mapping or encoding (unmapped native kinds, composite scalar misuse).
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrTypeMismatch indicates a native value whose runtime kind disagrees
	// with the declared logical type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMalformedLiteral indicates a string value that fails the pattern
	// required by its temporal logical type.
	ErrMalformedLiteral = errors.New("malformed literal")

	// ErrUnknownType indicates a wire type descriptor naming a logical type
	// outside the closed enumeration.
	ErrUnknownType = errors.New("unknown type")
)

func invalidParameterError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, reason)
}

func unknownTypeError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func typeMismatchError(t Type, k Kind) error {
	return fmt.Errorf("%w: type %s incompatible with %s value", ErrTypeMismatch, t, k)
}
