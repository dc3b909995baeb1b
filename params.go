package queryparams

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugr-lab/queryparams-go/param"
)

// Parameter pairs a typed value with an optional name.
// An empty name marks a positional parameter.
type Parameter struct {
	Name  string
	Value param.Value
}

// Set is an ordered collection of query parameters.
// A set is either fully named or fully positional; the query service does
// not accept requests that mix the two styles.
type Set struct {
	params []Parameter
}

// Standard errors returned by the queryparams package.
var (
	// ErrMixedParameters indicates a set combining named and positional
	// parameters.
	ErrMixedParameters = errors.New("cannot mix named and positional parameters")

	// ErrUnnamedParameter indicates a parameter passed to Named without
	// a name.
	ErrUnnamedParameter = errors.New("named parameter requires a name")
)

// ErrDuplicateName is returned when a set contains two parameters with the
// same name.
type ErrDuplicateName struct {
	Name string
}

func (e ErrDuplicateName) Error() string {
	return "duplicate parameter name: " + e.Name
}

// Named creates a set of named parameters.
// Every parameter must carry a unique, non-empty name.
func Named(params ...Parameter) (*Set, error) {
	for _, p := range params {
		if p.Name == "" {
			return nil, ErrUnnamedParameter
		}
	}
	return newSet(params)
}

// Positional creates a set of positional parameters in argument order.
func Positional(values ...param.Value) *Set {
	params := make([]Parameter, len(values))
	for i, v := range values {
		params[i] = Parameter{Value: v}
	}
	// No names, so neither mixing nor duplicates can occur.
	s, _ := newSet(params)
	return s
}

func newSet(params []Parameter) (*Set, error) {
	named := 0
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if p.Name == "" {
			continue
		}
		named++
		if _, ok := seen[p.Name]; ok {
			return nil, ErrDuplicateName{Name: p.Name}
		}
		seen[p.Name] = struct{}{}
	}
	if named != 0 && named != len(params) {
		return nil, ErrMixedParameters
	}

	out := make([]Parameter, len(params))
	copy(out, params)
	return &Set{params: out}, nil
}

// Len returns the number of parameters in the set.
func (s *Set) Len() int {
	return len(s.params)
}

// Parameters returns a copy of the parameters in order.
func (s *Set) Parameters() []Parameter {
	out := make([]Parameter, len(s.params))
	copy(out, s.params)
	return out
}

// wireParameter is one entry of the queryParameters request fragment.
type wireParameter struct {
	Name           string          `json:"name,omitempty" msgpack:"name,omitempty"`
	ParameterType  param.WireType  `json:"parameterType" msgpack:"parameterType"`
	ParameterValue param.WireValue `json:"parameterValue" msgpack:"parameterValue"`
}

func (s *Set) wireParameters() []wireParameter {
	out := make([]wireParameter, len(s.params))
	for i, p := range s.params {
		wv, wt := p.Value.ToWire()
		out[i] = wireParameter{
			Name:           p.Name,
			ParameterType:  wt,
			ParameterValue: wv,
		}
	}
	return out
}

func fromWireParameters(raw []wireParameter) (*Set, error) {
	params := make([]Parameter, len(raw))
	for i, w := range raw {
		v, err := param.FromWire(w.ParameterValue, w.ParameterType)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		params[i] = Parameter{Name: w.Name, Value: v}
	}
	return newSet(params)
}

// MarshalJSON encodes the set as the queryParameters request fragment:
// an array of {name?, parameterType, parameterValue} objects.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.wireParameters())
}

// UnmarshalJSON decodes a queryParameters fragment, reconstructing each
// typed value from its wire pair.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw []wireParameter
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid parameter JSON: %w", err)
	}
	set, err := fromWireParameters(raw)
	if err != nil {
		return err
	}
	*s = *set
	return nil
}
