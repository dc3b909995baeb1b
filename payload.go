package queryparams

import (
	"fmt"

	"github.com/hugr-lab/queryparams-go/internal/msgpack"
)

// EncodePayload serializes the set to a compact MessagePack payload, the
// form a streaming submitter carries in request metadata. Each entry holds
// the parameter's wire pair plus its name for named sets.
func (s *Set) EncodePayload() ([]byte, error) {
	data, err := msgpack.Encode(s.wireParameters())
	if err != nil {
		return nil, fmt.Errorf("encode parameter payload: %w", err)
	}
	return data, nil
}

// DecodePayload reconstructs a parameter set from a MessagePack payload
// produced by EncodePayload.
func DecodePayload(data []byte) (*Set, error) {
	var raw []wireParameter
	if err := msgpack.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("decode parameter payload: %w", err)
	}
	return fromWireParameters(raw)
}
