package queryparams

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hugr-lab/queryparams-go/internal/serialize"
)

// BatchConfig configures Arrow IPC batch encoding of parameter sets.
type BatchConfig struct {
	// Allocator for Arrow memory management.
	// OPTIONAL: Uses memory.DefaultAllocator if nil.
	Allocator memory.Allocator

	// Logger for internal logging.
	// OPTIONAL: Uses slog.Default() if nil.
	Logger *slog.Logger

	// Compress enables ZStandard compression of the encoded batch.
	// Encode and decode sides must agree on this setting.
	Compress bool
}

func (c BatchConfig) allocator() memory.Allocator {
	if c.Allocator != nil {
		return c.Allocator
	}
	return memory.DefaultAllocator
}

func (c BatchConfig) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// EncodeBatch serializes a parameter set to an Arrow IPC record for bulk
// submission, one row per parameter with the wire pair carried as JSON
// strings. With cfg.Compress the IPC stream is ZStandard-compressed.
func EncodeBatch(set *Set, cfg BatchConfig) ([]byte, error) {
	params := set.Parameters()
	entries := make([]serialize.Entry, len(params))
	for i, p := range params {
		wv, wt := p.Value.ToWire()
		valueJSON, err := json.Marshal(wv)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: encode value payload: %w", i, err)
		}
		typeJSON, err := json.Marshal(wt)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: encode type descriptor: %w", i, err)
		}
		entries[i] = serialize.Entry{
			Name:  p.Name,
			Value: string(valueJSON),
			Type:  string(typeJSON),
		}
	}

	data, err := serialize.Parameters(entries, cfg.allocator())
	if err != nil {
		return nil, err
	}

	if cfg.Compress {
		compressor, err := serialize.NewCompressor()
		if err != nil {
			return nil, err
		}
		defer compressor.Close()

		data, err = compressor.Compress(data)
		if err != nil {
			return nil, err
		}
	}

	cfg.logger().Debug("encoded parameter batch",
		"params", len(params),
		"bytes", len(data),
		"compressed", cfg.Compress,
	)
	return data, nil
}

// DecodeBatch reconstructs a parameter set from a batch produced by
// EncodeBatch.
func DecodeBatch(data []byte, cfg BatchConfig) (*Set, error) {
	if cfg.Compress {
		decompressor, err := serialize.NewDecompressor()
		if err != nil {
			return nil, err
		}
		defer decompressor.Close()

		data, err = decompressor.Decompress(data)
		if err != nil {
			return nil, err
		}
	}

	entries, err := serialize.ReadParameters(data, cfg.allocator())
	if err != nil {
		return nil, err
	}

	raw := make([]wireParameter, len(entries))
	for i, e := range entries {
		raw[i].Name = e.Name
		if err := json.Unmarshal([]byte(e.Value), &raw[i].ParameterValue); err != nil {
			return nil, fmt.Errorf("parameter %d: invalid value payload: %w", i, err)
		}
		if err := json.Unmarshal([]byte(e.Type), &raw[i].ParameterType); err != nil {
			return nil, fmt.Errorf("parameter %d: invalid type descriptor: %w", i, err)
		}
	}

	set, err := fromWireParameters(raw)
	if err != nil {
		return nil, err
	}

	cfg.logger().Debug("decoded parameter batch", "params", set.Len())
	return set, nil
}
