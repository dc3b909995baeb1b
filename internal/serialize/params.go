// Package serialize converts parameter batches to Arrow IPC format.
// Used by the batch codec for bulk parameter submission.
package serialize

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Entry is one serialized parameter row: the parameter name (empty for
// positional parameters) plus the wire pair as JSON strings.
type Entry struct {
	Name  string
	Value string
	Type  string
}

// batchSchema is the Arrow schema for a parameter batch.
// Schema: name (nullable, null for positional parameters), value, type.
var batchSchema = arrow.NewSchema([]arrow.Field{
	{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "value", Type: arrow.BinaryTypes.String, Nullable: false},
	{Name: "type", Type: arrow.BinaryTypes.String, Nullable: false},
}, nil)

// Parameters serializes parameter entries to a single-record Arrow IPC
// stream. An empty entry list is legal and produces an empty record.
func Parameters(entries []Entry, allocator memory.Allocator) ([]byte, error) {
	builder := array.NewRecordBuilder(allocator, batchSchema)
	defer builder.Release()

	nameBuilder := builder.Field(0).(*array.StringBuilder)
	valueBuilder := builder.Field(1).(*array.StringBuilder)
	typeBuilder := builder.Field(2).(*array.StringBuilder)

	for _, e := range entries {
		if e.Name == "" {
			nameBuilder.AppendNull()
		} else {
			nameBuilder.Append(e.Name)
		}
		valueBuilder.Append(e.Value)
		typeBuilder.Append(e.Type)
	}

	record := builder.NewRecord()
	defer record.Release()

	var buf bytes.Buffer
	writer := ipc.NewWriter(&buf, ipc.WithSchema(batchSchema), ipc.WithAllocator(allocator))

	if err := writer.Write(record); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write IPC record: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close IPC writer: %w", err)
	}

	return buf.Bytes(), nil
}

// ReadParameters decodes an Arrow IPC stream produced by Parameters back
// into parameter entries, preserving order.
func ReadParameters(data []byte, allocator memory.Allocator) ([]Entry, error) {
	reader, err := ipc.NewReader(bytes.NewReader(data), ipc.WithAllocator(allocator))
	if err != nil {
		return nil, fmt.Errorf("failed to create IPC reader: %w", err)
	}
	defer reader.Release()

	entries := []Entry{}
	for reader.Next() {
		record := reader.Record()

		names, ok := record.Column(0).(*array.String)
		if !ok {
			return nil, fmt.Errorf("unexpected column type for name: %s", record.Column(0).DataType())
		}
		values, ok := record.Column(1).(*array.String)
		if !ok {
			return nil, fmt.Errorf("unexpected column type for value: %s", record.Column(1).DataType())
		}
		types, ok := record.Column(2).(*array.String)
		if !ok {
			return nil, fmt.Errorf("unexpected column type for type: %s", record.Column(2).DataType())
		}

		for i := 0; i < int(record.NumRows()); i++ {
			e := Entry{
				Value: values.Value(i),
				Type:  types.Value(i),
			}
			if names.IsValid(i) {
				e.Name = names.Value(i)
			}
			entries = append(entries, e)
		}
	}

	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("failed to read IPC stream: %w", err)
	}

	return entries, nil
}
