package param

import (
	"fmt"
	"time"
)

// Literal layouts the query service accepts for temporal parameters.
// These are patterns, not suggestions: a string value either parses under
// its type's layout or the parameter is rejected.
const (
	timestampLayout = "2006-01-02 15:04:05.000000-07:00"
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05.000000"
	dateTimeLayout  = "2006-01-02 15:04:05.000000"
)

func temporalLayout(t Type) string {
	switch t {
	case TypeTimestamp:
		return timestampLayout
	case TypeDate:
		return dateLayout
	case TypeTime:
		return timeLayout
	case TypeDateTime:
		return dateTimeLayout
	}
	return ""
}

// validateTemporal verifies that value parses under the layout required by
// its temporal type and passes it through unchanged. No normalization: the
// caller's literal is the canonical form.
func validateTemporal(value string, t Type) (string, error) {
	layout := temporalLayout(t)
	if _, err := time.Parse(layout, value); err != nil {
		return "", fmt.Errorf("%w: %s value %q does not match %q",
			ErrMalformedLiteral, t, value, layout)
	}
	return value, nil
}

// formatTimestampMicros formats microseconds since the Unix epoch as a
// TIMESTAMP literal in UTC.
func formatTimestampMicros(micros int64) string {
	return time.UnixMicro(micros).UTC().Format(timestampLayout)
}
