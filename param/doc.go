// Package param implements typed query-parameter values for a remote
// query service.
//
// A Value pairs a string-encoded scalar (or, for ARRAY types, an ordered
// sequence of element values) with a logical type from a closed
// enumeration. The package owns three concerns:
//
//   - Construction: typed factories (Bool, Int64, Timestamp, Array, ...),
//     type inference for common native scalars (Infer), and a staged
//     Builder whose Build call enforces the cross-field invariants.
//   - Canonical encoding: each native (value, type) pair has exactly one
//     string form; temporal literals are validated against fixed layouts.
//   - Wire conversion: ToWire and FromWire convert losslessly between a
//     Value and the (value payload, type descriptor) pair the query
//     service exchanges. FromWire(v.ToWire()) always reconstructs v.
//
// All operations are pure and synchronous. Values are immutable after
// Build and safe to share across goroutines without locking.
//
// STRUCT parameters and nested arrays are not supported; attempting them
// fails rather than silently coercing.
package param
