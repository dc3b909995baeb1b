// Package queryparams assembles typed query-parameter sets for a remote
// query service and converts them to the encodings a submitter sends.
//
// The typed-value core lives in the param subpackage; this package adds
// the collection and encoding surface around it:
//
//   - Named and Positional build ordered parameter sets and reject the
//     combinations the service rejects (mixed styles, duplicate names).
//   - Set marshals to and from the JSON queryParameters request fragment.
//   - EncodePayload/DecodePayload carry a set as a compact MessagePack
//     payload for request metadata.
//   - EncodeBatch/DecodeBatch carry a set as an Arrow IPC record,
//     optionally ZStandard-compressed, for bulk submission.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "encoding/json"
//	    "log"
//
//	    queryparams "github.com/hugr-lab/queryparams-go"
//	    "github.com/hugr-lab/queryparams-go/param"
//	)
//
//	func main() {
//	    corpus, err := param.String("romeoandjuliet")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    minCount, err := param.Int64(250)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    set, err := queryparams.Named(
//	        queryparams.Parameter{Name: "corpus", Value: corpus},
//	        queryparams.Parameter{Name: "min_word_count", Value: minCount},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    body, err := json.Marshal(set)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // body is the queryParameters fragment of the request.
//	    _ = body
//	}
//
// All conversions are pure: no I/O, no retries, no partial recovery. A
// malformed parameter fails at the point of detection and never silently
// coerces.
package queryparams
