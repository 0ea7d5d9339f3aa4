// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"fastachar/internal/jsonlutil"
	"fastachar/pkg/api"
)

// StartColumnJSONLWriter streams each column as one JSON line (v1).
func StartColumnJSONLWriter(out io.Writer, bufSize int) (chan<- api.ColumnV1, <-chan error) {
	return jsonlutil.Start[api.ColumnV1](out, bufSize,
		func(enc *json.Encoder, c api.ColumnV1) error {
			return enc.Encode(c)
		},
		IsBrokenPipe,
	)
}
