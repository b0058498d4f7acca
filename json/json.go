// Package json provides a JSON codec implementation.
//
// Maps encode with their keys sorted, so equal translation maps always
// produce the same stored string. HTML in translations is kept as written
// rather than escaped to \u003c sequences.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/polyglot"
)

// jsonCodec implements polyglot.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() polyglot.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as compact JSON without HTML escaping.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
