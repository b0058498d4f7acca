// Package yaml provides a YAML codec implementation.
//
// YAML is the default storage format: one "locale: text" line per
// translation. yaml.v3 sorts map keys, so equal translation maps always
// produce the same stored string. Multi-line translations are written as
// literal blocks and stay readable in the database.
package yaml

import (
	"github.com/zoobzio/polyglot"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements polyglot.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() polyglot.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as a YAML document with sorted map keys.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
