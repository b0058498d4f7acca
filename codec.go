package polyglot

// Codec serializes a field's translation map into its storage slot.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/yaml").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
