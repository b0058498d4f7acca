package polyglot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

// testCodec is a simple JSON codec for testing.
type testCodec struct{}

func (c *testCodec) ContentType() string { return "application/json" }

func (c *testCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *testCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// yamlTestCodec is a YAML codec for testing without importing polyglot/yaml.
type yamlTestCodec struct{}

func (c *yamlTestCodec) ContentType() string { return "application/yaml" }

func (c *yamlTestCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (c *yamlTestCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// failingCodec fails every operation.
type failingCodec struct{}

var errCodecBroken = errors.New("codec broken")

func (c *failingCodec) ContentType() string { return "application/x-broken" }

func (c *failingCodec) Marshal(_ any) ([]byte, error) { return nil, errCodecBroken }

func (c *failingCodec) Unmarshal(_ []byte, _ any) error { return errCodecBroken }

// testContext returns a context with current locale "en", default locale
// "de" and en, de, it and fr available.
func testContext() context.Context {
	return WithEnvironment(context.Background(), Environment{
		Locale:           "en",
		DefaultLocale:    "de",
		AvailableLocales: []Locale{"en", "de", "it", "fr"},
	})
}

// mustTranslator builds a translator or fails the test.
func mustTranslator[T any](t *testing.T, codec Codec, opts ...TranslatorOption) *Translator[T] {
	t.Helper()
	tr, err := NewTranslator[T](codec, opts...)
	if err != nil {
		t.Fatalf("NewTranslator() error: %v", err)
	}
	return tr
}

// mustField returns a localized field or fails the test.
func mustField[T any](t *testing.T, tr *Translator[T], name string) *Field[T] {
	t.Helper()
	f, ok := tr.Field(name)
	if !ok {
		t.Fatalf("Field(%q) not found", name)
	}
	return f
}

// mustEncode encodes with the YAML test codec or fails the test.
func mustEncode(t *testing.T, tr Translations) string {
	t.Helper()
	raw, err := Encode(&yamlTestCodec{}, tr)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	return raw
}
