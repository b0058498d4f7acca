// Package bson provides a BSON codec implementation.
package bson

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/zoobzio/polyglot"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements polyglot.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() polyglot.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON. Maps with string keys are written as
// documents with sorted keys; BSON otherwise keeps Go's random map order.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	if doc, ok := sortedDocument(v); ok {
		return bson.Marshal(doc)
	}
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

// sortedDocument converts a string-keyed map to a key-ordered bson.D.
func sortedDocument(v any) (bson.D, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	doc := make(bson.D, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		doc = append(doc, bson.E{Key: iter.Key().String(), Value: iter.Value().Interface()})
	}
	slices.SortFunc(doc, func(a, b bson.E) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return doc, true
}
