package restclient

import (
	"bytes"
	"encoding/json"
)

// Codec serializes request bodies and deserializes response bodies.
// A Client holds exactly one Codec for its lifetime; encode and decode with
// the same codec are inverse operations for any value it can represent.
type Codec interface {
	// Marshal serializes a value into body bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes body bytes into the target.
	Unmarshal(data []byte, v any) error
	// ContentType is the media type the codec produces.
	ContentType() string
}

// JSONCodec encodes and decodes UTF-8 JSON with encoding/json.
// The zero value is the default codec.
type JSONCodec struct {
	// UseNumber decodes numbers as json.Number instead of float64.
	UseNumber bool
	// DisallowUnknownFields rejects response fields that have no
	// destination in the target type.
	DisallowUnknownFields bool
	// EscapeHTML escapes <, > and & in encoded output.
	EscapeHTML bool
}

// Marshal implements Codec.
func (c JSONCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(c.EscapeHTML)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder appends a trailing newline.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Unmarshal implements Codec.
func (c JSONCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if c.UseNumber {
		dec.UseNumber()
	}
	if c.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}

// ContentType implements Codec.
func (c JSONCodec) ContentType() string {
	return "application/json"
}

// defaultCodec is used when Config.Codec is nil.
var defaultCodec Codec = JSONCodec{}
