package restclient

import (
	"encoding/json"
	"testing"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	codec := JSONCodec{}
	in := userDto{ID: 3, Name: "round"}

	data, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out userDto
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip changed value: %+v -> %+v", in, out)
	}
}

func TestJSONCodec_NoTrailingNewline(t *testing.T) {
	data, err := JSONCodec{}.Marshal(map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if data[len(data)-1] == '\n' {
		t.Error("marshaled body must not end with a newline")
	}
}

func TestJSONCodec_EscapeHTML(t *testing.T) {
	plain, _ := JSONCodec{}.Marshal(map[string]string{"s": "<b>"})
	if string(plain) != `{"s":"<b>"}` {
		t.Errorf("plain = %s", plain)
	}
	escaped, _ := JSONCodec{EscapeHTML: true}.Marshal(map[string]string{"s": "<b>"})
	if string(escaped) != `{"s":"\u003cb\u003e"}` {
		t.Errorf("escaped = %s", escaped)
	}
}

func TestJSONCodec_UseNumber(t *testing.T) {
	var out map[string]any
	if err := (JSONCodec{UseNumber: true}).Unmarshal([]byte(`{"n": 9007199254740993}`), &out); err != nil {
		t.Fatal(err)
	}
	n, ok := out["n"].(json.Number)
	if !ok {
		t.Fatalf("n is %T, want json.Number", out["n"])
	}
	if n.String() != "9007199254740993" {
		t.Errorf("n = %s", n)
	}
}

func TestJSONCodec_DisallowUnknownFields(t *testing.T) {
	body := []byte(`{"id":1,"name":"a","extra":true}`)

	var lax userDto
	if err := (JSONCodec{}).Unmarshal(body, &lax); err != nil {
		t.Errorf("default codec should accept unknown fields: %v", err)
	}

	var strict userDto
	if err := (JSONCodec{DisallowUnknownFields: true}).Unmarshal(body, &strict); err == nil {
		t.Error("strict codec should reject unknown fields")
	}
}

func TestJSONCodec_ContentType(t *testing.T) {
	if ct := (JSONCodec{}).ContentType(); ct != "application/json" {
		t.Errorf("ContentType = %q", ct)
	}
}
