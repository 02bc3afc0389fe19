package restclient

import (
	"io"
	"net/url"
	"strings"
)

// FormField is one key/value pair of a url-encoded form body.
type FormField struct {
	Key   string
	Value string
}

// FormBody is an ordered sequence of form fields encoded as
// application/x-www-form-urlencoded. Duplicate keys are preserved
// positionally, never deduplicated.
type FormBody []FormField

// Pairs builds a FormBody from alternating key/value strings.
//
//	restclient.Pairs("grant_type", "password", "scope", "read", "scope", "write")
func Pairs(kv ...string) FormBody {
	form := make(FormBody, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		form = append(form, FormField{Key: kv[i], Value: kv[i+1]})
	}
	return form
}

// Add appends a field and returns the extended body.
func (f FormBody) Add(key, value string) FormBody {
	return append(f, FormField{Key: key, Value: value})
}

// Encode renders the fields in order using standard URL encoding.
func (f FormBody) Encode() string {
	var b strings.Builder
	for i, field := range f {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	return b.String()
}

// encode builds the body reader and content-type header.
func (f FormBody) encode() (io.Reader, string, error) {
	return strings.NewReader(f.Encode()), "application/x-www-form-urlencoded", nil
}
