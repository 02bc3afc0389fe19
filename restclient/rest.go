package restclient

import (
	"bytes"
	"context"
	"net/http"
)

// RequestOption configures a single request.
type RequestOption func(*Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQueryParam adds a query parameter to the request.
func WithQueryParam(key, value string) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}
		r.Query[key] = value
	}
}

// WithRequestAuth overrides authentication for the request.
func WithRequestAuth(auth *AuthConfig) RequestOption {
	return func(r *Request) {
		r.Auth = auth
	}
}

// Get performs a GET request and decodes the response into type T.
func Get[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) (T, error) {
	return doTyped[T](c, ctx, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request and decodes the response into type T.
// A nil body sends no body; anything else is serialized by the session codec.
func Post[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (T, error) {
	return doTyped[T](c, ctx, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request and decodes the response into type T.
// A nil body sends no body; anything else is serialized by the session codec.
func Put[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (T, error) {
	return doTyped[T](c, ctx, http.MethodPut, path, body, opts...)
}

// PostForm performs a POST request with a url-encoded form body and decodes
// the response into type T. Field order and duplicate keys are preserved.
func PostForm[T any](c *Client, ctx context.Context, path string, form FormBody, opts ...RequestOption) (T, error) {
	return doTyped[T](c, ctx, http.MethodPost, path, form, opts...)
}

// PostFiles uploads local files in one multipart request and decodes the
// response into type T. Every path is checked for existence first; a missing
// path fails the call before any network I/O.
func PostFiles[T any](c *Client, ctx context.Context, path string, filePaths []string, opts ...RequestOption) (T, error) {
	var zero T
	body, err := FilesBody(filePaths...)
	if err != nil {
		return zero, err
	}
	return doTyped[T](c, ctx, http.MethodPost, path, body, opts...)
}

// doTyped executes a request and decodes the 2xx response body into T.
func doTyped[T any](c *Client, ctx context.Context, method, path string, body any, opts ...RequestOption) (T, error) {
	req := Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}

	var zero T
	resp, err := c.Do(ctx, req)
	if err != nil {
		return zero, err
	}
	return decode[T](c, resp)
}

// decode converts a 2xx response body into T. An empty body, a literal null,
// or a codec failure all classify as a decode error: a call that produced no
// usable value is a failure, not a nil success.
func decode[T any](c *Client, resp *Response) (T, error) {
	var zero T
	trimmed := bytes.TrimSpace(resp.Body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return zero, NewDecodeError(resp.StatusCode, resp.Body, nil)
	}
	var data T
	if err := c.codec.Unmarshal(resp.Body, &data); err != nil {
		return zero, NewDecodeError(resp.StatusCode, resp.Body, err)
	}
	return data, nil
}
