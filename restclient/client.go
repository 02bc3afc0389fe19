package restclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/restkit-go/restkit/logger"
)

// Request describes one outbound call. Constructed fresh per call and
// discarded after dispatch.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, etc).
	Method string
	// Path is resolved against the client's BaseURL. Can be a full URL.
	Path string
	// Headers are request-specific headers (merged over client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts nil, io.Reader, []byte, string,
	// FormBody, *MultipartBody, or any value serialized by the session codec.
	Body any
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
}

// Response is the classified result of one call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Reason is the reason phrase from the status line.
	Reason string
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body, always read fully before classification.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client is the session: one long-lived transport (cookie jar, TLS policy,
// default headers) bound to one base host, plus one serializer configuration.
// Safe for concurrent use; the cookie jar is shared across in-flight calls.
type Client struct {
	httpClient *http.Client
	config     Config
	codec      Codec
	log        *logger.Logger
}

// New creates a client session. TLS policy (including the TLS 1.2 floor and
// any skip-verify setting) is applied once here, to this session's transport
// only, and is immutable afterwards.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	if !cfg.DisableCookies {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("restclient: create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		codec:      cfg.Codec,
		log:        cfg.Logger.WithComponent("restclient"),
	}, nil
}

// Codec returns the session's serializer configuration.
func (c *Client) Codec() Codec {
	return c.codec
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do executes one request and resolves the response: 2xx returns the raw
// response with a nil error, 401 fails with an unauthorized error (the body
// is ignored for classification), and every other status fails with a
// request-failed error carrying the reason phrase. Connection-level failures
// surface as transport errors. Exactly one outcome per call.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	start := time.Now()
	c.log.Debug("dispatching request", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldMethod, httpReq.Method,
		logger.FieldURL, httpReq.URL.String(),
	))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Debug("transport failure", logger.Fields(
			logger.FieldRequestID, requestID,
			logger.FieldError, err.Error(),
		))
		return nil, NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	c.log.Debug("response received", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	if classErr := classifyStatus(result.StatusCode, result.Reason, body); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the session and the request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	url := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, contentType, err := c.encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("create request: %w", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	auth := c.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(httpReq)

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func (c *Client) encodeBody(body any) (io.Reader, string, error) {
	switch v := body.(type) {
	case nil:
		return nil, "", nil
	case FormBody:
		return v.encode()
	case *MultipartBody:
		return v.encode()
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := c.codec.Marshal(v)
		if err != nil {
			return nil, "", fmt.Errorf("restclient: encode body: %w", err)
		}
		return bytes.NewReader(data), c.codec.ContentType(), nil
	}
}

// reasonPhrase extracts the reason phrase from the status line as sent by
// the server (e.g. "Internal Server Error" from "500 Internal Server Error").
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	return http.StatusText(resp.StatusCode)
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
