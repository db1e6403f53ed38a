package data

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/biz"
	"storefront/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/google/uuid"
)

const (
	defaultBaseURL        = "http://localhost:8080/api"
	defaultGatewayTimeout = 10 * time.Second

	// RequestIDHeader correlates storefront requests with cinema API requests.
	RequestIDHeader = "X-Request-Id"

	msgNotFound    = "The requested resource was not found."
	msgUnreachable = "Cannot connect to the server. Please check your network connection."
)

// ResultKind tells which part of a 2xx body a Result carries.
type ResultKind int

const (
	// ResultPayload is the "data" field of an envelope, present even when null.
	ResultPayload ResultKind = iota + 1
	// ResultEnvelope is a whole envelope that reports success without a "data" field.
	ResultEnvelope
	// ResultRaw is any other body, unchanged.
	ResultRaw
)

func (k ResultKind) String() string {
	switch k {
	case ResultPayload:
		return "payload"
	case ResultEnvelope:
		return "envelope"
	case ResultRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Result is the success value of one cinema API call.
type Result struct {
	Kind  ResultKind
	Value json.RawMessage
}

// IsEmpty reports whether the value is missing or JSON null.
func (r Result) IsEmpty() bool {
	v := bytes.TrimSpace(r.Value)
	return len(v) == 0 || bytes.Equal(v, []byte("null"))
}

// Decode unmarshals the value into v. Empty and null values leave v untouched.
func (r Result) Decode(v interface{}) error {
	if r.IsEmpty() {
		return nil
	}
	return json.Unmarshal(r.Value, v)
}

// resolve decides what a successful response body carries.
func resolve(body []byte) Result {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			if v, ok := obj["data"]; ok {
				return Result{Kind: ResultPayload, Value: v}
			}
			if truthy(obj["success"]) {
				return Result{Kind: ResultEnvelope, Value: trimmed}
			}
		}
	}
	return Result{Kind: ResultRaw, Value: trimmed}
}

// responseError is a non-2xx answer.
type responseError struct {
	Status int
	Body   []byte
}

func (e *responseError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Status)
}

// requestError is a request that was sent without getting a response.
type requestError struct {
	err error
}

func (e *requestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.err)
}

func (e *requestError) Unwrap() error {
	return e.err
}

type requestOptions struct {
	query url.Values
	body  interface{}
}

// RequestOption configures one Invoke call.
type RequestOption func(*requestOptions)

// WithQuery sets the query string. Empty values are not sent.
func WithQuery(q url.Values) RequestOption {
	return func(o *requestOptions) {
		o.query = q
	}
}

// WithBody sets the JSON request body.
func WithBody(v interface{}) RequestOption {
	return func(o *requestOptions) {
		o.body = v
	}
}

// Gateway is the HTTP client of the cinema API.
type Gateway struct {
	client     *http.Client
	baseURL    string
	maxRetries int
	log        *log.Helper
}

// NewGateway creates a new cinema API client
func NewGateway(c *conf.Gateway, logger log.Logger) *Gateway {
	baseURL := defaultBaseURL
	timeout := defaultGatewayTimeout
	maxRetries := 0
	if c != nil {
		if c.BaseUrl != "" {
			baseURL = c.BaseUrl
		}
		if d := c.Timeout.AsDuration(); d > 0 {
			timeout = d
		}
		if c.MaxRetries > 0 {
			maxRetries = int(c.MaxRetries)
		}
	}
	return &Gateway{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxRetries: maxRetries,
		log:        log.NewHelper(logger),
	}
}

// Invoke issues one request against path. GET requests are retried on
// transport failures and 5xx answers, other methods never are.
func (g *Gateway) Invoke(ctx context.Context, method, path string, opts ...RequestOption) (Result, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	var payload []byte
	if o.body != nil {
		b, err := json.Marshal(o.body)
		if err != nil {
			return Result{}, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = b
	}

	retries := 0
	if method == http.MethodGet {
		retries = g.maxRetries
	}
	requestID := requestIDFromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 100 * time.Millisecond
			g.log.Infof("retrying %s %s, attempt %d/%d", method, path, attempt, retries)
			select {
			case <-ctx.Done():
				return Result{}, &requestError{err: ctx.Err()}
			case <-time.After(backoff):
			}
		}

		res, err := g.do(ctx, method, path, o.query, payload, requestID)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !retryable(err) {
			break
		}
	}
	return Result{}, lastErr
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, payload []byte, requestID string) (Result, error) {
	target := g.baseURL + path
	if encoded := encodeQuery(query); encoded != "" {
		target += "?" + encoded
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	g.log.Debugf("%s %s [%s]", method, target, requestID)

	resp, err := g.client.Do(req)
	if err != nil {
		return Result{}, &requestError{err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &requestError{err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &responseError{Status: resp.StatusCode, Body: raw}
	}
	return resolve(raw), nil
}

func retryable(err error) bool {
	var respErr *responseError
	if errors.As(err, &respErr) {
		return respErr.Status >= http.StatusInternalServerError
	}
	var reqErr *requestError
	return errors.As(err, &reqErr)
}

// requestIDFromContext reuses the inbound request id when the call is made
// while serving a storefront request.
func requestIDFromContext(ctx context.Context) string {
	if tr, ok := transport.FromServerContext(ctx); ok {
		if id := tr.RequestHeader().Get(RequestIDHeader); id != "" {
			return id
		}
	}
	return uuid.NewString()
}

func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	clean := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	return clean.Encode()
}

// normalizeError turns any failure of a gateway call into a *biz.APIError.
func normalizeError(err error, defaultMessage string) *biz.APIError {
	var apiErr *biz.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var respErr *responseError
	if errors.As(err, &respErr) {
		return normalizeResponse(respErr, defaultMessage)
	}

	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return &biz.APIError{
			Kind:    biz.ErrorUnreachable,
			Message: msgUnreachable,
		}
	}

	message := defaultMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &biz.APIError{
		Kind:    biz.ErrorLocal,
		Message: message,
	}
}

type fieldError struct {
	Field          string `json:"field"`
	DefaultMessage string `json:"defaultMessage"`
}

func normalizeResponse(e *responseError, defaultMessage string) *biz.APIError {
	out := &biz.APIError{
		Kind:    biz.ErrorRejected,
		Status:  e.Status,
		Message: defaultMessage,
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(e.Body, &body); err != nil {
		out.Details = rawDetails(e.Body)
		if e.Status == http.StatusNotFound {
			out.Message = msgNotFound
		}
		return out
	}

	if msg, ok := jsonString(body["message"]); ok && msg != "" {
		out.Message = msg
	} else {
		var nested struct {
			Message string `json:"message"`
		}
		if raw, ok := body["error"]; ok && json.Unmarshal(raw, &nested) == nil && nested.Message != "" {
			out.Message = nested.Message
		}
	}

	switch {
	case truthy(body["data"]):
		out.Details = body["data"]
	case truthy(body["errors"]):
		out.Details = body["errors"]
	default:
		out.Details = bytes.TrimSpace(e.Body)
	}

	switch e.Status {
	case http.StatusNotFound:
		out.Message = msgNotFound
	case http.StatusBadRequest:
		if lines := fieldErrorLines(body["errors"]); len(lines) > 0 {
			out.Message = strings.Join(lines, "\n")
		}
	}
	return out
}

// fieldErrorLines renders each object entry of a validation errors array.
// Entries that are not objects are skipped.
func fieldErrorLines(raw json.RawMessage) []string {
	var entries []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return nil
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		var f fieldError
		if json.Unmarshal(entry, &f) != nil {
			continue
		}
		if f.Field != "" {
			lines = append(lines, f.Field+": "+f.DefaultMessage)
		} else {
			lines = append(lines, f.DefaultMessage)
		}
	}
	return lines
}

// rawDetails keeps a non-object error body as details, quoting it when it is not JSON.
func rawDetails(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return trimmed
	}
	quoted, err := json.Marshal(string(trimmed))
	if err != nil {
		return nil
	}
	return quoted
}

func jsonString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// truthy follows the loose truthiness the cinema API clients rely on.
func truthy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}
