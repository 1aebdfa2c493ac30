package harness

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/glamcharms/storefront-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const maxBodyTextLength = 500

// TestHarness sends requests to the service under test. Every request is a single attempt: there
// are no retries, and a transport error is simply returned to the caller.
type TestHarness struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// Request describes one call to the service. Path is relative to the base URL. If Body is not nil,
// it is encoded as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

func (r Request) String() string {
	s := r.Method + " " + r.Path
	if len(r.Query) > 0 {
		s += "?" + r.Query.Encode()
	}
	return s
}

// Response is the status and body of a completed request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewTestHarness creates a TestHarness for the service at the specified base URL, for instance
// "https://example.com/api". A zero timeout means the HTTP client's default, which is no timeout.
func NewTestHarness(
	baseURL string,
	timeout time.Duration,
	debugLogger framework.Logger,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base URL must be an absolute http or https URL, got %q", baseURL)
	}
	return &TestHarness{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     debugLogger,
	}, nil
}

func (h *TestHarness) BaseURL() string {
	return h.baseURL
}

// URL returns the absolute URL for a request.
func (h *TestHarness) URL(r Request) string {
	u := h.baseURL + "/" + strings.TrimPrefix(r.Path, "/")
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// Do sends a request and reads the whole response. Diagnostic output goes to the specified logger,
// or to the harness's own debug logger if it is nil.
func (h *TestHarness) Do(r Request, logger framework.Logger) (*Response, error) {
	if logger == nil {
		logger = h.logger
	}
	target := h.URL(r)

	var data []byte
	var body io.Reader
	if r.Body != nil {
		var err error
		data, err = json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("could not encode request body: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(r.Method, target, body)
	if err != nil {
		return nil, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if data != nil {
		logger.Printf("Sending %s %s with body: %s", r.Method, target, string(data))
	} else {
		logger.Printf("Sending %s %s", r.Method, target)
	}
	logger.Printf("Equivalent command: %s", curlCommand(r.Method, target, data))

	resp, err := h.httpClient.Do(req)
	if err != nil {
		logger.Printf("Request failed: %s", err)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Printf("Error reading response body: %s", err)
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	logger.Printf("Received HTTP %d: %s", resp.StatusCode, string(respData))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respData,
	}, nil
}

// JSON parses the response body. An empty or malformed body is an error; the error for a
// malformed body names the Content-Type the service sent, if any.
func (r *Response) JSON() (ldvalue.Value, error) {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return ldvalue.Null(), errors.New("response body was empty, expected JSON")
	}
	var v ldvalue.Value
	if err := json.Unmarshal(r.Body, &v); err != nil {
		if contentType := r.Header.Get("Content-Type"); contentType != "" {
			return ldvalue.Null(), fmt.Errorf("response body was not valid JSON (%s, Content-Type %q): %s",
				err, contentType, r.Text())
		}
		return ldvalue.Null(), fmt.Errorf("response body was not valid JSON (%s): %s", err, r.Text())
	}
	return v, nil
}

// Text returns the response body as a string, shortened if it is very long.
func (r *Response) Text() string {
	if len(r.Body) > maxBodyTextLength {
		return string(r.Body[:maxBodyTextLength]) + "..."
	}
	return string(r.Body)
}
