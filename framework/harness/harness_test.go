package harness

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glamcharms/storefront-contract-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestHarnessValidatesBaseURL(t *testing.T) {
	for _, badURL := range []string{"", "not a url", "localhost:8080", "ftp://example.com/api", "http://"} {
		t.Run(badURL, func(t *testing.T) {
			_, err := NewTestHarness(badURL, 0, nil)
			assert.Error(t, err)
		})
	}
}

func TestNewTestHarnessTrimsTrailingSlash(t *testing.T) {
	h, err := NewTestHarness("https://example.com/api/", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api", h.BaseURL())
}

func TestURL(t *testing.T) {
	h, err := NewTestHarness("http://localhost:3000/api", 0, nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api/products", h.URL(Request{Path: "products"}))
	assert.Equal(t, "http://localhost:3000/api/products", h.URL(Request{Path: "/products"}))
	assert.Equal(t, "http://localhost:3000/api/products?category=Earring",
		h.URL(Request{Path: "products", Query: url.Values{"category": []string{"Earring"}}}))
}

func TestRequestString(t *testing.T) {
	r := Request{Method: "DELETE", Path: "cart/7", Query: url.Values{"sessionId": []string{"abc"}}}
	assert.Equal(t, "DELETE cart/7?sessionId=abc", r.String())
}

func TestDoSendsJSONBody(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, nil, []byte(`{"success": true}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL+"/api", 0, nil)
		require.NoError(t, err)

		resp, err := h.Do(Request{
			Method: "POST",
			Path:   "cart",
			Body:   map[string]interface{}{"productId": "1", "quantity": 2},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		require.Len(t, requestsCh, 1)
		r := <-requestsCh
		assert.Equal(t, "POST", r.Request.Method)
		assert.Equal(t, "/api/cart", r.Request.URL.Path)
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"productId": "1", "quantity": 2}`, string(r.Body))
	})
}

func TestDoWithoutBodySendsNoContentType(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, 0, nil)
		require.NoError(t, err)

		_, err = h.Do(Request{
			Method: "GET",
			Path:   "cart",
			Query:  url.Values{"sessionId": []string{"test_session_123"}},
		}, nil)
		require.NoError(t, err)

		r := <-requestsCh
		assert.Equal(t, "test_session_123", r.Request.URL.Query().Get("sessionId"))
		assert.Equal(t, "", r.Request.Header.Get("Content-Type"))
		assert.Len(t, r.Body, 0)
	})
}

func TestDoReturnsErrorStatusWithoutError(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(404, nil, []byte(`{"success": false, "error": "Product not found"}`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, 0, nil)
		require.NoError(t, err)

		resp, err := h.Do(Request{Method: "GET", Path: "products/999"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		body, err := resp.JSON()
		require.NoError(t, err)
		assert.Equal(t, "Product not found", body.GetByKey("error").StringValue())
	})
}

func TestDoReturnsTransportError(t *testing.T) {
	httphelpers.WithServer(httphelpers.BrokenConnectionHandler(), func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, 0, nil)
		require.NoError(t, err)

		_, err = h.Do(Request{Method: "GET", Path: "products"}, nil)
		assert.Error(t, err)
	})
}

func TestDoLogsRequestAndResponse(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(200, nil, []byte(`{"success": true}`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var harnessLogger, requestLogger framework.CapturingLogger
		h, err := NewTestHarness(server.URL, 0, &harnessLogger)
		require.NoError(t, err)

		_, err = h.Do(Request{Method: "PUT", Path: "cart/1", Body: map[string]int{"quantity": 3}}, &requestLogger)
		require.NoError(t, err)

		assert.Len(t, harnessLogger.Output(), 0)
		var messages []string
		for _, m := range requestLogger.Output() {
			messages = append(messages, m.Message)
		}
		assert.Equal(t, []string{
			"Sending PUT " + server.URL + `/cart/1 with body: {"quantity":3}`,
			"Equivalent command: curl -sS -X PUT -H 'Content-Type: application/json' --data '{\"quantity\":3}' " +
				server.URL + "/cart/1",
			`Received HTTP 200: {"success": true}`,
		}, messages)
	})
}

func TestResponseJSON(t *testing.T) {
	v, err := (&Response{Body: []byte(`{"success": true, "products": [1, 2]}`)}).JSON()
	require.NoError(t, err)
	assert.True(t, v.GetByKey("success").BoolValue())
	assert.Equal(t, 2, v.GetByKey("products").Count())
}

func TestResponseJSONWithEmptyBody(t *testing.T) {
	_, err := (&Response{Body: []byte("  \n")}).JSON()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestResponseJSONWithInvalidBody(t *testing.T) {
	_, err := (&Response{Body: []byte("<html>Bad Gateway</html>")}).JSON()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response body was not valid JSON")
	assert.Contains(t, err.Error(), "<html>Bad Gateway</html>")
}

func TestResponseTextIsTruncated(t *testing.T) {
	long := strings.Repeat("x", maxBodyTextLength+100)
	text := (&Response{Body: []byte(long)}).Text()
	assert.Equal(t, strings.Repeat("x", maxBodyTextLength)+"...", text)

	assert.Equal(t, "short", (&Response{Body: []byte("short")}).Text())
}

func TestCurlCommand(t *testing.T) {
	assert.Equal(t, "curl -sS -X GET 'http://localhost/api/cart?sessionId=abc'",
		curlCommand("GET", "http://localhost/api/cart?sessionId=abc", nil))

	body, err := json.Marshal(map[string]string{"name": "Priya's order"})
	require.NoError(t, err)
	assert.Equal(t,
		`curl -sS -X POST -H 'Content-Type: application/json' --data '{"name":"Priya'"'"'s order"}' http://localhost/api/orders`,
		curlCommand("POST", "http://localhost/api/orders", body))
}

func TestResponseJSONErrorNamesContentType(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(502, map[string][]string{"Content-Type": {"text/html"}},
		[]byte("<html>Bad Gateway</html>"))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, 0, nil)
		require.NoError(t, err)

		resp, err := h.Do(Request{Method: "GET", Path: "products"}, nil)
		require.NoError(t, err)
		_, err = resp.JSON()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `Content-Type "text/html"`)
	})
}
