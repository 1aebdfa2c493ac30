package fakestore

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeClient struct {
	t      *testing.T
	server *httptest.Server
}

func (c storeClient) call(method, path string, body interface{}) (int, map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer func() { _ = resp.Body.Close() }()
	var ret map[string]interface{}
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&ret))
	return resp.StatusCode, ret
}

func withStore(t *testing.T, store *Store, action func(storeClient)) {
	httphelpers.WithServer(store, func(server *httptest.Server) {
		action(storeClient{t: t, server: server})
	})
}

func TestDefaultCatalog(t *testing.T) {
	products := DefaultProducts()
	assert.Len(t, products, 15)

	ids := map[string]bool{}
	earrings := 0
	for _, p := range products {
		assert.False(t, ids[p.ID], "duplicate product ID %s", p.ID)
		ids[p.ID] = true
		if p.Category == "Earring" {
			earrings++
		}
	}
	assert.Equal(t, 3, earrings)
	assert.Equal(t, "Royal Gold Jhumkas", products[0].Name)
}

func TestListProducts(t *testing.T) {
	withStore(t, New(), func(c storeClient) {
		status, body := c.call("GET", "/products", nil)
		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["success"])
		assert.Len(t, body["products"], 15)

		_, body = c.call("GET", "/products?category=Mangalsutra", nil)
		assert.Len(t, body["products"], 3)

		_, body = c.call("GET", "/products?category=All+Products", nil)
		assert.Len(t, body["products"], 15)

		_, body = c.call("GET", "/products?category=Nonexistent", nil)
		assert.Len(t, body["products"], 0)
	})
}

func TestGetProduct(t *testing.T) {
	withStore(t, New(), func(c storeClient) {
		status, body := c.call("GET", "/products/7", nil)
		assert.Equal(t, 200, status)
		assert.Equal(t, "Classic Gold Mangalsutra", body["product"].(map[string]interface{})["name"])

		status, body = c.call("GET", "/products/999", nil)
		assert.Equal(t, 404, status)
		assert.Equal(t, map[string]interface{}{"success": false, "error": "Product not found"}, body)
	})
}

func TestCartOperations(t *testing.T) {
	store := New()
	withStore(t, store, func(c storeClient) {
		status, _ := c.call("POST", "/cart", map[string]interface{}{"productId": "1", "quantity": 2, "sessionId": "s1"})
		assert.Equal(t, 200, status)
		c.call("POST", "/cart", map[string]interface{}{"productId": "7", "quantity": 1, "sessionId": "s1"})
		c.call("PUT", "/cart/1", map[string]interface{}{"quantity": 3, "sessionId": "s1"})

		_, body := c.call("GET", "/cart?sessionId=s1", nil)
		assert.Len(t, body["items"], 2)

		c.call("DELETE", "/cart/7?sessionId=s1", nil)
		assert.Equal(t, []CartItem{{ProductID: "1", Name: "Royal Gold Jhumkas", Price: 12999, Quantity: 3}},
			store.Cart("s1"))

		_, body = c.call("GET", "/cart?sessionId=s2", nil)
		assert.Equal(t, []interface{}{}, body["items"])
	})
}

func TestAddMissingProductToCart(t *testing.T) {
	store := New()
	withStore(t, store, func(c storeClient) {
		status, body := c.call("POST", "/cart", map[string]interface{}{"productId": "999", "quantity": 1, "sessionId": "s1"})
		assert.Equal(t, 404, status)
		assert.Equal(t, "Product not found", body["error"])
		assert.Len(t, store.Cart("s1"), 0)
	})
}

func TestSessionIDDefaultsWhenOmitted(t *testing.T) {
	store := New()
	withStore(t, store, func(c storeClient) {
		c.call("POST", "/cart", map[string]interface{}{"productId": "2"})
		assert.Equal(t, []CartItem{{ProductID: "2", Name: "Elegant Stud Earrings", Price: 8999, Quantity: 1}},
			store.Cart(defaultSessionID))
	})
}

func TestOrderLifecycle(t *testing.T) {
	store := New()
	withStore(t, store, func(c storeClient) {
		c.call("POST", "/cart", map[string]interface{}{"productId": "1", "quantity": 1, "sessionId": "s1"})

		status, body := c.call("POST", "/create-payment-intent", map[string]interface{}{
			"amount": 12999, "items": []interface{}{map[string]interface{}{"productId": "1"}}, "sessionId": "s1",
		})
		assert.Equal(t, 200, status)
		piID := body["paymentIntentId"].(string)
		assert.NotEqual(t, "", body["clientSecret"])

		status, body = c.call("POST", "/orders", map[string]interface{}{
			"sessionId":       "s1",
			"items":           []interface{}{},
			"paymentIntentId": piID,
			"subtotal":        12999,
			"total":           13499,
		})
		assert.Equal(t, 200, status)
		orderID := body["orderId"].(string)
		assert.Len(t, store.Cart("s1"), 0)

		_, body = c.call("GET", "/orders?sessionId=s1", nil)
		assert.Len(t, body["orders"], 1)
		_, body = c.call("GET", "/orders?sessionId=other", nil)
		assert.Len(t, body["orders"], 0)

		status, _ = c.call("PUT", "/orders/"+orderID, map[string]interface{}{"paymentStatus": "completed", "status": "confirmed"})
		assert.Equal(t, 200, status)

		_, body = c.call("GET", "/orders/"+orderID, nil)
		order := body["order"].(map[string]interface{})
		assert.Equal(t, orderID, order["orderId"])
		assert.Equal(t, piID, order["paymentIntentId"])
		assert.Equal(t, "completed", order["paymentStatus"])
		assert.Equal(t, "confirmed", order["status"])
		assert.Equal(t, float64(13499), order["total"])

		status, _ = c.call("GET", "/orders/unknown", nil)
		assert.Equal(t, 404, status)
	})
}

func TestKeepCartAfterOrder(t *testing.T) {
	store := New()
	store.KeepCartAfterOrder = true
	withStore(t, store, func(c storeClient) {
		c.call("POST", "/cart", map[string]interface{}{"productId": "1", "quantity": 1, "sessionId": "s1"})
		c.call("POST", "/orders", map[string]interface{}{"sessionId": "s1"})
		assert.Len(t, store.Cart("s1"), 1)
		assert.Len(t, store.Orders(), 1)
	})
}

func TestUpdateUnknownOrderSucceeds(t *testing.T) {
	withStore(t, New(), func(c storeClient) {
		status, body := c.call("PUT", "/orders/no-such-order", map[string]interface{}{"status": "confirmed"})
		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["success"])
	})
}

func TestUnknownEndpoint(t *testing.T) {
	withStore(t, New(), func(c storeClient) {
		for _, p := range []struct{ method, path string }{
			{"GET", "/invalid-endpoint"},
			{"DELETE", "/orders/1"},
			{"PATCH", "/products"},
		} {
			status, body := c.call(p.method, p.path, nil)
			assert.Equal(t, 404, status, p.path)
			assert.Equal(t, "Endpoint not found", body["error"], p.path)
		}
	})
}

func TestMalformedBody(t *testing.T) {
	withStore(t, New(), func(c storeClient) {
		req, err := http.NewRequest("POST", c.server.URL+"/cart", bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, 500, resp.StatusCode)
	})
}
