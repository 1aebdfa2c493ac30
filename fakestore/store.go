// Package fakestore is an in-memory implementation of the storefront API, for testing the contract
// tests themselves. It reproduces the observable behavior of the real service: carts keyed by
// session ID, order creation that empties the cart, and {"success": false, "error": ...} bodies
// for unknown resources.
package fakestore

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultSessionID = "default"

// CartItem is an entry in a session's cart.
type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order is a stored order. Items and the shipping address are kept exactly as they were posted.
type Order struct {
	OrderID         string          `json:"orderId"`
	SessionID       string          `json:"sessionId"`
	Items           json.RawMessage `json:"items"`
	ShippingAddress json.RawMessage `json:"shippingAddress"`
	PaymentIntentID string          `json:"paymentIntentId"`
	Subtotal        float64         `json:"subtotal"`
	Total           float64         `json:"total"`
	PaymentStatus   string          `json:"paymentStatus"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// PaymentIntent records a call to the payment intent endpoint.
type PaymentIntent struct {
	ID        string
	Amount    int
	SessionID string
	ItemCount int
}

// Store is an http.Handler serving the storefront API at the root path.
//
// KeepCartAfterOrder makes order creation leave the cart alone, to simulate a service that does
// not meet the contract.
type Store struct {
	KeepCartAfterOrder bool

	products       []Product
	carts          map[string][]CartItem
	orders         []Order
	paymentIntents []PaymentIntent
	lock           sync.Mutex
}

type requestBody map[string]json.RawMessage

// New creates a Store with the default catalog.
func New() *Store {
	return NewWithProducts(DefaultProducts())
}

// NewWithProducts creates a Store with the specified catalog.
func NewWithProducts(products []Product) *Store {
	return &Store{
		products: append([]Product(nil), products...),
		carts:    make(map[string][]CartItem),
	}
}

// Cart returns a copy of the cart for a session.
func (s *Store) Cart(sessionID string) []CartItem {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]CartItem(nil), s.carts[sessionID]...)
}

// Orders returns a copy of all stored orders, oldest first.
func (s *Store) Orders() []Order {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Order(nil), s.orders...)
}

// PaymentIntents returns a copy of all payment intents that were created.
func (s *Store) PaymentIntents() []PaymentIntent {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]PaymentIntent(nil), s.paymentIntents...)
}

func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")
	resource, id := path, ""
	if slash := strings.Index(path, "/"); slash >= 0 {
		resource, id = path[:slash], path[slash+1:]
	}

	var body requestBody
	if r.Method == http.MethodPost || r.Method == http.MethodPut {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	switch {
	case r.Method == http.MethodGet && resource == "products" && id == "":
		s.listProducts(w, r.URL.Query().Get("category"))
	case r.Method == http.MethodGet && resource == "products":
		s.getProduct(w, id)
	case r.Method == http.MethodGet && resource == "cart" && id == "":
		writeSuccess(w, map[string]interface{}{"items": s.cartItems(sessionParam(r))})
	case r.Method == http.MethodGet && resource == "orders" && id == "":
		s.listOrders(w, r.URL.Query().Get("sessionId"))
	case r.Method == http.MethodGet && resource == "orders":
		s.getOrder(w, id)
	case r.Method == http.MethodPost && path == "cart":
		s.addToCart(w, body)
	case r.Method == http.MethodPost && path == "create-payment-intent":
		s.createPaymentIntent(w, body)
	case r.Method == http.MethodPost && path == "orders":
		s.createOrder(w, body)
	case r.Method == http.MethodPut && resource == "cart" && id != "":
		s.updateCartItem(w, id, body)
	case r.Method == http.MethodPut && resource == "orders" && id != "":
		s.updateOrder(w, id, body)
	case r.Method == http.MethodDelete && resource == "cart" && id != "":
		s.removeCartItem(w, id, sessionParam(r))
	default:
		writeError(w, http.StatusNotFound, "Endpoint not found")
	}
}

func (s *Store) listProducts(w http.ResponseWriter, category string) {
	products := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category == "" || category == allProductsCategory || p.Category == category {
			products = append(products, p)
		}
	}
	writeSuccess(w, map[string]interface{}{"products": products})
}

func (s *Store) getProduct(w http.ResponseWriter, id string) {
	p, ok := s.findProduct(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeSuccess(w, map[string]interface{}{"product": p})
}

func (s *Store) findProduct(id string) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) cartItems(sessionID string) []CartItem {
	return append(make([]CartItem, 0, len(s.carts[sessionID])), s.carts[sessionID]...)
}

func (s *Store) addToCart(w http.ResponseWriter, body requestBody) {
	productID := body.stringProp("productId", "")
	p, ok := s.findProduct(productID)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	sessionID := body.stringProp("sessionId", defaultSessionID)
	s.carts[sessionID] = append(s.carts[sessionID], CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  body.intProp("quantity", 1),
	})
	writeSuccess(w, map[string]interface{}{"message": "Item added to cart"})
}

func (s *Store) updateCartItem(w http.ResponseWriter, productID string, body requestBody) {
	items := s.carts[body.stringProp("sessionId", defaultSessionID)]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = body.intProp("quantity", items[i].Quantity)
			break
		}
	}
	writeSuccess(w, map[string]interface{}{"message": "Cart updated"})
}

func (s *Store) removeCartItem(w http.ResponseWriter, productID, sessionID string) {
	var kept []CartItem
	for _, item := range s.carts[sessionID] {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.carts[sessionID] = kept
	writeSuccess(w, map[string]interface{}{"message": "Item removed from cart"})
}

func (s *Store) createPaymentIntent(w http.ResponseWriter, body requestBody) {
	var items []json.RawMessage
	_ = json.Unmarshal(body["items"], &items)
	pi := PaymentIntent{
		ID:        "pi_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Amount:    int(body.floatProp("amount") + 0.5),
		SessionID: body.stringProp("sessionId", defaultSessionID),
		ItemCount: len(items),
	}
	s.paymentIntents = append(s.paymentIntents, pi)
	writeSuccess(w, map[string]interface{}{
		"clientSecret":    pi.ID + "_secret_" + uuid.NewString()[:8],
		"paymentIntentId": pi.ID,
	})
}

func (s *Store) createOrder(w http.ResponseWriter, body requestBody) {
	now := time.Now()
	order := Order{
		OrderID:         uuid.NewString(),
		SessionID:       body.stringProp("sessionId", defaultSessionID),
		Items:           body.rawProp("items"),
		ShippingAddress: body.rawProp("shippingAddress"),
		PaymentIntentID: body.stringProp("paymentIntentId", ""),
		Subtotal:        body.floatProp("subtotal"),
		Total:           body.floatProp("total"),
		PaymentStatus:   "pending",
		Status:          "pending",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.orders = append(s.orders, order)
	if !s.KeepCartAfterOrder {
		s.carts[order.SessionID] = nil
	}
	writeSuccess(w, map[string]interface{}{
		"orderId": order.OrderID,
		"message": "Order created successfully",
	})
}

func (s *Store) listOrders(w http.ResponseWriter, sessionID string) {
	orders := make([]Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		if sessionID == "" || s.orders[i].SessionID == sessionID {
			orders = append(orders, s.orders[i])
		}
	}
	writeSuccess(w, map[string]interface{}{"orders": orders})
}

func (s *Store) getOrder(w http.ResponseWriter, orderID string) {
	for _, o := range s.orders {
		if o.OrderID == orderID {
			writeSuccess(w, map[string]interface{}{"order": o})
			return
		}
	}
	writeError(w, http.StatusNotFound, "Order not found")
}

// updateOrder reports success even if there is no such order, as the real service does.
func (s *Store) updateOrder(w http.ResponseWriter, orderID string, body requestBody) {
	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			if status := body.stringProp("paymentStatus", ""); status != "" {
				s.orders[i].PaymentStatus = status
			}
			if status := body.stringProp("status", ""); status != "" {
				s.orders[i].Status = status
			}
			s.orders[i].UpdatedAt = time.Now()
		}
	}
	writeSuccess(w, map[string]interface{}{"message": "Order updated"})
}

func sessionParam(r *http.Request) string {
	if id := r.URL.Query().Get("sessionId"); id != "" {
		return id
	}
	return defaultSessionID
}

func (b requestBody) rawProp(name string) json.RawMessage {
	if raw, ok := b[name]; ok {
		return raw
	}
	return json.RawMessage("null")
}

func (b requestBody) stringProp(name, defaultValue string) string {
	var s string
	if err := json.Unmarshal(b[name], &s); err != nil || s == "" {
		return defaultValue
	}
	return s
}

func (b requestBody) intProp(name string, defaultValue int) int {
	var n int
	if err := json.Unmarshal(b[name], &n); err != nil {
		return defaultValue
	}
	return n
}

func (b requestBody) floatProp(name string) float64 {
	var f float64
	_ = json.Unmarshal(b[name], &f)
	return f
}

func writeSuccess(w http.ResponseWriter, props map[string]interface{}) {
	props["success"] = true
	writeJSON(w, http.StatusOK, props)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "error": message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
