package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

const (
	PathProducts            = "products"
	PathCart                = "cart"
	PathCreatePaymentIntent = "create-payment-intent"
	PathOrders              = "orders"

	QueryCategory  = "category"
	QuerySessionID = "sessionId"
)

// Property names used in response envelopes.
const (
	PropSuccess         = "success"
	PropError           = "error"
	PropProducts        = "products"
	PropProduct         = "product"
	PropItems           = "items"
	PropOrders          = "orders"
	PropOrder           = "order"
	PropOrderID         = "orderId"
	PropClientSecret    = "clientSecret"
	PropPaymentIntentID = "paymentIntentId"
	PropID              = "id"
	PropName            = "name"
	PropProductID       = "productId"
	PropPrice           = "price"
	PropQuantity        = "quantity"
)

// ProductPath returns the path of a single product resource.
func ProductPath(id string) string { return PathProducts + "/" + id }

// CartItemPath returns the path of an item in a cart; the item is identified by its product ID.
func CartItemPath(productID string) string { return PathCart + "/" + productID }

// OrderPath returns the path of a single order resource.
func OrderPath(orderID string) string { return PathOrders + "/" + orderID }

type AddToCartParams struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	SessionID string `json:"sessionId"`
}

type UpdateCartParams struct {
	Quantity  int    `json:"quantity"`
	SessionID string `json:"sessionId"`
}

// PaymentIntentParams is the body for creating a payment intent. Amount is in the smallest unit of
// the currency. Items is passed through exactly as the cart returned it.
type PaymentIntentParams struct {
	Amount    float64       `json:"amount"`
	Items     ldvalue.Value `json:"items"`
	SessionID string        `json:"sessionId"`
}

type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

type CreateOrderParams struct {
	SessionID       string          `json:"sessionId"`
	Items           ldvalue.Value   `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentIntentID string          `json:"paymentIntentId"`
	Subtotal        float64         `json:"subtotal"`
	Total           float64         `json:"total"`
}

type UpdateOrderParams struct {
	PaymentStatus string `json:"paymentStatus,omitempty"`
	Status        string `json:"status,omitempty"`
}
