package storetests

import (
	"net/http"

	"github.com/glamcharms/storefront-contract-tests/framework/harness"
	"github.com/glamcharms/storefront-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoOrderTests(t *T) {
	t.Run("POST /api/orders - Create order", func(t *T) {
		cart := t.readCartQuietly()

		body := t.RequireSuccessResponse(harness.Request{
			Method: http.MethodPost,
			Path:   servicedef.PathOrders,
			Body: servicedef.CreateOrderParams{
				SessionID:       t.State().SessionID,
				Items:           cart.items,
				ShippingAddress: testShippingAddress,
				PaymentIntentID: t.State().PaymentIntentID.OrElse(fallbackPaymentIntentID),
				Subtotal:        cart.subtotal,
				Total:           cart.subtotal + shippingCharge,
			},
		}, servicedef.OrderCreatedResponse)

		orderID := body.GetByKey(servicedef.PropOrderID).StringValue()
		t.State().OrderID = ldvalue.NewOptionalString(orderID)
		t.Passed("Created order with ID: %s", orderID)
	})

	t.Run("Cart cleared after order creation", func(t *T) {
		items := requireCartItems(t)
		if items.Count() != 0 {
			t.Failf("Cart still has %d items", items.Count())
		}
		t.Passed("Cart successfully cleared after order")
	})

	t.Run("GET /api/orders - Get orders for session", func(t *T) {
		body := t.RequireSuccessResponse(harness.Request{
			Method: http.MethodGet,
			Path:   servicedef.PathOrders,
			Query:  t.sessionQuery(),
		}, servicedef.OrderListResponse)

		orders := body.GetByKey(servicedef.PropOrders)
		if orders.Count() == 0 {
			t.Failf("No orders found after creating order")
		}
		t.Passed("Retrieved %d orders", orders.Count())
	})

	t.Run("GET /api/orders/{orderId} - Get single order", func(t *T) {
		orderID := requireCapturedOrderID(t)

		body := t.RequireSuccessResponse(harness.Request{
			Method: http.MethodGet,
			Path:   servicedef.OrderPath(orderID),
		}, servicedef.OrderResponse)

		actual := body.GetByKey(servicedef.PropOrder).GetByKey(servicedef.PropOrderID).StringValue()
		if actual != orderID {
			t.Failf("Order ID mismatch: expected %q, got %q", orderID, actual)
		}
		t.Passed("Retrieved order: %s", actual)
	})

	t.Run("PUT /api/orders/{orderId} - Update order status", func(t *T) {
		orderID := requireCapturedOrderID(t)

		t.RequireSuccessFlag(harness.Request{
			Method: http.MethodPut,
			Path:   servicedef.OrderPath(orderID),
			Body: servicedef.UpdateOrderParams{
				PaymentStatus: completedPaymentStatus,
				Status:        confirmedOrderStatus,
			},
		})
		t.Passed("Successfully updated order status")
	})
}

// requireCapturedOrderID skips the check if order creation did not produce an ID.
func requireCapturedOrderID(t *T) string {
	if !t.State().OrderID.IsDefined() {
		t.SkipWithReason("no order ID was captured")
	}
	return t.State().OrderID.StringValue()
}

// requireCartItems reads the session's cart as part of a check, failing the check if it cannot be
// read.
func requireCartItems(t *T) ldvalue.Value {
	body := t.RequireSuccessResponse(harness.Request{
		Method: http.MethodGet,
		Path:   servicedef.PathCart,
		Query:  t.sessionQuery(),
	}, servicedef.CartResponse)
	return body.GetByKey(servicedef.PropItems)
}
