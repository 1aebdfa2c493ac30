package storetests

import (
	"net/http"

	"github.com/glamcharms/storefront-contract-tests/framework/harness"
	"github.com/glamcharms/storefront-contract-tests/servicedef"
)

func DoCartTests(t *T) {
	t.Run("POST /api/cart - Add product to cart", func(t *T) {
		t.RequireSuccessFlag(harness.Request{
			Method: http.MethodPost,
			Path:   servicedef.PathCart,
			Body: servicedef.AddToCartParams{
				ProductID: knownProductID,
				Quantity:  initialQuantity,
				SessionID: t.State().SessionID,
			},
		})
		t.Passed("Successfully added product to cart")
	})

	t.Run("GET /api/cart - Get cart items", func(t *T) {
		items := requireCartItems(t)
		if items.Count() == 0 {
			t.Failf("No items found in cart after adding")
		}
		t.Passed("Retrieved %d cart items", items.Count())
	})

	t.Run("PUT /api/cart/1 - Update cart item quantity", func(t *T) {
		t.RequireSuccessFlag(harness.Request{
			Method: http.MethodPut,
			Path:   servicedef.CartItemPath(knownProductID),
			Body: servicedef.UpdateCartParams{
				Quantity:  updatedQuantity,
				SessionID: t.State().SessionID,
			},
		})
		t.Passed("Successfully updated cart item quantity")
	})

	t.Run("POST /api/cart - Add second product", func(t *T) {
		t.RequireSuccessFlag(harness.Request{
			Method: http.MethodPost,
			Path:   servicedef.PathCart,
			Body: servicedef.AddToCartParams{
				ProductID: secondProductID,
				Quantity:  1,
				SessionID: t.State().SessionID,
			},
		})
		t.Passed("Successfully added second product to cart")
	})

	t.Run("DELETE /api/cart/7 - Remove item from cart", func(t *T) {
		t.RequireSuccessFlag(harness.Request{
			Method: http.MethodDelete,
			Path:   servicedef.CartItemPath(secondProductID),
			Query:  t.sessionQuery(),
		})
		t.Passed("Successfully removed item from cart")
	})

	t.Run("GET /api/cart - Removed item no longer listed", func(t *T) {
		items := requireCartItems(t)
		if cartContains(items, secondProductID) {
			t.Failf("Product %s is still in the cart after being removed", secondProductID)
		}
		t.Passed("Cart has %d items and does not list product %s", items.Count(), secondProductID)
	})
}
