package storetests

import (
	"net/http"

	"github.com/glamcharms/storefront-contract-tests/framework/harness"
	"github.com/glamcharms/storefront-contract-tests/servicedef"
)

func DoErrorHandlingTests(t *T) {
	t.Run("Error handling - Non-existent product in cart", func(t *T) {
		t.RequireErrorResponse(harness.Request{
			Method: http.MethodPost,
			Path:   servicedef.PathCart,
			Body: servicedef.AddToCartParams{
				ProductID: missingProductID,
				Quantity:  1,
				SessionID: t.State().SessionID,
			},
		}, http.StatusNotFound)
		t.Passed("Correctly handled non-existent product")
	})

	t.Run("Error handling - Invalid endpoint", func(t *T) {
		t.RequireErrorResponse(harness.Request{
			Method: http.MethodGet,
			Path:   invalidEndpointPath,
		}, http.StatusNotFound)
		t.Passed("Correctly handled invalid endpoint")
	})
}
