package storetests

import (
	"net/http"
	"net/url"

	"github.com/glamcharms/storefront-contract-tests/framework/harness"
	"github.com/glamcharms/storefront-contract-tests/servicedef"
)

func DoProductTests(t *T) {
	t.Run("GET /api/products - Fetch all products", func(t *T) {
		body := t.RequireSuccessResponse(harness.Request{
			Method: http.MethodGet,
			Path:   servicedef.PathProducts,
		}, servicedef.ProductListResponse)

		products := body.GetByKey(servicedef.PropProducts)
		if products.Count() != expectedProductCount {
			t.Failf("Expected %d products, got %d", expectedProductCount, products.Count())
		}
		t.Passed("Retrieved %d products successfully", products.Count())
	})

	t.Run("GET /api/products?category=Earring - Filter by category", func(t *T) {
		body := t.RequireSuccessResponse(harness.Request{
			Method: http.MethodGet,
			Path:   servicedef.PathProducts,
			Query:  url.Values{servicedef.QueryCategory: []string{filterCategory}},
		}, servicedef.ProductListResponse)

		products := body.GetByKey(servicedef.PropProducts)
		if products.Count() != expectedCategoryCount {
			t.Failf("Expected %d products in category %q, got %d",
				expectedCategoryCount, filterCategory, products.Count())
		}
		t.Passed("Retrieved %d earrings successfully", products.Count())
	})

	t.Run("GET /api/products/1 - Get single product", func(t *T) {
		body := t.RequireSuccessResponse(harness.Request{
			Method: http.MethodGet,
			Path:   servicedef.ProductPath(knownProductID),
		}, servicedef.ProductResponse)

		product := body.GetByKey(servicedef.PropProduct)
		id := product.GetByKey(servicedef.PropID).StringValue()
		name := product.GetByKey(servicedef.PropName).StringValue()
		if id != knownProductID || name != knownProductName {
			t.Failf("Product data mismatch: expected id %q named %q, got id %q named %q",
				knownProductID, knownProductName, id, name)
		}
		t.Passed("Retrieved product: %s", name)
	})

	t.Run("GET /api/products/999 - Non-existent product", func(t *T) {
		message := t.RequireErrorResponse(harness.Request{
			Method: http.MethodGet,
			Path:   servicedef.ProductPath(missingProductID),
		}, http.StatusNotFound)
		t.Debug("Error message: %s", message)
		t.Passed("Correctly returned 404 for non-existent product")
	})
}
