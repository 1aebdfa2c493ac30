package storetests

import "github.com/glamcharms/storefront-contract-tests/servicedef"

// Expected properties of the product catalog, and the data that the checks send.
const (
	expectedProductCount  = 15
	filterCategory        = "Earring"
	expectedCategoryCount = 3

	knownProductID   = "1"
	knownProductName = "Royal Gold Jhumkas"
	missingProductID = "999"
	secondProductID  = "7"

	initialQuantity = 2
	updatedQuantity = 3

	// Added to the cart subtotal to get the order total.
	shippingCharge = 500

	// Used for order creation if the payment intent check did not capture an ID.
	fallbackPaymentIntentID = "pi_test_123"

	completedPaymentStatus = "completed"
	confirmedOrderStatus   = "confirmed"

	invalidEndpointPath = "invalid-endpoint"
)

// DefaultSessionID is the session ID used if none is specified.
const DefaultSessionID = "test_session_123"

var testShippingAddress = servicedef.ShippingAddress{
	Name:    "Priya Sharma",
	Address: "123 MG Road",
	City:    "Mumbai",
	State:   "Maharashtra",
	Pincode: "400001",
	Phone:   "9876543210",
}
