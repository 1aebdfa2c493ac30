package storetests

import (
	"net/http"

	"github.com/glamcharms/storefront-contract-tests/framework/harness"
	"github.com/glamcharms/storefront-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoPaymentTests(t *T) {
	t.Run("POST /api/create-payment-intent - Create payment intent", func(t *T) {
		cart := t.readCartQuietly()

		body := t.RequireSuccessResponse(harness.Request{
			Method: http.MethodPost,
			Path:   servicedef.PathCreatePaymentIntent,
			Body: servicedef.PaymentIntentParams{
				Amount:    cart.subtotal,
				Items:     cart.items,
				SessionID: t.State().SessionID,
			},
		}, servicedef.PaymentIntentResponse)

		id := body.GetByKey(servicedef.PropPaymentIntentID).StringValue()
		t.State().PaymentIntentID = ldvalue.NewOptionalString(id)
		t.Passed("Created payment intent with amount %s", formatRupees(cart.subtotal))
	})
}
