package storetests

import (
	"github.com/glamcharms/storefront-contract-tests/framework"
	"github.com/glamcharms/storefront-contract-tests/framework/harness"
)

// RunTestSuite runs every check against the service, in order. It always runs to completion; the
// outcome of each check is in the returned Results.
func RunTestSuite(
	testHarness *harness.TestHarness,
	state *RunState,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			harness: testHarness,
			state:   state,
		}

		t.RunGroup("products", DoProductTests)
		t.RunGroup("cart", DoCartTests)
		t.RunGroup("payment", DoPaymentTests)
		t.RunGroup("orders", DoOrderTests)
		t.RunGroup("error handling", DoErrorHandlingTests)
	})
}
