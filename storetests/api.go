package storetests

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/glamcharms/storefront-contract-tests/framework"
	"github.com/glamcharms/storefront-contract-tests/framework/harness"
	"github.com/glamcharms/storefront-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// RunState is the mutable state shared by all checks in one run. The session ID correlates cart
// and order operations; the payment intent and order IDs are captured from responses by earlier
// checks and used by later ones.
type RunState struct {
	SessionID       string
	PaymentIntentID ldvalue.OptionalString
	OrderID         ldvalue.OptionalString
}

// NewRunState creates the state for a run that uses the specified session ID.
func NewRunState(sessionID string) *RunState {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	return &RunState{SessionID: sessionID}
}

// T represents a check, or a group of checks, in the storefront test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner; that functionality is provided by the lower-level framework
// package. It also has methods for sending requests to the service under test that fail the check
// immediately if the response is not what was expected, to reduce the amount of boilerplate logic
// in the checks.
//
// Since T implements Errorf and FailNow, it can also be passed to testify's assert and require
// functions.
type T struct {
	context *framework.Context
	harness *harness.TestHarness
	state   *RunState
}

// Errorf is called by assertions to log a failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow ends the check immediately. The failure must already have been recorded.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Failf records a failure with the specified description and ends the check.
func (t *T) Failf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
	t.context.FailNow()
}

// Passed sets the description that will be reported if the check does not fail.
func (t *T) Passed(format string, args ...interface{}) {
	t.context.SetDetails(format, args...)
}

// SkipWithReason ends the check without producing a result.
func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Run runs a check or a group of checks. This is equivalent to the Run method of testing.T, except
// that the action always completes before Run returns.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, harness: t.harness, state: t.state})
	})
}

// RunGroup runs a group of checks. The group itself is never excluded by filters.
func (t *T) RunGroup(name string, action func(*T)) {
	t.context.RunGroup(name, func(c *framework.Context) {
		action(&T{context: c, harness: t.harness, state: t.state})
	})
}

// Debug logs some debug output for the check. The output will be passed to the test logger at the
// end of the check.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) State() *RunState {
	return t.state
}

func (t *T) sessionQuery() url.Values {
	return url.Values{servicedef.QuerySessionID: []string{t.state.SessionID}}
}

// SendRequest sends a request to the service. If the request cannot be completed, the check fails
// and exits immediately, with the transport error as the description.
func (t *T) SendRequest(r harness.Request) *harness.Response {
	resp, err := t.harness.Do(r, t.context.DebugLogger())
	if err != nil {
		t.Failf("%s", err)
	}
	return resp
}

// RequireJSON parses a response body, failing the check if it is not JSON.
func (t *T) RequireJSON(resp *harness.Response) ldvalue.Value {
	body, err := resp.JSON()
	if err != nil {
		t.Failf("%s", err)
	}
	return body
}

// RequireSuccessResponse sends a request and requires an HTTP 200 response whose body matches the
// schema. It returns the parsed body.
func (t *T) RequireSuccessResponse(r harness.Request, schema *servicedef.ResponseSchema) ldvalue.Value {
	resp := t.SendRequest(r)
	if resp.StatusCode != http.StatusOK {
		t.Failf("HTTP %d: %s", resp.StatusCode, resp.Text())
	}
	body := t.RequireJSON(resp)
	if err := schema.Validate(body); err != nil {
		t.Failf("Invalid response format: %s", err)
	}
	return body
}

// RequireSuccessFlag sends a request and requires an HTTP 200 response with "success": true. It is
// used for operations whose response has nothing else of interest.
func (t *T) RequireSuccessFlag(r harness.Request) ldvalue.Value {
	resp := t.SendRequest(r)
	if resp.StatusCode != http.StatusOK {
		t.Failf("HTTP %d: %s", resp.StatusCode, resp.Text())
	}
	body := t.RequireJSON(resp)
	if !body.GetByKey(servicedef.PropSuccess).BoolValue() {
		t.Failf("Response indicates failure: %s", resp.Text())
	}
	return body
}

// RequireErrorResponse sends a request and requires the specified error status, with a body of
// the form {"success": false, "error": "message"}. It returns the error message.
func (t *T) RequireErrorResponse(r harness.Request, status int) string {
	resp := t.SendRequest(r)
	if resp.StatusCode != status {
		t.Failf("Expected %d, got HTTP %d", status, resp.StatusCode)
	}
	body := t.RequireJSON(resp)
	if err := servicedef.ErrorResponse.Validate(body); err != nil {
		t.Failf("Invalid error response format: %s", err)
	}
	return body.GetByKey(servicedef.PropError).StringValue()
}

// cartSnapshot is the content of the session's cart as read by readCartQuietly.
type cartSnapshot struct {
	items    ldvalue.Value
	subtotal float64
}

// readCartQuietly reads the cart as preparation for another operation. It does not affect the
// result of the check: if the cart cannot be read, it is treated as empty.
func (t *T) readCartQuietly() cartSnapshot {
	empty := cartSnapshot{items: ldvalue.ArrayOf()}
	resp, err := t.harness.Do(harness.Request{
		Method: http.MethodGet,
		Path:   servicedef.PathCart,
		Query:  t.sessionQuery(),
	}, t.context.DebugLogger())
	if err != nil {
		t.Debug("Could not read cart, assuming it is empty: %s", err)
		return empty
	}
	if resp.StatusCode != http.StatusOK {
		t.Debug("Cart request returned HTTP %d, assuming cart is empty", resp.StatusCode)
		return empty
	}
	body, err := resp.JSON()
	if err != nil {
		t.Debug("Could not parse cart, assuming it is empty: %s", err)
		return empty
	}
	items := body.GetByKey(servicedef.PropItems)
	if items.Type() != ldvalue.ArrayType {
		return empty
	}
	return cartSnapshot{items: items, subtotal: cartSubtotal(items)}
}

// cartSubtotal adds up price times quantity for each item. Prices are in the smallest currency unit.
func cartSubtotal(items ldvalue.Value) float64 {
	var total float64
	for i := 0; i < items.Count(); i++ {
		item := items.GetByIndex(i)
		total += item.GetByKey(servicedef.PropPrice).Float64Value() *
			item.GetByKey(servicedef.PropQuantity).Float64Value()
	}
	return total
}

// cartContains returns true if any item in the cart has the specified product ID.
func cartContains(items ldvalue.Value, productID string) bool {
	for i := 0; i < items.Count(); i++ {
		if items.GetByIndex(i).GetByKey(servicedef.PropProductID).StringValue() == productID {
			return true
		}
	}
	return false
}

func formatRupees(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount/100)
}
