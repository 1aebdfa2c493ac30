// Package storetests contains the storefront API contract tests and their supporting API.
//
// The checks form a single fixed sequence. They are not independent: items added to the cart by
// one check are expected by later checks, and identifiers returned by the payment intent and order
// checks are used by the checks that follow them. For that reason the checks must always run in
// declaration order, one at a time, against one session ID.
//
// Test harness infrastructure that is not specific to the storefront API, such as test contexts,
// results, reports, and the HTTP transport, is in the lower-level framework package.
package storetests
