// Package framework contains the low-level implementation of the contract test infrastructure:
// everything that does not know which API is being tested.
//
// The general model is:
//
// 1. A test run is a tree of named checks. Top-level entries are groups that exist only to
// organize the output; the checks inside them are executed one at a time, in the order they are
// declared. A check may depend on state that earlier checks created in the service under test.
//
// 2. Each check has a Context, which is similar to Go's *testing.T: it can record failures, end
// the check early, skip it, and capture debug output. A failure of any kind, including an
// unexpected panic, only affects the current check; the run always continues.
//
// 3. Every check that runs produces exactly one TestResult. The Results of a run can be printed
// as a summary and written to a JSON report.
//
// The harness subpackage knows how to talk to the service under test over HTTP. The
// domain-specific code that knows what is being tested is responsible for the requests to send
// and the expectations for each response.
package framework
