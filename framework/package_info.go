// Package framework contains the low-level test infrastructure that the users API scenarios
// run on.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T, allowing pieces
// of test logic to be associated with a test identifier and to accumulate success/failure
// results. Assertions from testify's assert and require packages can be used with it.
//
// 2. Tests are grouped into modules with Context.RunModule. A Fixture can be scoped to a single
// test or to the enclosing module; the framework creates the value on first use and runs its
// teardown when the scope ends, the way a test runner's fixture mechanism would.
//
// 3. Each test has its own debug logger whose output is kept with the test result, so that it
// can be shown only for failed tests or written to a report.
//
// The domain-specific code that knows what is being tested provides the fixtures and the
// scenarios, and a domain-specific test API on top of the test context.
package framework
