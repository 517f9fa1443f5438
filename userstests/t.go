package userstests

import (
	"github.com/apitesting/users-api-tests/client"
	"github.com/apitesting/users-api-tests/fixtures"
	"github.com/apitesting/users-api-tests/framework"

	"github.com/stretchr/testify/require"
)

// T represents a test or subtest in the users API suite.
//
// Like the T in Go's testing package, it can be passed to the assert and require packages. It
// also gives tests the shared API client and their own copies of fixture payloads, and logs
// every request and response to the test's debug output.
type T struct {
	context *framework.Context
	env     *Environment
}

func newTestScope(context *framework.Context, env *Environment) *T {
	return &T{context: context, env: env}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Client returns the API client shared by all tests in the module.
func (t *T) Client() *client.Client {
	return t.context.Use(t.env.clientFixture).(*client.Client)
}

// Fixtures returns the fixture store shared by all tests in the module.
func (t *T) Fixtures() *fixtures.Store {
	return t.context.Use(t.env.fixturesFixture).(*fixtures.Store)
}

// Payload returns this test's own copy of a named payload template. The test fails
// immediately if there is no such template. The copies a test took are listed in its debug
// output when it ends.
func (t *T) Payload(name string) fixtures.Payload {
	taken := t.context.Use(t.env.payloadsFixture).(*testPayloads)
	p, err := t.Fixtures().Payload(name)
	require.NoError(t, err)
	taken.names = append(taken.names, name)
	return p
}

// Get sends a GET request with the shared client. A transport error fails the test
// immediately; an HTTP error status does not.
func (t *T) Get(path string) *client.Response {
	return t.do("GET", path, nil)
}

func (t *T) Post(path string, payload fixtures.Payload) *client.Response {
	return t.do("POST", path, payload)
}

func (t *T) Put(path string, payload fixtures.Payload) *client.Response {
	return t.do("PUT", path, payload)
}

func (t *T) Delete(path string) *client.Response {
	return t.do("DELETE", path, nil)
}

func (t *T) do(method, path string, payload interface{}) *client.Response {
	if payload != nil {
		t.Debug("%s %s %s", method, path, payload)
	} else {
		t.Debug("%s %s", method, path)
	}
	resp, err := t.Client().Do(method, path, payload)
	require.NoError(t, err)
	t.Debug("%s in %s: %s", resp, resp.Elapsed, resp.BodyString())
	return resp
}
