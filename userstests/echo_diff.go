package userstests

import (
	"github.com/apitesting/users-api-tests/client"
	"github.com/apitesting/users-api-tests/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// assertEchoesPayload checks that every field of payload came back unchanged in the response
// body. Extra fields in the body, such as the id, are ignored. On a mismatch the differences are
// written to the test's debug output.
func assertEchoesPayload(t *T, payload fixtures.Payload, resp *client.Response) bool {
	echoed := ldvalue.ObjectBuild()
	for _, key := range payload.Keys() {
		echoed.Set(key, resp.Field(key))
	}
	expectedJSON := payload.Value().JSONString()
	actualJSON := echoed.Build().JSONString()

	diff, err := gojsondiff.New().Compare([]byte(expectedJSON), []byte(actualJSON))
	require.NoError(t, err)
	if !diff.Modified() {
		return true
	}
	f := formatter.NewAsciiFormatter(payload.AsMap(), formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       false,
	})
	if text, err := f.Format(diff); err == nil {
		t.Debug("response body differs from request payload:\n%s", text)
	}
	return assert.Fail(t, "response did not echo the request payload",
		"expected fields %s, got %s", expectedJSON, actualJSON)
}
