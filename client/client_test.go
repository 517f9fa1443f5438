package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesBaseURL(t *testing.T) {
	c, err := New("https://jsonplaceholder.typicode.com")
	require.NoError(t, err)
	assert.Equal(t, "https://jsonplaceholder.typicode.com/", c.BaseURL())

	c, err = New("http://localhost:8080/api?x=1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/", c.BaseURL())
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	for _, u := range []string{"", "users", "ftp://example.com/", "http://", "://bad"} {
		t.Run(u, func(t *testing.T) {
			_, err := New(u)
			assert.True(t, errors.Is(err, ErrInvalidBaseURL), "error was: %v", err)
		})
	}
}

func TestURLResolvesRelativePaths(t *testing.T) {
	c, err := New("http://localhost:8080/api/")
	require.NoError(t, err)

	for path, expected := range map[string]string{
		"users":   "http://localhost:8080/api/users",
		"/users":  "http://localhost:8080/api/users",
		"users/2": "http://localhost:8080/api/users/2",
		"":        "http://localhost:8080/api/",
	} {
		actual, err := c.URL(path)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, "path %q", path)
	}

	_, err = c.URL("http://elsewhere.example.com/users")
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	users := []interface{}{
		map[string]interface{}{"id": 1, "name": "Leanne Graham"},
		map[string]interface{}{"id": 2, "name": "Ervin Howell"},
	}
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithJSONResponse(users, nil))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c, err := New(server.URL)
		require.NoError(t, err)
		defer c.Close()

		resp, err := c.Get("users")
		require.NoError(t, err)

		r := <-requestsCh
		assert.Equal(t, "GET", r.Request.Method)
		assert.Equal(t, "/users", r.Request.URL.Path)
		assert.Len(t, r.Body, 0)

		assert.Equal(t, 200, resp.StatusCode)
		assert.True(t, resp.JSON())
		items := resp.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "Ervin Howell", items[1].GetByKey("name").StringValue())
		assert.True(t, resp.Field("name").IsNull())
	})
}

func TestRequestsWithPayload(t *testing.T) {
	payload := map[string]interface{}{"name": "Kiran Kumar", "email": "0a1b2c3d@gmail.com"}

	for _, method := range []string{"POST", "PUT"} {
		t.Run(method, func(t *testing.T) {
			handler, requestsCh := httphelpers.RecordingHandler(
				httphelpers.HandlerWithResponse(201, nil, []byte(`{"name":"Kiran Kumar","id":11}`)))
			httphelpers.WithServer(handler, func(server *httptest.Server) {
				c, err := New(server.URL)
				require.NoError(t, err)

				var resp *Response
				if method == "POST" {
					resp, err = c.Post("users", payload)
				} else {
					resp, err = c.Put("users/2", payload)
				}
				require.NoError(t, err)

				r := <-requestsCh
				assert.Equal(t, method, r.Request.Method)
				assert.Equal(t, jsonContentType, r.Request.Header.Get("Content-Type"))
				var sent map[string]interface{}
				require.NoError(t, json.Unmarshal(r.Body, &sent))
				assert.Equal(t, payload, sent)

				assert.Equal(t, 201, resp.StatusCode)
				assert.Equal(t, "Kiran Kumar", resp.Field("name").StringValue())
				assert.Equal(t, 11, resp.Field("id").IntValue())
			})
		})
	}
}

func TestDelete(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithResponse(200, nil, []byte(`{}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c, err := New(server.URL)
		require.NoError(t, err)

		resp, err := c.Delete("users/1")
		require.NoError(t, err)

		r := <-requestsCh
		assert.Equal(t, "DELETE", r.Request.Method)
		assert.Equal(t, "/users/1", r.Request.URL.Path)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, ldvalue.ObjectType, resp.Body.Type())
		assert.Equal(t, 0, resp.Body.Count())
	})
}

func TestErrorStatusIsNotAnError(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(404, nil, []byte(`{}`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c, err := New(server.URL)
		require.NoError(t, err)

		resp, err := c.Get("users/999")
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestNonJSONBody(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(502, nil, []byte(`<html>bad gateway</html>`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c, err := New(server.URL)
		require.NoError(t, err)

		resp, err := c.Get("users")
		require.NoError(t, err)
		assert.False(t, resp.JSON())
		assert.True(t, resp.Body.IsNull())
		assert.Equal(t, "<html>bad gateway</html>", string(resp.RawBody))
		assert.Nil(t, resp.Items())
	})
}

func TestTransportErrorIsReturnedWithoutRetry(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://api.example.com/users",
		httpmock.NewErrorResponder(errors.New("no such host")))

	c, err := New("https://api.example.com/", WithHTTPClient(&http.Client{Transport: transport}))
	require.NoError(t, err)

	_, err = c.Get("users")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Contains(t, err.Error(), "GET https://api.example.com/users")
	assert.Contains(t, err.Error(), "no such host")
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestBrokenConnectionIsTransportError(t *testing.T) {
	httphelpers.WithServer(httphelpers.BrokenConnectionHandler(), func(server *httptest.Server) {
		c, err := New(server.URL)
		require.NoError(t, err)

		_, err = c.Delete("users/1")
		assert.True(t, errors.Is(err, ErrTransport), "error was: %v", err)
	})
}

func TestUnserializablePayloadFailsBeforeRequest(t *testing.T) {
	transport := httpmock.NewMockTransport()
	c, err := New("https://api.example.com/", WithHTTPClient(&http.Client{Transport: transport}))
	require.NoError(t, err)

	_, err = c.Post("users", map[string]interface{}{"bad": make(chan int)})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTransport))
	assert.Equal(t, 0, transport.GetTotalCallCount())
}

func TestTimeoutOptionDoesNotModifySuppliedClient(t *testing.T) {
	shared := &http.Client{}
	c, err := New("https://api.example.com/", WithHTTPClient(shared), WithTimeout(time.Second))
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), shared.Timeout)
	assert.Equal(t, time.Second, c.httpClient.Timeout)
}

func TestLoggerReceivesRequestAndResponse(t *testing.T) {
	var logged []string
	logger := loggerFunc(func(format string, args ...interface{}) {
		logged = append(logged, format)
	})
	handler := httphelpers.HandlerWithResponse(200, nil, []byte(`[]`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c, err := New(server.URL, WithLogger(logger))
		require.NoError(t, err)
		_, err = c.Get("users")
		require.NoError(t, err)
	})
	assert.Len(t, logged, 2)
}

type loggerFunc func(format string, args ...interface{})

func (f loggerFunc) Printf(format string, args ...interface{}) { f(format, args...) }

func TestAwaitReachable(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(404))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c, err := New(server.URL + "/api")
		require.NoError(t, err)

		var out testWriter
		require.NoError(t, c.AwaitReachable(time.Second, &out))
		assert.Contains(t, string(out), "API responded with status 404")

		r := <-requestsCh
		assert.Equal(t, "GET", r.Request.Method)
		assert.Equal(t, "/api/", r.Request.URL.Path)
	})
}

func TestAwaitReachableTimesOut(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterNoResponder(httpmock.NewErrorResponder(errors.New("connection refused")))
	c, err := New("https://api.example.com/", WithHTTPClient(&http.Client{Transport: transport}))
	require.NoError(t, err)

	var out testWriter
	err = c.AwaitReachable(0, &out)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Contains(t, err.Error(), "connection refused")
}

type testWriter []byte

func (w *testWriter) Write(p []byte) (int, error) {
	*w = append(*w, p...)
	return len(p), nil
}
