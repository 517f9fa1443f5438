package client

import (
	"fmt"
	"net/http"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is a read-only view of an HTTP response from the API.
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Elapsed    time.Duration

	// Body is the parsed JSON body: an object or an array for the users API. It is a null
	// value if the body was empty or was not valid JSON; RawBody always has the bytes.
	Body ldvalue.Value

	RawBody []byte
}

func newResponse(method, url string, status int, header http.Header, data []byte, elapsed time.Duration) *Response {
	r := &Response{
		Method:     method,
		URL:        url,
		StatusCode: status,
		Header:     header,
		Elapsed:    elapsed,
		RawBody:    data,
		Body:       ldvalue.Null(),
	}
	if len(data) > 0 {
		var v ldvalue.Value
		if err := v.UnmarshalJSON(data); err == nil {
			r.Body = v
		}
	}
	return r
}

// JSON reports whether the body was parsed as JSON.
func (r *Response) JSON() bool {
	return !r.Body.IsNull() || string(r.RawBody) == "null"
}

// Field returns a top-level property of an object body, or a null value if the body is not an
// object or has no such property.
func (r *Response) Field(name string) ldvalue.Value {
	return r.Body.GetByKey(name)
}

// Items returns the elements of an array body. It returns nil if the body is not an array.
func (r *Response) Items() []ldvalue.Value {
	if r.Body.Type() != ldvalue.ArrayType {
		return nil
	}
	ret := make([]ldvalue.Value, 0, r.Body.Count())
	for i := 0; i < r.Body.Count(); i++ {
		ret = append(ret, r.Body.GetByIndex(i))
	}
	return ret
}

// BodyString returns the body as text, shortened if it is very long, for debug output.
func (r *Response) BodyString() string {
	const maxLength = 500
	if len(r.RawBody) > maxLength {
		return fmt.Sprintf("%s... (%d bytes)", string(r.RawBody[:maxLength]), len(r.RawBody))
	}
	return string(r.RawBody)
}

func (r *Response) String() string {
	return fmt.Sprintf("%s %s -> %d", r.Method, r.URL, r.StatusCode)
}
