package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apitesting/users-api-tests/framework"
)

var (
	// ErrInvalidBaseURL is returned by New if the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base URL")

	// ErrTransport wraps any failure to get an HTTP response at all: DNS errors, refused
	// connections, timeouts, or a body that could not be read.
	ErrTransport = errors.New("transport error")
)

const jsonContentType = "application/json; charset=UTF-8"

// Client issues requests to the users API. All paths are relative to a fixed base URL.
//
// A Client never interprets the response status: a 404 or 500 is returned to the caller like
// any other response, and only failures to get a response at all are returned as errors. It
// does not retry.
//
// A Client is not modified after New returns, so the same instance can be shared by every test
// in a module.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	logger     framework.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the Client send requests through the given *http.Client instead of a
// new one.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets an overall timeout for each request. Zero means no timeout other than
// whatever the transport imposes, which is the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets a logger for a one-line description of every request and response.
func WithLogger(logger framework.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = framework.NullLogger()
		}
		c.logger = logger
	}
}

// New creates a Client for the API at baseURL, such as "https://jsonplaceholder.typicode.com/".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrInvalidBaseURL, baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w %q: must be an absolute http or https URL", ErrInvalidBaseURL, baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		logger:     framework.NullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		httpClient := *c.httpClient
		httpClient.Timeout = c.timeout
		c.httpClient = &httpClient
	}
	return c, nil
}

// BaseURL returns the normalized base URL, always ending in a slash.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get fetches the resource at path.
func (c *Client) Get(path string) (*Response, error) {
	return c.Do(http.MethodGet, path, nil)
}

// Post creates a resource by sending payload, serialized as JSON, to path.
func (c *Client) Post(path string, payload interface{}) (*Response, error) {
	return c.Do(http.MethodPost, path, payload)
}

// Put replaces the resource at path with payload, serialized as JSON.
func (c *Client) Put(path string, payload interface{}) (*Response, error) {
	return c.Do(http.MethodPut, path, payload)
}

// Delete removes the resource at path.
func (c *Client) Delete(path string) (*Response, error) {
	return c.Do(http.MethodDelete, path, nil)
}

// Do sends a request with the given method to path. If payload is non-nil, it is serialized
// with json.Marshal and sent as the request body.
func (c *Client) Do(method, path string, payload interface{}) (*Response, error) {
	target, err := c.resolve(path)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	var data []byte
	if payload != nil {
		data, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("could not serialize request body for %s %s: %w", method, target, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", jsonContentType)
		c.logger.Printf("%s %s %s", method, target, string(data))
	} else {
		c.logger.Printf("%s %s", method, target)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %s", ErrTransport, method, target, err)
	}
	defer resp.Body.Close()
	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response to %s %s: %s", ErrTransport, method, target, err)
	}

	r := newResponse(method, target, resp.StatusCode, resp.Header, respData, time.Since(startTime))
	c.logger.Printf("%s %s -> %d in %s: %s", method, target, r.StatusCode, r.Elapsed, r.BodyString())
	return r, nil
}

// URL returns the absolute URL that a request for path would be sent to.
func (c *Client) URL(path string) (string, error) {
	return c.resolve(path)
}

func (c *Client) resolve(path string) (string, error) {
	rel, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", path, err)
	}
	if rel.IsAbs() || rel.Host != "" {
		return "", fmt.Errorf("request path %q must be relative to %s", path, c.baseURL)
	}
	return c.baseURL.ResolveReference(rel).String(), nil
}

// Close releases any idle connections held by the underlying transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
