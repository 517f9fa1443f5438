package client

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const reachabilityPollInterval = time.Millisecond * 500

// AwaitReachable polls the base URL until the API answers with any HTTP response or the timeout
// passes. It is meant for the runner's startup check, so that a missing network shows up as one
// clear message instead of a failure in every test. Tests themselves never call it.
func (c *Client) AwaitReachable(timeout time.Duration, output io.Writer) error {
	if output == nil {
		output = io.Discard
	}
	fmt.Fprintf(output, "Connecting to API at %s", c.baseURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		req, err := http.NewRequest(http.MethodGet, c.baseURL.String(), nil)
		if err != nil {
			fmt.Fprintln(output)
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err == nil {
			resp.Body.Close()
			fmt.Fprintln(output)
			fmt.Fprintf(output, "API responded with status %d\n", resp.StatusCode)
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("%w: timed out, result of last query was: %s", ErrTransport, err)
		}
		time.Sleep(reachabilityPollInterval)
	}
}
