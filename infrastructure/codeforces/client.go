package codeforces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cfpredict/failure"
	valueobject "cfpredict/value_object"
)

var METHOD_USER_INFO = `user.info`
var METHOD_CONTEST_STANDINGS = `contest.standings`

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a client for the API rooted at baseURL. A zero timeout
// leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Get calls method and decodes the result payload into out. The body is
// decoded whatever the HTTP status is, since the API reports failures
// through the envelope status field.
func (c *Client) Get(ctx context.Context, method string, params url.Values, out interface{}) error {
	u := c.BaseURL + "/" + method
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return failure.Wrap(method, err, "unable to build request")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return failure.Wrap(method, err, "request failed")
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure.Wrap(method, err, "unable to read response")
	}
	var env valueobject.Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return failure.Wrap(method, err, fmt.Sprintf("HTTP %d: malformed response", resp.StatusCode))
	}
	if !env.OK() {
		return failure.Status(method, env.Status, env.Comment)
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return failure.Wrap(method, err, "unable to decode result")
	}
	return nil
}
