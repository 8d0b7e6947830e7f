package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"realty/internal/config"
	"realty/internal/model"
)

// HTTPClient matches net/http.Client Do signature for testability
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the listings API. It keeps no state between calls:
// no cache, no coalescing and no retries.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	debug      bool

	Properties  *Resource[model.Listing]
	Agents      *Resource[model.Agent]
	Inquiries   InquiryClient
	Users       UserClient
	Aggregation *AggregationClient
}

// InquiryClient is the inquiries family: no delete
type InquiryClient interface {
	Lister[model.Inquiry]
	Getter[model.Inquiry]
	Creator[model.Inquiry]
	Updater[model.Inquiry]
}

// UserClient is the users family: list and create only
type UserClient interface {
	Lister[model.User]
	Creator[model.User]
}

// New creates an API client. A nil httpClient gets a default one using the
// configured timeout.
func New(cfg *config.APIConfig, httpClient HTTPClient) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		debug:      cfg.Debug,
	}
	c.Properties = newResource[model.Listing](c, "properties")
	c.Agents = newResource[model.Agent](c, "agents")
	c.Inquiries = newResource[model.Inquiry](c, "inquiries")
	c.Users = newResource[model.User](c, "users")
	c.Aggregation = &AggregationClient{c: c}
	return c
}

// InitDB asks the server to create its indexes and seed sample data
func (c *Client) InitDB(ctx context.Context) (*Acknowledgement, error) {
	var ack Acknowledgement
	status, err := c.do(ctx, http.MethodPost, "/init-db", nil, nil, &ack)
	if err != nil {
		return nil, err
	}
	ack.StatusCode = status
	return &ack, nil
}

// do performs one request. body, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded response. Non-2xx statuses come back as
// *HTTPStatusError with the status preserved.
func (c *Client) do(ctx context.Context, method, path string, query Query, body, out any) (int, error) {
	url := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		url += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &NetworkError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &NetworkError{Method: method, URL: url, Err: err}
	}

	if c.debug {
		log.Printf("[DEBUG] %s %s -> %d (%s, %d bytes)", method, url, resp.StatusCode, time.Since(start).Round(time.Millisecond), len(respBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &HTTPStatusError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
			Body:       respBody,
		}
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	// acknowledgements may come back with an empty body
	if _, ok := out.(*Acknowledgement); ok && len(bytes.TrimSpace(respBody)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return resp.StatusCode, &DecodeError{URL: url, Err: err}
	}
	return resp.StatusCode, nil
}

// errorMessage extracts {"error": "..."} from an error body, if present
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
