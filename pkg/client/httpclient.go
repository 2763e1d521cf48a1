package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type HttpClient struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
}

func NewHttpClient(baseURL string) *HttpClient {
	return &HttpClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithBasicAuth sets credentials attached to every request, as required by
// Twilio-style message APIs.
func (c *HttpClient) WithBasicAuth(username, password string) *HttpClient {
	c.Username = username
	c.Password = password
	return c
}

type Response struct {
	*http.Response
	Body []byte
}

func (r *Response) DecodeJSON(target any) error {
	return json.Unmarshal(r.Body, target)
}

func (c *HttpClient) GET(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

func (c *HttpClient) POST(ctx context.Context, path string, body any) (*Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewBuffer(jsonData), "application/json")
}

// POSTForm sends an application/x-www-form-urlencoded request.
func (c *HttpClient) POSTForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (c *HttpClient) do(ctx context.Context, method, path string, reqBody io.Reader, contentType string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		Response: resp,
		Body:     respBody,
	}, nil
}
