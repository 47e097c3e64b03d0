package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Client struct {
	client *http.Client
	url    string
}

// NewClient creates an HTTP client with a cookie jar for session-based tests.
func NewClient(url string) (*Client, error) {
	jar, err := newUnsafeCookieJar()
	if err != nil {
		return nil, fmt.Errorf("create unsafe cookie jar: %w", err)
	}
	return &Client{
		client: &http.Client{Jar: jar},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return fmt.Errorf("close response body: %w", err)
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
		return nil, fmt.Errorf("create request with context: %w", err)
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// GetDoc fetches a URL and returns a goquery document.
func (c *Client) GetDoc(ctx context.Context, urlPath string) (*goquery.Document, error) {
	var (
		err  error
		resp *http.Response
		doc  *goquery.Document
	)
	if resp, err = c.Get(ctx, urlPath); err != nil {
		return nil, fmt.Errorf("client get: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if http.StatusOK != resp.StatusCode {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, fmt.Errorf("create document from reader: %w", err)
	}
	return doc, nil
}

// PostJSON marshals body and posts it to urlPath. The caller is responsible
// for closing the response body.
func (c *Client) PostJSON(ctx context.Context, urlPath string, body any) (*http.Response, error) {
	var (
		err     error
		payload []byte
	)
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
	}
	var req *http.Request
	if req, err = c.newRequestWithContext(ctx, http.MethodPost, urlPath, bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("create request with context: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// CrossOriginProtection trusts requests that carry browser fetch metadata.
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	var resp *http.Response
	if resp, err = c.client.Do(req); err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// DecodeJSON posts to urlPath and decodes the response body into out when the
// status matches wantStatus.
func (c *Client) DecodeJSON(ctx context.Context, urlPath string, body any, wantStatus int, out any) error {
	resp, err := c.PostJSON(ctx, urlPath, body)
	if err != nil {
		return fmt.Errorf("post json: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != wantStatus {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d (want %d): %s", resp.StatusCode, wantStatus, payload)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// GetJSON fetches urlPath and decodes the response body into out when the
// status matches wantStatus.
func (c *Client) GetJSON(ctx context.Context, urlPath string, wantStatus int, out any) error {
	resp, err := c.Get(ctx, urlPath)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != wantStatus {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d (want %d): %s", resp.StatusCode, wantStatus, payload)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Delete issues a DELETE to urlPath and checks the response status.
func (c *Client) Delete(ctx context.Context, urlPath string, wantStatus int) error {
	req, err := c.newRequestWithContext(ctx, http.MethodDelete, urlPath, nil)
	if err != nil {
		return fmt.Errorf("create request with context: %w", err)
	}
	// CrossOriginProtection trusts requests that carry browser fetch metadata.
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != wantStatus {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d (want %d): %s", resp.StatusCode, wantStatus, payload)
	}
	return nil
}

// Login authenticates with the passcode and returns the front page document.
func (c *Client) Login(ctx context.Context, passcode string) (*goquery.Document, error) {
	if err := c.DecodeJSON(ctx, "/api/login", map[string]string{"passcode": passcode}, http.StatusOK, nil); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	doc, err := c.GetDoc(ctx, "/")
	if err != nil {
		return nil, fmt.Errorf("get document after login: %w", err)
	}
	return doc, nil
}

// newRequestWithContext creates a new HTTP request to the server that respects the given context.
func (c *Client) newRequestWithContext(
	ctx context.Context,
	method, urlPath string,
	body io.Reader,
) (*http.Request, error) {
	var (
		req *http.Request
		err error
	)
	if req, err = http.NewRequest(method, c.url+urlPath, body); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req.WithContext(ctx), nil
}

// SubmitForm submits a form in the doc identified with action formActionUrlPath and returns the response document.
// formFields is a map of label text to value. The function will find the input by label and set its value.
func (c *Client) SubmitForm(
	ctx context.Context,
	doc *goquery.Document,
	formActionURLPath string,
	formFields map[string]string,
) (*goquery.Document, error) {
	form, err := FindForm(doc, formActionURLPath)
	if err != nil {
		return nil, fmt.Errorf("find form: %w", err)
	}

	// Find form inputs based on their labels
	formData := neturl.Values{}
	for labelText, value := range formFields {
		var input *goquery.Selection
		if input, err = FindInputForLabel(form, labelText); err != nil {
			return nil, fmt.Errorf("find input for label: %w", err)
		}

		name, exists := input.Attr("name")
		if !exists {
			return nil, fmt.Errorf("input has no name attribute (label: %s, form_action: %s)",
				labelText, formActionURLPath)
		}

		formData.Add(name, value)
	}

	// Submit the form
	data := strings.NewReader(formData.Encode())
	req, err := c.newRequestWithContext(ctx, http.MethodPost, formActionURLPath, data)
	if err != nil {
		return nil, fmt.Errorf("new request with context: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Sec-Fetch-Site", "same-origin")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if http.StatusOK != resp.StatusCode {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// Parse the response
	newDoc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("create document from reader: %w", err)
	}
	newDoc.Url = resp.Request.URL
	return newDoc, nil
}
