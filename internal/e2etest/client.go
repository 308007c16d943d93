package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// Client drives the JSON API with a persistent cookie jar, so sessions
// behave like they do for a real device.
type Client struct {
	client *http.Client
	url    string
	token  string
}

// unsafeCookieJar strips the Secure flag before storing cookies so that
// session cookies survive plain-HTTP test servers.
type unsafeCookieJar struct {
	jar http.CookieJar
}

func (j *unsafeCookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	for _, cookie := range cookies {
		cookie.Secure = false
	}
	j.jar.SetCookies(u, cookies)
}

func (j *unsafeCookieJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

// NewClient creates an API client against the given base URL.
func NewClient(serverURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		client: &http.Client{Jar: &unsafeCookieJar{jar: jar}},
		url:    serverURL,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+urlPath, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if resp, doErr := c.client.Do(req); doErr == nil {
			statusOK := resp.StatusCode == http.StatusOK
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
			if statusOK {
				return nil
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

// JSON sends a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil. It returns the response status
// code.
func (c *Client) JSON(ctx context.Context, method, urlPath string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, reader)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return resp.StatusCode, fmt.Errorf("decode response body: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// Get decodes a JSON GET response into out and fails on non-200 statuses.
func (c *Client) Get(ctx context.Context, urlPath string, out any) error {
	status, err := c.JSON(ctx, http.MethodGet, urlPath, nil, out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", urlPath, status)
	}
	return nil
}

// Register creates a fresh account and remembers its recovery token for
// later Login calls. Returns the new user ID.
func (c *Client) Register(ctx context.Context) (string, error) {
	var resp struct {
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}
	status, err := c.JSON(ctx, http.MethodPost, "/api/register", nil, &resp)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	if status != http.StatusCreated {
		return "", fmt.Errorf("register: unexpected status %d", status)
	}
	c.token = resp.Token
	return resp.UserID, nil
}

// Login signs back into the account created by Register.
func (c *Client) Login(ctx context.Context) (string, error) {
	if c.token == "" {
		return "", errors.New("login: no recovery token, call Register first")
	}
	var resp struct {
		UserID string `json:"userId"`
	}
	status, err := c.JSON(ctx, http.MethodPost, "/api/login", map[string]string{"token": c.token}, &resp)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("login: unexpected status %d", status)
	}
	return resp.UserID, nil
}

// Logout destroys the session.
func (c *Client) Logout(ctx context.Context) error {
	status, err := c.JSON(ctx, http.MethodPost, "/api/logout", nil, nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("logout: unexpected status %d", status)
	}
	return nil
}
