package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
	"github.com/dmitrijs2005/snipshare/internal/common"
)

// KeySource yields the API key to attach to outbound requests, or "" when
// none is cached. The session store provides this; the transport never
// stores credentials itself.
type KeySource func() string

// HTTPClient talks JSON over HTTP to a snipserve server. The cookie jar
// carries the session cookie between calls, so cookie-session transport
// works even when no API key is cached yet.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	keyFn   KeySource
}

func NewHTTPClient(baseURL string, timeout time.Duration, keyFn KeySource) (*HTTPClient, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	if keyFn == nil {
		keyFn = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
		keyFn:   keyFn,
	}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// doJSON performs one request/response exchange. A non-nil in is marshalled
// as the JSON body; a non-nil out receives the decoded 2xx response body.
// Non-2xx responses become *APIError with the server's {"error": ...}
// message verbatim. Transport and decode failures wrap ErrUnavailable.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key := c.keyFn(); key != "" {
		req.Header.Set(common.APIKeyHeaderName, key)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
		}
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(data, &payload)
	return &APIError{Status: resp.StatusCode, Message: payload.Error}
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/test", nil, nil)
}

func (c *HTTPClient) WhoAmI(ctx context.Context) (*models.Identity, error) {
	var ident models.Identity
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/me", nil, &ident); err != nil {
		return nil, err
	}
	return &ident, nil
}

func (c *HTTPClient) CurrentAPIKey(ctx context.Context) (string, error) {
	var resp struct {
		APIKey string `json:"api_key"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/api-key", nil, &resp); err != nil {
		return "", err
	}
	return resp.APIKey, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	req := map[string]string{"username": username, "password": password}
	var resp struct {
		APIKey string `json:"api_key"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/user/login", req, &resp); err != nil {
		return "", err
	}
	return resp.APIKey, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, password, inviteCode string) (string, error) {
	req := map[string]string{
		"username":    username,
		"password":    password,
		"invite_code": inviteCode,
	}
	var resp struct {
		APIKey string `json:"api_key"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/user/register", req, &resp); err != nil {
		return "", err
	}
	return resp.APIKey, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/user/logout", nil, nil)
}

func (c *HTTPClient) RegenerateAPIKey(ctx context.Context) (string, error) {
	var resp struct {
		APIKey string `json:"api_key"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/user/api-key/regenerate", nil, &resp); err != nil {
		return "", err
	}
	return resp.APIKey, nil
}

func (c *HTTPClient) CreatePaste(ctx context.Context, req *models.PasteRequest) (*models.Paste, error) {
	var paste models.Paste
	if err := c.doJSON(ctx, http.MethodPost, "/api/pastes/create", req, &paste); err != nil {
		return nil, err
	}
	return &paste, nil
}

func (c *HTTPClient) GetPaste(ctx context.Context, id string) (*models.Paste, error) {
	var paste models.Paste
	if err := c.doJSON(ctx, http.MethodGet, "/api/pastes/"+url.PathEscape(id), nil, &paste); err != nil {
		return nil, err
	}
	return &paste, nil
}

func (c *HTTPClient) UpdatePaste(ctx context.Context, id string, req *models.PasteRequest) (*models.Paste, error) {
	var paste models.Paste
	if err := c.doJSON(ctx, http.MethodPut, "/api/pastes/"+url.PathEscape(id), req, &paste); err != nil {
		return nil, err
	}
	return &paste, nil
}

func (c *HTTPClient) DeletePaste(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/pastes/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) MyPastes(ctx context.Context) ([]*models.Paste, error) {
	var pastes []*models.Paste
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/my-pastes", nil, &pastes); err != nil {
		return nil, err
	}
	return pastes, nil
}

// IncrementViews records one view and returns the updated count. The
// endpoint is deliberately unauthenticated server-side; the client still
// sends whatever credentials it has, which the server is free to ignore.
func (c *HTTPClient) IncrementViews(ctx context.Context, id string) (int64, error) {
	var resp struct {
		ViewCount int64 `json:"view_count"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/pastes/"+url.PathEscape(id)+"/views", nil, &resp); err != nil {
		return 0, err
	}
	return resp.ViewCount, nil
}
