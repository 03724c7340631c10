package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/drezzle/drezzle-cli/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the Drezzle backend. The bearer token
// is held on the client and attached to every request while set.
//
// The token and client id are guarded by a lock: the connectivity watcher
// pings from its own goroutine while the REPL signs in and out.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu       sync.RWMutex
	token    string
	clientID string
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// SetClientID attaches an installation identifier to outgoing requests.
func (c *HTTPClient) SetClientID(id string) {
	c.mu.Lock()
	c.clientID = id
	c.mu.Unlock()
}

func (c *HTTPClient) credentials() (token, clientID string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.clientID
}

// errorBody matches the two failure shapes the backend produces.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// do performs one request. A transport-level failure wraps ErrUnavailable;
// a non-2xx response becomes an *APIError carrying the backend's text.
// When out is non-nil the success body is decoded into it.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, clientID := c.credentials()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if clientID != "" {
		req.Header.Set("X-Client-Id", clientID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		msg := eb.Detail
		if msg == "" {
			msg = eb.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, username string, role models.Role) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"username": username,
		"role":     string(role),
	}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func pageQuery(skip, limit int) string {
	if skip <= 0 && limit <= 0 {
		return ""
	}
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", fmt.Sprint(skip))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	return "?" + q.Encode()
}

func (c *HTTPClient) ListContents(ctx context.Context, skip, limit int) ([]models.Content, error) {
	var contents []models.Content
	if err := c.do(ctx, http.MethodGet, "/api/contents"+pageQuery(skip, limit), nil, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (c *HTTPClient) CreateContent(ctx context.Context, req CreateContentRequest) (*models.Content, error) {
	var content models.Content
	if err := c.do(ctx, http.MethodPost, "/api/contents", req, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *HTTPClient) ToggleLike(ctx context.Context, contentID string) (bool, error) {
	var resp struct {
		Liked bool `json:"liked"`
	}
	path := fmt.Sprintf("/api/contents/%s/like", url.PathEscape(contentID))
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Liked, nil
}

func (c *HTTPClient) ToggleSave(ctx context.Context, contentID string) (bool, error) {
	var resp struct {
		Saved bool `json:"saved"`
	}
	path := fmt.Sprintf("/api/contents/%s/save", url.PathEscape(contentID))
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Saved, nil
}

func (c *HTTPClient) ListSaved(ctx context.Context) ([]models.Content, error) {
	var contents []models.Content
	if err := c.do(ctx, http.MethodGet, "/api/saved-contents", nil, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (c *HTTPClient) ListComments(ctx context.Context, contentID string, skip, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	path := fmt.Sprintf("/api/contents/%s/comments", url.PathEscape(contentID))
	if err := c.do(ctx, http.MethodGet, path+pageQuery(skip, limit), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) PostComment(ctx context.Context, contentID, text string) (*models.Comment, error) {
	var comment models.Comment
	path := fmt.Sprintf("/api/contents/%s/comments", url.PathEscape(contentID))
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"text": text}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *HTTPClient) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) PendingVerifications(ctx context.Context) (*models.PendingVerifications, error) {
	var pending models.PendingVerifications
	if err := c.do(ctx, http.MethodGet, "/api/admin/pending-verifications", nil, &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

// decisionBody omits reason entirely on approvals.
type decisionBody struct {
	Decision models.Decision `json:"decision"`
	Reason   string          `json:"reason,omitempty"`
}

func (c *HTTPClient) verify(ctx context.Context, path string, decision models.Decision, reason string) (string, error) {
	if decision != models.DecisionReject {
		reason = ""
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, path, decisionBody{Decision: decision, Reason: reason}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) VerifyExpert(ctx context.Context, requestID string, decision models.Decision, reason string) (string, error) {
	return c.verify(ctx, "/api/admin/verify-expert/"+url.PathEscape(requestID), decision, reason)
}

func (c *HTTPClient) VerifyLabel(ctx context.Context, requestID string, decision models.Decision, reason string) (string, error) {
	return c.verify(ctx, "/api/admin/verify-label/"+url.PathEscape(requestID), decision, reason)
}

func (c *HTTPClient) CreateBadgeRequest(ctx context.Context, reason string) error {
	return c.do(ctx, http.MethodPost, "/api/badge-requests", map[string]string{"reason": reason}, nil)
}

func (c *HTTPClient) CreateLabelRequest(ctx context.Context, labelName, description string) error {
	body := map[string]string{"label_name": labelName, "description": description}
	return c.do(ctx, http.MethodPost, "/api/label-requests", body, nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}
