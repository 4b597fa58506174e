package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avasiljevs/linkstorage/internal/logging"
	"github.com/avasiljevs/linkstorage/internal/models"
	"github.com/google/uuid"
)

// basePath is prefixed to every endpoint path.
const basePath = "/api/v1"

// DefaultTimeout bounds every request end to end.
const DefaultTimeout = 10 * time.Second

// envelope is the uniform response wrapper of the backend.
type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

// HTTPClient is the concrete Client over HTTP/JSON.
//
// On every request it attaches a bearer access token (when the TokenSource
// has one), a generated X-Request-Id, and a Content-Type of application/json.
// Responses whose Content-Type indicates markup are rewritten into an
// *Error of TypeInvalidResponse so callers never have to parse HTML.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration, log logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// do performs one request/response cycle. body (when non-nil) is JSON-encoded;
// on success the envelope result is decoded into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+basePath+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		c.log.Warn(ctx, "reading access token", "error", err)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "api request", "id", reqID, "method", method, "path", basePath+path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "api transport error", "id", reqID, "error", err)
		return fmt.Errorf("%s %s: %w: %w", method, basePath+path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api response", "id", reqID, "status", resp.StatusCode)

	// A proxy answering with an HTML error page must not leak to callers.
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "text/html") {
		c.log.Error(ctx, "server returned markup instead of JSON", "id", reqID, "status", resp.StatusCode)
		return &Error{Type: TypeInvalidResponse, Message: MsgInvalidResponse}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &Error{Type: TypeInvalidResponse, Message: MsgInvalidResponse}
	}

	if !env.Success {
		if env.Error != nil {
			return env.Error
		}
		return &Error{Type: "UNKNOWN", Message: http.StatusText(resp.StatusCode)}
	}

	if out != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return fmt.Errorf("decoding result: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", req, nil)
}

func (c *HTTPClient) Activate(ctx context.Context, token string, code string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/auth/activate/"+url.PathEscape(token), models.ActivateRequest{Code: code}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) RefreshToken(ctx context.Context, refreshToken string) (*models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/refresh-token", models.RefreshRequest{RefreshToken: refreshToken}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *HTTPClient) CreateGroup(ctx context.Context, req models.LinkGroupCreate) (*models.LinkGroup, error) {
	var group models.LinkGroup
	if err := c.do(ctx, http.MethodPost, "/link-groups", req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *HTTPClient) UpdateGroup(ctx context.Context, req models.LinkGroupUpdate) (*models.LinkGroup, error) {
	var group models.LinkGroup
	if err := c.do(ctx, http.MethodPut, "/link-groups/"+strconv.Itoa(req.ID), req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *HTTPClient) DeleteGroup(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/link-groups/"+strconv.Itoa(id), nil, nil)
}

func (c *HTTPClient) ListGroups(ctx context.Context, params models.ListParams) (*models.LinkGroupList, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(params.PageSize))
	}
	if params.Name != "" {
		query.Set("name", params.Name)
	}

	path := "/link-groups"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var list models.LinkGroupList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	if list.Data == nil {
		list.Data = []models.LinkGroup{}
	}
	return &list, nil
}

func (c *HTTPClient) GetGroup(ctx context.Context, id int) (*models.LinkGroup, error) {
	var group models.LinkGroup
	if err := c.do(ctx, http.MethodGet, "/link-groups/"+strconv.Itoa(id), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}
