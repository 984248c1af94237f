package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/resumerag/internal/client/models"
	"github.com/dmitrijs2005/resumerag/internal/common"
	"github.com/dmitrijs2005/resumerag/internal/logging"
	"github.com/dmitrijs2005/resumerag/internal/netx"
)

// HTTPClient talks to the backend over HTTP(S) with JSON bodies.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		h.httpClient = c
	}
}

// WithTimeout sets the timeout of the underlying *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) {
		h.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) {
		h.logger = l
	}
}

// NewHTTPClient returns a client for the backend at baseURL
// (e.g. "https://resumeragbackend.onrender.com").
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	c := &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authBody struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type uploadBody struct {
	Message string `json:"message"`
}

type searchBody struct {
	Query string `json:"query"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	return c.authenticate(ctx, "Login", PathLogin, creds)
}

func (c *HTTPClient) Signup(ctx context.Context, creds Credentials) (*AuthResult, error) {
	return c.authenticate(ctx, "Signup", PathSignup, creds)
}

func (c *HTTPClient) authenticate(ctx context.Context, op, path string, creds Credentials) (*AuthResult, error) {
	payload, err := json.Marshal(credentialsBody{Email: creds.Email, Password: string(creds.Password)})
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", op, err)
	}

	var out authBody
	if err := c.do(ctx, op, path, "", "application/json", bytes.NewReader(payload), &out); err != nil {
		return nil, err
	}
	if out.Token == "" || out.User == nil {
		return nil, fmt.Errorf("%s: %w: token or user missing", op, ErrUnexpectedResponse)
	}

	return &AuthResult{Token: out.Token, User: *out.User}, nil
}

// Upload sends r as the multipart "resume" field and returns the server's message.
func (c *HTTPClient) Upload(ctx context.Context, token, filename string, r io.Reader) (string, error) {
	body, contentType, err := netx.MultipartFile(UploadField, filename, "application/pdf", r)
	if err != nil {
		return "", fmt.Errorf("Upload: %w", err)
	}

	var out uploadBody
	if err := c.do(ctx, "Upload", PathUpload, token, contentType, body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Search returns the results for query in server order. A JSON null body is
// treated as no results.
func (c *HTTPClient) Search(ctx context.Context, token, query string) ([]models.Result, error) {
	payload, err := json.Marshal(searchBody{Query: query})
	if err != nil {
		return nil, fmt.Errorf("Search: encode request: %w", err)
	}

	var out []models.Result
	if err := c.do(ctx, "Search", PathSearch, token, "application/json", bytes.NewReader(payload), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Result{}
	}
	return out, nil
}

// do POSTs body to path and decodes a 2xx JSON response into out.
// Transport failures wrap ErrUnavailable, non-2xx responses become *APIError.
func (c *HTTPClient) do(ctx context.Context, op, path, token, contentType string, body io.Reader, out any) error {
	fullURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("%s: build url: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	log := c.logger.With("op", op, "request_id", requestID)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err.Error())
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "read response failed", "status", resp.StatusCode, "error", err.Error())
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Op: op, StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			apiErr.Message = eb.Error
		}
		log.Info(ctx, "server rejected request", "status", resp.StatusCode)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: %w: %v", op, ErrUnexpectedResponse, err)
		}
	}
	return nil
}
