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
	"strconv"
	"time"

	"github.com/google/uuid"

	"blogcli/internal/client/models"
	"blogcli/internal/logging"
)

// HTTPClient talks JSON over HTTPS to the platform. The session cookie set
// by login lives in the jar, so every subsequent call is authenticated
// until logout or expiry.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	logger  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a gateway rooted at baseURL. Requests that exceed
// timeout fail with a transport error.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Jar: jar, Timeout: timeout},
		logger:  logger,
	}, nil
}

// envelope is the common wrapper on every response body. Endpoint-specific
// fields are decoded separately from the same raw bytes.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// do issues one request and decodes the response into out (when non-nil).
// Any non-2xx status or an explicit status:"error" body becomes an *Error
// carrying the server message.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	var env envelope
	if len(data) > 0 {
		// Some list endpoints return a bare JSON array; those carry no
		// envelope and only arrive with a 2xx status.
		_ = json.Unmarshal(data, &env)
	}

	if resp.StatusCode >= 400 || env.Status == "error" {
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "code", resp.StatusCode, "message", env.Message)
		return &Error{Code: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) CheckAuth(ctx context.Context) (*AuthStatus, error) {
	var res struct {
		envelope
		AuthStatus
	}
	if err := c.do(ctx, http.MethodGet, "/auth/login", nil, nil, &res); err != nil {
		return nil, err
	}
	if res.Status != "success" {
		return nil, &Error{Code: http.StatusUnauthorized, Message: res.Message}
	}
	return &res.AuthStatus, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password, authType string) (*AuthStatus, error) {
	body := map[string]string{"username": username, "password": password, "type": authType}
	var res struct {
		envelope
		AuthStatus
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &res); err != nil {
		return nil, err
	}
	return &res.AuthStatus, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*RegisterResult, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var res struct {
		envelope
		RegisterResult
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &res); err != nil {
		return nil, err
	}
	return &res.RegisterResult, nil
}

func (c *HTTPClient) RequestEmailOTP(ctx context.Context, userID int64, updatingEmail bool) error {
	body := map[string]any{}
	if userID != 0 {
		body["userId"] = userID
	}
	if updatingEmail {
		body["updatingEmail"] = true
	}
	return c.do(ctx, http.MethodPost, "/auth/request-otp", nil, body, nil)
}

func (c *HTTPClient) VerifyEmailOTP(ctx context.Context, userID int64, otp string) error {
	body := map[string]any{"userId": userID, "otp": otp}
	return c.do(ctx, http.MethodPost, "/auth/verify-otp", nil, body, nil)
}

func (c *HTTPClient) RequestMobileOTP(ctx context.Context, phone string, updatingPhone bool) (*MobileOTPResult, error) {
	body := map[string]any{}
	if phone != "" {
		body["phone"] = phone
	}
	if updatingPhone {
		body["updatingPhone"] = true
	}
	var res struct {
		envelope
		MobileOTPResult
	}
	if err := c.do(ctx, http.MethodPost, "/auth/request-mobile-otp", nil, body, &res); err != nil {
		return nil, err
	}
	return &res.MobileOTPResult, nil
}

func (c *HTTPClient) VerifyMobileOTP(ctx context.Context, userID int64, otp string) error {
	body := map[string]any{"userId": userID, "otp": otp}
	return c.do(ctx, http.MethodPost, "/auth/verify-mobile-otp", nil, body, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, map[string]string{"email": email}, nil)
}

func (c *HTTPClient) VerifyResetOTP(ctx context.Context, email, otp string) (string, error) {
	var res struct {
		envelope
		Username string `json:"username"`
	}
	body := map[string]string{"email": email, "otp": otp}
	if err := c.do(ctx, http.MethodPost, "/auth/verify-reset-otp", nil, body, &res); err != nil {
		return "", err
	}
	return res.Username, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, otp, password string) (string, error) {
	var res envelope
	body := map[string]string{"email": email, "otp": otp, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", nil, body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *HTTPClient) UpdateEmail(ctx context.Context, email string) (int64, error) {
	var res struct {
		envelope
		UserID int64 `json:"userId"`
	}
	if err := c.do(ctx, http.MethodPut, "/users/email", nil, map[string]string{"email": email}, &res); err != nil {
		return 0, err
	}
	return res.UserID, nil
}

func (c *HTTPClient) UpdatePhone(ctx context.Context, phone string) (*PhoneUpdateResult, error) {
	var res struct {
		envelope
		PhoneUpdateResult
	}
	body := map[string]string{"phone": phone}
	if err := c.do(ctx, http.MethodPut, "/users/phone", nil, body, &res); err != nil {
		return nil, err
	}
	return &res.PhoneUpdateResult, nil
}

func (c *HTTPClient) GetNotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error) {
	var res struct {
		envelope
		models.NotificationPreferences
	}
	if err := c.do(ctx, http.MethodGet, "/users/notification-preferences", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.NotificationPreferences, nil
}

func (c *HTTPClient) UpdateNotificationPreferences(ctx context.Context, prefs models.NotificationPreferences) error {
	return c.do(ctx, http.MethodPut, "/users/notification-preferences", nil, prefs, nil)
}

func (c *HTTPClient) ListBlogs(ctx context.Context, q BlogQuery) ([]models.Blog, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(q.Limit))
	query.Set("offset", strconv.Itoa(q.Offset))
	if q.NewerThan != "" {
		query.Set("newerThan", q.NewerThan)
	}
	if q.Author != "" {
		query.Set("author", q.Author)
	}
	var blogs []models.Blog
	if err := c.do(ctx, http.MethodGet, "/blogs-api", query, nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (c *HTTPClient) GetBlog(ctx context.Context, blogID int64) (*models.Blog, error) {
	var blog models.Blog
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/blogs-api/%d", blogID), nil, nil, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *HTTPClient) ListUserBlogs(ctx context.Context, userID int64) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users-api/%d/blogs", userID), nil, nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (c *HTTPClient) CreateBlog(ctx context.Context, title, content string) (*models.Blog, error) {
	var res struct {
		envelope
		Blog models.Blog `json:"blog"`
	}
	body := map[string]string{"title": title, "content": content}
	if err := c.do(ctx, http.MethodPost, "/blogs/create", nil, body, &res); err != nil {
		return nil, err
	}
	return &res.Blog, nil
}

func (c *HTTPClient) UpdateBlog(ctx context.Context, blogID int64, title, content string) (*models.Blog, error) {
	var res struct {
		envelope
		Blog models.Blog `json:"blog"`
	}
	body := map[string]string{"title": title, "content": content}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/blogs/%d/update", blogID), nil, body, &res); err != nil {
		return nil, err
	}
	return &res.Blog, nil
}

func (c *HTTPClient) DeleteBlog(ctx context.Context, blogID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/blogs/%d/delete", blogID), nil, nil, nil)
}

func (c *HTTPClient) ListComments(ctx context.Context, blogID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/blogs-api/%d/comments", blogID), nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, blogID int64, content string) error {
	body := map[string]string{"content": content}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/blogs/%d/comments/create", blogID), nil, body, nil)
}

func (c *HTTPClient) CreateReply(ctx context.Context, commentID int64, content string) error {
	body := map[string]string{"content": content}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/comments/%d/replies/create", commentID), nil, body, nil)
}

func (c *HTTPClient) DeleteComment(ctx context.Context, commentID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d/delete", commentID), nil, nil, nil)
}

func (c *HTTPClient) GenerateContent(ctx context.Context, prompt, mode, content string) (string, error) {
	body := map[string]string{"prompt": prompt, "mode": mode}
	if content != "" {
		body["content"] = content
	}
	var res struct {
		envelope
		GeneratedContent string `json:"generatedContent"`
	}
	if err := c.do(ctx, http.MethodPost, "/ai/generate", nil, body, &res); err != nil {
		return "", err
	}
	return res.GeneratedContent, nil
}
