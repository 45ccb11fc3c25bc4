// Package api is the REST gateway to the blog platform. Client is the
// transport-facing interface the services depend on; HTTPClient is the
// JSON-over-HTTPS implementation. All persistent state and validation of
// record live behind these endpoints; the client merely calls them.
package api

import (
	"context"

	"blogcli/internal/client/models"
)

// AuthStatus is the session payload returned by login and auth-check.
type AuthStatus struct {
	UserID         int64  `json:"userId"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	Verified       bool   `json:"verified"`
	MobileVerified bool   `json:"mobileVerified"`
	HasEmail       bool   `json:"hasEmail"`
	HasPhone       bool   `json:"hasPhone"`
	SMSEnabled     bool   `json:"smsEnabled"`
	UserType       string `json:"userType"`
}

// RegisterResult carries the id of the freshly created account, needed to
// seed the email-OTP dialog before the user has a session.
type RegisterResult struct {
	UserID int64 `json:"userId"`
}

// MobileOTPResult reports which phone number the server actually texted.
type MobileOTPResult struct {
	PhoneUsed string `json:"phoneUsed"`
}

// PhoneUpdateResult is the response to a phone set/change. The server may
// report the number as pending until verified, and tells us whether the
// verification SMS went out.
type PhoneUpdateResult struct {
	UserID       int64  `json:"userId"`
	PendingPhone string `json:"pendingPhone"`
	PhoneNumber  string `json:"phone_number"`
	SMSSent      bool   `json:"sms_sent"`
}

// BlogQuery selects a page of the public blog list.
type BlogQuery struct {
	NewerThan string
	Author    string
	Limit     int
	Offset    int
}

// Client is the full surface of the blog platform REST API used by the
// gateway services. Implementations must carry session credentials
// (cookies) on every call.
type Client interface {
	CheckAuth(ctx context.Context) (*AuthStatus, error)
	Login(ctx context.Context, username, password, authType string) (*AuthStatus, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, username, email, password string) (*RegisterResult, error)

	RequestEmailOTP(ctx context.Context, userID int64, updatingEmail bool) error
	VerifyEmailOTP(ctx context.Context, userID int64, otp string) error
	RequestMobileOTP(ctx context.Context, phone string, updatingPhone bool) (*MobileOTPResult, error)
	VerifyMobileOTP(ctx context.Context, userID int64, otp string) error

	ForgotPassword(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, otp string) (username string, err error)
	ResetPassword(ctx context.Context, email, otp, password string) (message string, err error)

	UpdateEmail(ctx context.Context, email string) (userID int64, err error)
	UpdatePhone(ctx context.Context, phone string) (*PhoneUpdateResult, error)
	GetNotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error)
	UpdateNotificationPreferences(ctx context.Context, prefs models.NotificationPreferences) error

	ListBlogs(ctx context.Context, q BlogQuery) ([]models.Blog, error)
	GetBlog(ctx context.Context, blogID int64) (*models.Blog, error)
	ListUserBlogs(ctx context.Context, userID int64) ([]models.Blog, error)
	CreateBlog(ctx context.Context, title, content string) (*models.Blog, error)
	UpdateBlog(ctx context.Context, blogID int64, title, content string) (*models.Blog, error)
	DeleteBlog(ctx context.Context, blogID int64) error

	ListComments(ctx context.Context, blogID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, blogID int64, content string) error
	CreateReply(ctx context.Context, commentID int64, content string) error
	DeleteComment(ctx context.Context, commentID int64) error

	GenerateContent(ctx context.Context, prompt, mode, content string) (string, error)
}
