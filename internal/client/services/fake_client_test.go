package services

import (
	"context"
	"fmt"
	"time"

	"blogcli/internal/client/api"
	"blogcli/internal/client/models"
	"blogcli/internal/client/state"
	"blogcli/internal/logging"
)

// ---- helpers ----

// fakeClient implements api.Client, recording every call with its arguments
// and replying with configurable canned results.
type fakeClient struct {
	calls []fakeCall

	checkAuthStatus *api.AuthStatus
	checkAuthErr    error

	loginStatus *api.AuthStatus
	loginErr    error

	registerResult *api.RegisterResult
	registerErr    error

	logoutErr error

	requestEmailOTPErr  error
	verifyEmailOTPErr   error
	mobileOTPResult     *api.MobileOTPResult
	requestMobileOTPErr error
	verifyMobileOTPErr  error

	forgotPasswordErr error
	resetUsername     string
	verifyResetOTPErr error
	resetMessage      string
	resetPasswordErr  error

	updateEmailUserID int64
	updateEmailErr    error
	phoneUpdateResult *api.PhoneUpdateResult
	updatePhoneErr    error
	prefs             *models.NotificationPreferences
	getPrefsErr       error
	updatePrefsErr    error

	// blog pages keyed by offset; listBlogsResult is the flat fallback
	listBlogsPages  map[int][]models.Blog
	listBlogsResult []models.Blog
	listBlogsErr    error

	blog             *models.Blog
	getBlogErr       error
	userBlogs        []models.Blog
	listUserBlogsErr error
	createBlogErr    error
	updateBlogResult *models.Blog
	updateBlogErr    error
	deleteBlogErr    error

	comments         []models.Comment
	listCommentsErr  error
	createCommentErr error
	createReplyErr   error
	deleteCommentErr error

	generated   string
	generateErr error
}

type fakeCall struct {
	method string
	args   []any
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) record(method string, args ...any) {
	f.calls = append(f.calls, fakeCall{method: method, args: args})
}

func (f *fakeClient) called(method string) bool {
	return f.callCount(method) > 0
}

func (f *fakeClient) callCount(method string) int {
	n := 0
	for _, c := range f.calls {
		if c.method == method {
			n++
		}
	}
	return n
}

func (f *fakeClient) lastArgs(method string) []any {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].method == method {
			return f.calls[i].args
		}
	}
	return nil
}

func (f *fakeClient) CheckAuth(ctx context.Context) (*api.AuthStatus, error) {
	f.record("CheckAuth")
	if f.checkAuthErr != nil {
		return nil, f.checkAuthErr
	}
	if f.checkAuthStatus == nil {
		return &api.AuthStatus{}, nil
	}
	return f.checkAuthStatus, nil
}

func (f *fakeClient) Login(ctx context.Context, username, password, authType string) (*api.AuthStatus, error) {
	f.record("Login", username, password, authType)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.loginStatus == nil {
		return &api.AuthStatus{}, nil
	}
	return f.loginStatus, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record("Logout")
	return f.logoutErr
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) (*api.RegisterResult, error) {
	f.record("Register", username, email, password)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.registerResult == nil {
		return &api.RegisterResult{}, nil
	}
	return f.registerResult, nil
}

func (f *fakeClient) RequestEmailOTP(ctx context.Context, userID int64, updatingEmail bool) error {
	f.record("RequestEmailOTP", userID, updatingEmail)
	return f.requestEmailOTPErr
}

func (f *fakeClient) VerifyEmailOTP(ctx context.Context, userID int64, otp string) error {
	f.record("VerifyEmailOTP", userID, otp)
	return f.verifyEmailOTPErr
}

func (f *fakeClient) RequestMobileOTP(ctx context.Context, phone string, updatingPhone bool) (*api.MobileOTPResult, error) {
	f.record("RequestMobileOTP", phone, updatingPhone)
	if f.requestMobileOTPErr != nil {
		return nil, f.requestMobileOTPErr
	}
	if f.mobileOTPResult == nil {
		return &api.MobileOTPResult{}, nil
	}
	return f.mobileOTPResult, nil
}

func (f *fakeClient) VerifyMobileOTP(ctx context.Context, userID int64, otp string) error {
	f.record("VerifyMobileOTP", userID, otp)
	return f.verifyMobileOTPErr
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) error {
	f.record("ForgotPassword", email)
	return f.forgotPasswordErr
}

func (f *fakeClient) VerifyResetOTP(ctx context.Context, email, otp string) (string, error) {
	f.record("VerifyResetOTP", email, otp)
	if f.verifyResetOTPErr != nil {
		return "", f.verifyResetOTPErr
	}
	return f.resetUsername, nil
}

func (f *fakeClient) ResetPassword(ctx context.Context, email, otp, password string) (string, error) {
	f.record("ResetPassword", email, otp, password)
	if f.resetPasswordErr != nil {
		return "", f.resetPasswordErr
	}
	return f.resetMessage, nil
}

func (f *fakeClient) UpdateEmail(ctx context.Context, email string) (int64, error) {
	f.record("UpdateEmail", email)
	if f.updateEmailErr != nil {
		return 0, f.updateEmailErr
	}
	return f.updateEmailUserID, nil
}

func (f *fakeClient) UpdatePhone(ctx context.Context, phone string) (*api.PhoneUpdateResult, error) {
	f.record("UpdatePhone", phone)
	if f.updatePhoneErr != nil {
		return nil, f.updatePhoneErr
	}
	if f.phoneUpdateResult == nil {
		return &api.PhoneUpdateResult{}, nil
	}
	return f.phoneUpdateResult, nil
}

func (f *fakeClient) GetNotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error) {
	f.record("GetNotificationPreferences")
	if f.getPrefsErr != nil {
		return nil, f.getPrefsErr
	}
	if f.prefs == nil {
		return &models.NotificationPreferences{}, nil
	}
	return f.prefs, nil
}

func (f *fakeClient) UpdateNotificationPreferences(ctx context.Context, prefs models.NotificationPreferences) error {
	f.record("UpdateNotificationPreferences", prefs)
	return f.updatePrefsErr
}

func (f *fakeClient) ListBlogs(ctx context.Context, q api.BlogQuery) ([]models.Blog, error) {
	f.record("ListBlogs", q)
	if f.listBlogsErr != nil {
		return nil, f.listBlogsErr
	}
	if f.listBlogsPages != nil {
		return f.listBlogsPages[q.Offset], nil
	}
	return f.listBlogsResult, nil
}

func (f *fakeClient) GetBlog(ctx context.Context, blogID int64) (*models.Blog, error) {
	f.record("GetBlog", blogID)
	if f.getBlogErr != nil {
		return nil, f.getBlogErr
	}
	if f.blog == nil {
		return &models.Blog{BlogID: blogID}, nil
	}
	return f.blog, nil
}

func (f *fakeClient) ListUserBlogs(ctx context.Context, userID int64) ([]models.Blog, error) {
	f.record("ListUserBlogs", userID)
	if f.listUserBlogsErr != nil {
		return nil, f.listUserBlogsErr
	}
	return f.userBlogs, nil
}

func (f *fakeClient) CreateBlog(ctx context.Context, title, content string) (*models.Blog, error) {
	f.record("CreateBlog", title, content)
	if f.createBlogErr != nil {
		return nil, f.createBlogErr
	}
	return &models.Blog{Title: title, Content: content}, nil
}

func (f *fakeClient) UpdateBlog(ctx context.Context, blogID int64, title, content string) (*models.Blog, error) {
	f.record("UpdateBlog", blogID, title, content)
	if f.updateBlogErr != nil {
		return nil, f.updateBlogErr
	}
	if f.updateBlogResult == nil {
		return &models.Blog{BlogID: blogID, Title: title, Content: content}, nil
	}
	return f.updateBlogResult, nil
}

func (f *fakeClient) DeleteBlog(ctx context.Context, blogID int64) error {
	f.record("DeleteBlog", blogID)
	return f.deleteBlogErr
}

func (f *fakeClient) ListComments(ctx context.Context, blogID int64) ([]models.Comment, error) {
	f.record("ListComments", blogID)
	if f.listCommentsErr != nil {
		return nil, f.listCommentsErr
	}
	return f.comments, nil
}

func (f *fakeClient) CreateComment(ctx context.Context, blogID int64, content string) error {
	f.record("CreateComment", blogID, content)
	return f.createCommentErr
}

func (f *fakeClient) CreateReply(ctx context.Context, commentID int64, content string) error {
	f.record("CreateReply", commentID, content)
	return f.createReplyErr
}

func (f *fakeClient) DeleteComment(ctx context.Context, commentID int64) error {
	f.record("DeleteComment", commentID)
	return f.deleteCommentErr
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt, mode, content string) (string, error) {
	f.record("GenerateContent", prompt, mode, content)
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.generated, nil
}

// fakeMeta is a map-backed metadata.Repository.
type fakeMeta struct {
	m map[string][]byte
}

func newFakeMeta() *fakeMeta {
	return &fakeMeta{m: map[string][]byte{}}
}

func (f *fakeMeta) Get(ctx context.Context, key string) ([]byte, error) {
	return f.m[key], nil
}

func (f *fakeMeta) Set(ctx context.Context, key string, value []byte) error {
	f.m[key] = value
	return nil
}

func (f *fakeMeta) Delete(ctx context.Context, key string) error {
	delete(f.m, key)
	return nil
}

func (f *fakeMeta) Clear(ctx context.Context) error {
	f.m = map[string][]byte{}
	return nil
}

func (f *fakeMeta) List(ctx context.Context) (map[string][]byte, error) {
	return f.m, nil
}

// serverError mimics a rejected call with a server-provided message.
func serverError(code int, message string) error {
	return fmt.Errorf("request failed: %w", &api.Error{Code: code, Message: message})
}

func newTestServices(client *fakeClient) (*Services, *state.Store, *fakeMeta) {
	store := state.New(20)
	meta := newFakeMeta()
	// a long prompt delay keeps scheduled prompts from firing unless a
	// test opts in via runAfterFuncsInline
	s := New(client, store, meta, logging.NewDiscardLogger(), time.Hour)
	return s, store, meta
}

// runAfterFuncsInline fires timer callbacks synchronously for the duration
// of fn. The work they queue still needs store.RunDeferred to apply.
func runAfterFuncsInline(fn func()) {
	orig := afterFunc
	afterFunc = func(d time.Duration, f func()) { f() }
	defer func() { afterFunc = orig }()
	fn()
}
