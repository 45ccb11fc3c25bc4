// Package state holds the client's shared application state: the session,
// pending forms, dialog visibility, pagination cursor, loading flags, and
// the notification sink. It is an explicit, injectable container; mutation
// happens through the gateway services, presentation code only reads.
package state

import (
	"sync"

	"blogcli/internal/client/models"
)

// Pagination is the cursor for the public blog list. HasMore is inferred:
// true iff the last fetched page returned at least Limit items (the server
// does not report a total count).
type Pagination struct {
	Limit   int
	Offset  int
	HasMore bool
}

// Loading tracks one in-flight flag per operation family. Each gateway
// operation owns its flag and clears it in a deferred block, so a failure
// never leaves a spinner stuck.
type Loading struct {
	Blogs        bool
	Blog         bool
	Comments     bool
	Auth         bool
	Verification bool
}

// OTPChannelState models the per-channel OTP machine:
// Idle -> Requested -> Verified. Verified is terminal for the channel;
// a rejected verify leaves the state at Requested.
type OTPChannelState int

const (
	OTPIdle OTPChannelState = iota
	OTPRequested
	OTPVerified
)

// AIHelper is the scratchpad for the AI content assistant. Target records
// which draft (create or edit) the helper was opened on.
type AIHelper struct {
	Prompt           string
	Mode             string // "generate" or "enhance"
	Loading          bool
	Error            string
	GeneratedContent string
	Target           Modal // ModalCreateBlog, ModalEditBlog, or ModalNone
}

// PasswordStrength is the live readout next to the registration password box.
type PasswordStrength struct {
	Score    int
	Feedback string
}

// Store is the shared application state. A single front-end goroutine drives
// all mutation; timer callbacks never touch fields directly but enqueue work
// via Defer, which the front end runs with RunDeferred. The mutex covers the
// queue and the modal entry points.
type Store struct {
	mu       sync.Mutex
	deferred []func()

	AppReady bool
	Session  Session

	Blogs        []models.Blog
	UserBlogs    []models.Blog
	SelectedBlog *models.Blog
	Comments     []models.Comment

	Pagination Pagination
	Loading    Loading
	Notifier   Notifier

	LoginForm             LoginForm
	RegisterForm          RegisterForm
	EmailForm             EmailForm
	PhoneForm             PhoneForm
	NotificationPrefsForm NotificationPrefsForm
	EmailOTPForm          OTPForm
	MobileOTPForm         OTPForm
	ForgotPasswordForm    ForgotPasswordForm
	ResetPasswordForm     ResetPasswordForm
	NewBlog               BlogForm
	EditBlog              BlogForm
	NewComment            CommentForm

	EmailOTPState  OTPChannelState
	MobileOTPState OTPChannelState

	PasswordStrength PasswordStrength
	AIHelper         AIHelper

	activeModal     Modal
	CommentFormOpen bool
}

// New returns a Store with the given blog page size and default form values.
func New(pageLimit int) *Store {
	s := &Store{}
	s.Pagination.Limit = pageLimit
	s.LoginForm.Reset()
	s.NotificationPrefsForm.Reset()
	return s
}

// OpenModal makes m the single visible dialog.
func (s *Store) OpenModal(m Modal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeModal = m
}

// CloseModals hides whatever dialog is open, including the nested comment form.
func (s *Store) CloseModals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeModal = ModalNone
	s.CommentFormOpen = false
}

// ActiveModal returns the currently visible dialog.
func (s *Store) ActiveModal() Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeModal
}

// IsOpen reports whether m is the visible dialog.
func (s *Store) IsOpen(m Modal) bool {
	return s.ActiveModal() == m
}

// Defer queues fn for the front-end goroutine. Timer callbacks must use it
// instead of mutating the store themselves.
func (s *Store) Defer(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deferred = append(s.deferred, fn)
}

// RunDeferred runs and clears queued callbacks on the caller's goroutine.
func (s *Store) RunDeferred() {
	s.mu.Lock()
	fns := s.deferred
	s.deferred = nil
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// ResetForms returns every pending form to its pristine state.
func (s *Store) ResetForms() {
	s.LoginForm.Reset()
	s.RegisterForm.Reset()
	s.EmailForm.Reset()
	s.PhoneForm.Reset()
	s.NotificationPrefsForm.Reset()
	s.EmailOTPForm.Reset()
	s.MobileOTPForm.Reset()
	s.ForgotPasswordForm.Reset()
	s.ResetPasswordForm.Reset()
	s.NewBlog.Reset()
	s.EditBlog.Reset()
	s.NewComment.Reset()
}
