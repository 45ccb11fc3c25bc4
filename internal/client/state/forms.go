package state

// Pending form records. Each is an ephemeral, independently-resettable
// capture of user input plus an error string ("" when clean). A form is
// reset when its dialog closes or its flow completes.

type LoginForm struct {
	Username string
	Password string
	Type     string // "ldap" or "local"
	Error    string
}

func (f *LoginForm) Reset() {
	*f = LoginForm{Type: string(UserTypeLDAP)}
}

type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	Error           string
}

func (f *RegisterForm) Reset() {
	*f = RegisterForm{}
}

type EmailForm struct {
	Email string
	Error string
}

func (f *EmailForm) Reset() {
	*f = EmailForm{}
}

type PhoneForm struct {
	Phone string
	Error string
}

func (f *PhoneForm) Reset() {
	*f = PhoneForm{}
}

type NotificationPrefsForm struct {
	NotifyOnBlog    bool
	NotifyOnComment bool
	Error           string
}

func (f *NotificationPrefsForm) Reset() {
	*f = NotificationPrefsForm{NotifyOnBlog: true, NotifyOnComment: true}
}

// OTPForm backs both the email and the mobile OTP dialogs. UserID is seeded
// when the OTP is requested so verification can target an account that is
// not (yet) the session user, e.g. right after registration.
type OTPForm struct {
	OTP    string
	UserID int64
	Error  string
}

func (f *OTPForm) Reset() {
	*f = OTPForm{}
}

// ForgotPasswordForm drives the three-step, email-addressed recovery flow.
// OTPSent and OTPVerified are the step flags; Success carries a transient
// confirmation message.
type ForgotPasswordForm struct {
	Email           string
	OTP             string
	Password        string
	PasswordConfirm string
	Username        string
	OTPSent         bool
	OTPVerified     bool
	Error           string
	Success         string
}

func (f *ForgotPasswordForm) Reset() {
	*f = ForgotPasswordForm{}
}

// ResetPasswordForm holds a reset token delivered via an emailed deep link.
type ResetPasswordForm struct {
	Token           string
	Username        string
	Password        string
	PasswordConfirm string
	Verified        bool
	Error           string
	Success         string
}

func (f *ResetPasswordForm) Reset() {
	*f = ResetPasswordForm{}
}

type BlogForm struct {
	Title   string
	Content string
}

func (f *BlogForm) Reset() {
	*f = BlogForm{}
}

type CommentForm struct {
	Content         string
	ParentCommentID *int64
}

func (f *CommentForm) Reset() {
	*f = CommentForm{}
}
