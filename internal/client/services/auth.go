package services

import (
	"context"
	"fmt"
	"strings"

	"blogcli/internal/client/api"
	"blogcli/internal/client/state"
	"blogcli/internal/client/validate"
)

// AuthService covers sign-in/sign-out, registration, the two OTP
// verification channels, and the password recovery flow.
type AuthService struct {
	s *Services
}

// applySession copies a server auth payload into the session. hasEmail and
// hasPhone are derived from the presence of the values, not taken from the
// payload flags. defaultType fills in userType when the server omits it.
func (a *AuthService) applySession(status *api.AuthStatus, defaultType state.UserType) {
	sess := &a.s.store.Session
	sess.Authenticated = true
	sess.UserID = status.UserID
	sess.Username = status.Username
	sess.EmailVerified = status.Verified
	sess.MobileVerified = status.MobileVerified
	sess.Email = status.Email
	sess.HasEmail = status.Email != ""
	sess.Phone = status.PhoneNumber
	sess.HasPhone = status.PhoneNumber != ""
	sess.SMSEnabled = status.SMSEnabled

	sess.UserType = state.UserType(status.UserType)
	if sess.UserType == "" {
		sess.UserType = defaultType
	}
}

// CheckAuth refreshes the session from the server. On any failure the
// session resets to the unauthenticated default. The error is returned so
// callers can sequence a post-check step.
func (a *AuthService) CheckAuth(ctx context.Context) error {
	st := a.s.store
	st.Loading.Auth = true
	defer func() { st.Loading.Auth = false }()

	status, err := a.s.client.CheckAuth(ctx)
	if err != nil {
		a.s.logger.Debug(ctx, "auth check failed", "error", err)
		st.Session.Reset()
		return err
	}

	a.applySession(status, state.UserTypeLocal)

	if status.PhoneNumber != "" {
		a.s.cachePhone(ctx, status.UserID, status.PhoneNumber)
	}
	// a verified mobile implies a phone on file even when the payload
	// does not echo the number
	if status.MobileVerified {
		st.Session.HasPhone = true
	}

	a.s.Users.FetchNotificationPreferences(ctx)
	return nil
}

// Login authenticates with the pending login form. On success it closes the
// dialog, refreshes the blog list, and schedules the add-contact-method
// prompt when the account has no way to be verified.
func (a *AuthService) Login(ctx context.Context) {
	st := a.s.store
	form := &st.LoginForm
	form.Error = ""

	if form.Username == "" || form.Password == "" {
		form.Error = "Username and password are required"
		return
	}

	st.Loading.Auth = true
	defer func() { st.Loading.Auth = false }()

	status, err := a.s.client.Login(ctx, form.Username, form.Password, form.Type)
	if err != nil {
		a.s.logger.Debug(ctx, "login failed", "username", form.Username, "error", err)
		form.Error = api.Message(err, "Login failed")
		return
	}

	a.applySession(status, state.UserTypeLDAP)

	// the server can confirm mobile verification without returning the
	// number; bridge the gap from the local cache
	mobileVerifiedNoPhone := status.MobileVerified && status.PhoneNumber == ""
	if mobileVerifiedNoPhone {
		if phone := a.s.cachedPhone(ctx, status.UserID); phone != "" {
			st.Session.Phone = phone
			st.PhoneForm.Phone = phone
		}
		st.Session.HasPhone = true
	}

	st.CloseModals()
	form.Password = ""
	st.Notifier.Show(state.NotifySuccess, "Login successful")

	a.s.Users.FetchNotificationPreferences(ctx)

	// Timer callbacks only enqueue; the store is mutated when the front
	// end drains the queue on its own goroutine.
	sess := st.Session
	if !sess.HasEmail && !sess.HasPhone && sess.SMSEnabled {
		afterFunc(a.s.promptDelay, func() {
			st.Defer(func() {
				st.Notifier.Show(state.NotifyWarning, "Please add your email address or phone number for verification")
				a.s.Users.OpenEmailModal("")
			})
		})
	} else if !sess.HasEmail && !sess.SMSEnabled {
		afterFunc(a.s.promptDelay, func() {
			st.Defer(func() {
				st.Notifier.Show(state.NotifyWarning, "Please add your email address")
				a.s.Users.OpenEmailModal("")
			})
		})
	}

	a.s.Blogs.GetBlogs(ctx, ListOptions{})

	if mobileVerifiedNoPhone && st.Session.Phone == "" {
		afterFunc(a.s.promptDelay, func() {
			st.Defer(func() {
				a.s.Users.RefreshUserData(context.Background())
			})
		})
	}
}

// Register creates an account and opens the email OTP dialog seeded with
// the new user id.
func (a *AuthService) Register(ctx context.Context) {
	st := a.s.store
	form := &st.RegisterForm
	form.Error = ""

	result := validate.ValidateForm(map[string]string{
		"username":        form.Username,
		"email":           form.Email,
		"password":        form.Password,
		"passwordConfirm": form.PasswordConfirm,
	}, []validate.FieldRule{
		{Field: "username", Label: "Username", Required: true},
		{Field: "email", Label: "Email", Required: true, Email: true},
		{Field: "password", Label: "Password", Required: true, Password: true, MinLength: 8},
		{Field: "passwordConfirm", Label: "Password confirmation", Required: true, Match: "password", MatchLabel: "Password"},
	})
	if !result.IsValid {
		form.Error = result.First
		return
	}

	st.Loading.Auth = true
	defer func() { st.Loading.Auth = false }()

	res, err := a.s.client.Register(ctx, form.Username, form.Email, form.Password)
	if err != nil {
		form.Error = api.Message(err, "Registration failed")
		return
	}

	st.Notifier.Show(state.NotifySuccess, "Registration successful! Please check your email for verification.")

	form.Reset()
	st.EmailOTPForm.UserID = res.UserID
	st.OpenModal(state.ModalEmailOTP)
}

// Logout ends the server session. Local state is reset unconditionally:
// the session and the cached phone/user id are wiped even when the server
// call fails; only the notification differs.
func (a *AuthService) Logout(ctx context.Context) {
	st := a.s.store
	st.Loading.Auth = true
	defer func() { st.Loading.Auth = false }()

	err := a.s.client.Logout(ctx)

	st.Session.Reset()
	a.s.clearCache(ctx)

	if err != nil {
		a.s.logger.Debug(ctx, "logout failed", "error", err)
		st.Notifier.Show(state.NotifyError, "Logout failed")
		return
	}
	st.Notifier.Show(state.NotifySuccess, "Logout successful")
}

// reportEmailOTPError surfaces a failure inline when the email OTP dialog
// is open, otherwise as a notification.
func (a *AuthService) reportEmailOTPError(message string) {
	if a.s.store.IsOpen(state.ModalEmailOTP) {
		a.s.store.EmailOTPForm.Error = message
	} else {
		a.s.store.Notifier.Show(state.NotifyError, message)
	}
}

// RequestEmailVerification asks the server to send an email OTP.
//
// Directory-backed accounts with a pending email in the open OTP dialog
// re-submit that address through the update-email endpoint, which reissues
// the OTP. Everyone else goes through the plain request endpoint; when that
// rejects with a "no email on file" message while an email is known
// client-side, the update-email endpoint is tried once before reporting
// failure.
func (a *AuthService) RequestEmailVerification(ctx context.Context) {
	st := a.s.store
	sess := &st.Session
	st.EmailOTPForm.Error = ""

	if sess.UserType == state.UserTypeLDAP && st.IsOpen(state.ModalEmailOTP) && st.EmailForm.Email != "" {
		st.Loading.Verification = true
		defer func() { st.Loading.Verification = false }()

		userID, err := a.s.client.UpdateEmail(ctx, st.EmailForm.Email)
		if err != nil {
			a.reportEmailOTPError(api.Message(err, "Failed to send email verification OTP"))
			return
		}
		st.EmailOTPForm.UserID = userID
		sess.Email = st.EmailForm.Email
		sess.HasEmail = true
		st.EmailOTPState = state.OTPRequested
		st.Notifier.Show(state.NotifySuccess, "Verification OTP sent to your email.")
		return
	}

	userID := st.EmailOTPForm.UserID
	if userID == 0 {
		userID = sess.UserID
	}
	if userID == 0 {
		st.Notifier.Show(state.NotifyError, "User ID not found. Please try again.")
		return
	}

	updatingEmail := st.IsOpen(state.ModalEmailOTP) && sess.HasEmail

	st.Loading.Verification = true
	defer func() { st.Loading.Verification = false }()

	if err := a.s.client.RequestEmailOTP(ctx, userID, updatingEmail); err != nil {
		message := api.Message(err, "Failed to send email verification OTP")

		if strings.Contains(message, "Please add an email") && (sess.Email != "" || st.EmailForm.Email != "") {
			emailToUse := sess.Email
			if emailToUse == "" {
				emailToUse = st.EmailForm.Email
			}

			uid, innerErr := a.s.client.UpdateEmail(ctx, emailToUse)
			if innerErr != nil {
				a.reportEmailOTPError(api.Message(innerErr, "Failed to send verification OTP"))
				return
			}
			st.EmailOTPForm.UserID = uid
			sess.Email = emailToUse
			sess.HasEmail = true
			st.EmailOTPState = state.OTPRequested
			st.Notifier.Show(state.NotifySuccess, "Verification OTP sent to your email.")
			return
		}

		a.reportEmailOTPError(message)
		return
	}

	st.EmailOTPForm.UserID = userID
	st.OpenModal(state.ModalEmailOTP)
	st.EmailOTPState = state.OTPRequested
	st.Notifier.Show(state.NotifySuccess, "Verification OTP sent to your email.")
}

// VerifyEmailOTP submits the pending email OTP. On acceptance the channel
// becomes verified and the session is re-synchronized from the server.
func (a *AuthService) VerifyEmailOTP(ctx context.Context) {
	st := a.s.store
	form := &st.EmailOTPForm
	form.Error = ""

	if form.OTP == "" {
		form.Error = "OTP is required"
		return
	}
	if form.UserID == 0 {
		form.Error = "User ID is missing"
		return
	}

	st.Loading.Verification = true
	defer func() { st.Loading.Verification = false }()

	if err := a.s.client.VerifyEmailOTP(ctx, form.UserID, form.OTP); err != nil {
		// a rejected code keeps the channel in Requested; the user retries
		form.Error = api.Message(err, "Email verification failed")
		return
	}

	st.CloseModals()
	form.OTP = ""
	form.Error = ""
	st.EmailOTPState = state.OTPVerified

	if st.Session.Authenticated {
		st.Session.EmailVerified = true
	}

	st.Notifier.Show(state.NotifySuccess, "Email verified successfully!")

	if st.Session.Authenticated {
		_ = a.CheckAuth(ctx)
	}
}

// RequestMobileVerification asks the server to text an OTP to the account's
// phone. Requires SMS to be enabled; with no phone number known the user is
// sent to the add-phone dialog instead.
func (a *AuthService) RequestMobileVerification(ctx context.Context) {
	st := a.s.store
	sess := &st.Session
	st.MobileOTPForm.Error = ""

	if !sess.Authenticated {
		st.Notifier.Show(state.NotifyError, "Please login first")
		return
	}
	if !sess.SMSEnabled {
		st.Notifier.Show(state.NotifyWarning, "SMS functionality is not enabled on the server")
		return
	}

	phone := st.PhoneForm.Phone
	if phone == "" {
		phone = sess.Phone
	}
	if phone == "" {
		st.Notifier.Show(state.NotifyError, "Please add a phone number first")
		a.s.Users.OpenPhoneModal(ctx)
		return
	}

	st.Loading.Verification = true
	defer func() { st.Loading.Verification = false }()

	res, err := a.s.client.RequestMobileOTP(ctx, phone, sess.HasPhone)
	if err != nil {
		message := api.Message(err, "Failed to send mobile verification OTP")

		if strings.Contains(message, "No phone number found") || strings.Contains(message, "Please add a phone number") {
			st.Notifier.Show(state.NotifyError, "Please add a phone number first")
			a.s.Users.OpenPhoneModal(ctx)
		} else if st.IsOpen(state.ModalMobileOTP) {
			st.MobileOTPForm.Error = message
		} else {
			st.Notifier.Show(state.NotifyError, message)
		}
		return
	}

	st.MobileOTPForm.UserID = sess.UserID
	st.OpenModal(state.ModalMobileOTP)

	if res.PhoneUsed != "" {
		sess.Phone = res.PhoneUsed
		sess.HasPhone = true
		a.s.cachePhone(ctx, sess.UserID, res.PhoneUsed)
	}

	st.MobileOTPState = state.OTPRequested
	st.Notifier.Show(state.NotifySuccess, "Verification OTP sent to your phone.")
}

// VerifyMobileOTP submits the pending SMS OTP; mirrors VerifyEmailOTP.
func (a *AuthService) VerifyMobileOTP(ctx context.Context) {
	st := a.s.store
	form := &st.MobileOTPForm
	form.Error = ""

	if form.OTP == "" {
		form.Error = "OTP is required"
		return
	}
	if form.UserID == 0 {
		form.Error = "User ID is missing"
		return
	}

	st.Loading.Verification = true
	defer func() { st.Loading.Verification = false }()

	if err := a.s.client.VerifyMobileOTP(ctx, form.UserID, form.OTP); err != nil {
		form.Error = api.Message(err, "Mobile verification failed")
		return
	}

	st.CloseModals()
	form.OTP = ""
	form.Error = ""
	st.MobileOTPState = state.OTPVerified

	if st.Session.Authenticated {
		st.Session.MobileVerified = true
	}

	st.Notifier.Show(state.NotifySuccess, "Phone number verified successfully!")

	if st.Session.Authenticated {
		_ = a.CheckAuth(ctx)
	}
}

// RequestPasswordReset starts the email-addressed recovery flow (step 1).
func (a *AuthService) RequestPasswordReset(ctx context.Context) {
	st := a.s.store
	form := &st.ForgotPasswordForm
	form.Error = ""

	if form.Email == "" {
		form.Error = "Email is required"
		return
	}
	if !validate.IsValidEmail(form.Email) {
		form.Error = "Please enter a valid email address"
		return
	}

	st.Loading.Auth = true
	defer func() { st.Loading.Auth = false }()

	if err := a.s.client.ForgotPassword(ctx, form.Email); err != nil {
		form.Error = api.Message(err, "Request failed")
		return
	}

	form.OTPSent = true
	msg := "If an account with that email exists, a password reset OTP has been sent."
	form.Success = msg
	afterFunc(successMessageTTL, func() {
		st.Defer(func() {
			if st.ForgotPasswordForm.Success == msg {
				st.ForgotPasswordForm.Success = ""
			}
		})
	})
}

func isSixDigits(otp string) bool {
	if len(otp) != 6 {
		return false
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// VerifyResetOTP checks the recovery OTP (step 2). The server replies with
// the account's username, kept for the reused-password heuristic.
func (a *AuthService) VerifyResetOTP(ctx context.Context) {
	st := a.s.store
	form := &st.ForgotPasswordForm
	form.Error = ""

	if form.OTP == "" {
		form.Error = "OTP is required"
		return
	}
	if !isSixDigits(form.OTP) {
		form.Error = "OTP must be 6 digits"
		return
	}

	st.Loading.Auth = true
	defer func() { st.Loading.Auth = false }()

	username, err := a.s.client.VerifyResetOTP(ctx, form.Email, form.OTP)
	if err != nil {
		form.Error = api.Message(err, "Invalid or expired OTP")
		return
	}

	form.OTPVerified = true
	form.Username = username
}

// ResetPassword submits the new password (step 3). A best-effort client
// heuristic rejects the password still sitting in the login form for the
// same username; the server enforces the real history policy.
func (a *AuthService) ResetPassword(ctx context.Context) {
	st := a.s.store
	form := &st.ForgotPasswordForm
	form.Error = ""

	if form.Password == "" || form.PasswordConfirm == "" {
		form.Error = "All fields are required"
		return
	}

	if pr := validate.ValidatePassword(form.Password); !pr.IsValid {
		form.Error = pr.Feedback
		return
	}

	if form.Password != form.PasswordConfirm {
		form.Error = "Passwords do not match"
		return
	}

	if st.LoginForm.Password != "" &&
		st.LoginForm.Password == form.Password &&
		st.LoginForm.Username == form.Username {
		form.Error = "New password must be different from your last five passwords."
		return
	}

	st.Loading.Auth = true
	defer func() { st.Loading.Auth = false }()

	message, err := a.s.client.ResetPassword(ctx, form.Email, form.OTP, form.Password)
	if err != nil {
		form.Error = api.Message(err, "Password reset failed")
		return
	}

	if message == "" {
		message = fmt.Sprintf("Password for %s has been reset.", form.Username)
	}

	form.Email = ""
	form.OTP = ""
	form.Password = ""
	form.PasswordConfirm = ""
	form.Error = ""
	form.Success = message
}
