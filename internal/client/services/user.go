package services

import (
	"context"
	"fmt"

	"blogcli/internal/client/api"
	"blogcli/internal/client/models"
	"blogcli/internal/client/state"
	"blogcli/internal/client/validate"
)

// UserService covers contact-method changes, notification preferences, and
// the session refresh that bridges a lagging phone number.
type UserService struct {
	s *Services
}

// OpenEmailModal opens the add/change-email dialog, prefilled with the
// current address. errMsg, when non-empty, is preset as the form error to
// tell the user why they landed here.
func (u *UserService) OpenEmailModal(errMsg string) {
	st := u.s.store

	if st.Session.HasEmail && st.Session.Email != "" {
		st.EmailForm.Email = st.Session.Email
	} else {
		st.EmailForm.Email = ""
	}
	st.EmailForm.Error = errMsg
	st.OpenModal(state.ModalEmail)
}

// OpenPhoneModal opens the add/change-phone dialog, prefilled from the
// session or, failing that, the local cache.
func (u *UserService) OpenPhoneModal(ctx context.Context) {
	st := u.s.store
	st.PhoneForm.Error = ""

	switch {
	case st.Session.Phone != "":
		st.PhoneForm.Phone = st.Session.Phone
	default:
		if phone := u.s.cachedPhone(ctx, st.Session.UserID); phone != "" {
			st.PhoneForm.Phone = phone
			st.Session.Phone = phone
		} else {
			st.PhoneForm.Phone = ""
		}
	}

	st.OpenModal(state.ModalPhone)
}

// UpdateEmail submits the pending email form, then opens the email OTP
// dialog for the returned user id.
func (u *UserService) UpdateEmail(ctx context.Context) {
	st := u.s.store
	form := &st.EmailForm
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

	userID, err := u.s.client.UpdateEmail(ctx, form.Email)
	if err != nil {
		form.Error = api.Message(err, "Failed to update email")
		return
	}

	action := "added"
	if form.Email == st.Session.Email {
		action = "updated"
	}

	st.EmailOTPForm.UserID = userID
	st.OpenModal(state.ModalEmailOTP)
	st.EmailOTPState = state.OTPRequested
	st.Notifier.Show(state.NotifySuccess,
		fmt.Sprintf("Email %s! Please verify your email with the OTP sent to your inbox.", action))
}

// UpdatePhone submits the pending phone form. The number resets the mobile
// verification state; the OTP dialog opens only when the server actually
// sent the SMS, otherwise the user is pointed at support and the session is
// re-checked.
func (u *UserService) UpdatePhone(ctx context.Context) {
	st := u.s.store
	form := &st.PhoneForm
	form.Error = ""

	if form.Phone == "" {
		form.Error = "Phone number is required"
		return
	}
	if !validate.IsValidPhone(form.Phone) {
		form.Error = "Phone number must be in format (e.g., +1234567890)"
		return
	}

	st.Loading.Auth = true
	defer func() { st.Loading.Auth = false }()

	res, err := u.s.client.UpdatePhone(ctx, form.Phone)
	if err != nil {
		form.Error = api.Message(err, "Failed to update phone number")
		return
	}

	st.CloseModals()

	newPhone := res.PendingPhone
	if newPhone == "" {
		newPhone = res.PhoneNumber
	}
	if newPhone == "" {
		newPhone = form.Phone
	}

	st.Session.Phone = newPhone
	st.Session.HasPhone = true
	st.Session.MobileVerified = false
	st.MobileOTPState = state.OTPIdle
	u.s.cachePhone(ctx, st.Session.UserID, newPhone)

	st.MobileOTPForm.UserID = res.UserID

	if res.SMSSent {
		st.OpenModal(state.ModalMobileOTP)
		st.MobileOTPState = state.OTPRequested

		action := "added"
		if form.Phone == st.Session.Phone {
			action = "updated"
		}
		st.Notifier.Show(state.NotifySuccess,
			fmt.Sprintf("Phone number %s! Please verify your phone with the OTP sent via SMS.", action))
		return
	}

	st.Notifier.Show(state.NotifyWarning,
		"Phone number is not on the whitelist. Please reach out to support for assistance.")
	_ = u.s.Auth.CheckAuth(ctx)
}

// OpenNotificationPrefsModal opens the preferences dialog after re-reading
// the stored values. Requires a signed-in account with an email on file.
func (u *UserService) OpenNotificationPrefsModal(ctx context.Context) {
	st := u.s.store

	if !st.Session.Authenticated {
		st.Notifier.Show(state.NotifyError, "Please login first")
		return
	}
	if !st.Session.HasEmail {
		st.Notifier.Show(state.NotifyWarning, "Please add an email address first")
		u.OpenEmailModal("")
		return
	}

	u.FetchNotificationPreferences(ctx)
	st.NotificationPrefsForm.Error = ""
	st.OpenModal(state.ModalNotificationPrefs)
}

// FetchNotificationPreferences reads the stored preferences into the form.
// Silent on failure; the form keeps its previous values.
func (u *UserService) FetchNotificationPreferences(ctx context.Context) {
	st := u.s.store
	if !st.Session.Authenticated {
		return
	}

	prefs, err := u.s.client.GetNotificationPreferences(ctx)
	if err != nil {
		u.s.logger.Debug(ctx, "failed to fetch notification preferences", "error", err)
		return
	}

	st.NotificationPrefsForm.NotifyOnBlog = prefs.NotifyOnBlog
	st.NotificationPrefsForm.NotifyOnComment = prefs.NotifyOnComment
}

// UpdateNotificationPreferences persists the pending preferences form.
func (u *UserService) UpdateNotificationPreferences(ctx context.Context) {
	st := u.s.store
	form := &st.NotificationPrefsForm
	form.Error = ""

	st.Loading.Auth = true
	defer func() { st.Loading.Auth = false }()

	prefs := models.NotificationPreferences{
		NotifyOnBlog:    form.NotifyOnBlog,
		NotifyOnComment: form.NotifyOnComment,
	}
	if err := u.s.client.UpdateNotificationPreferences(ctx, prefs); err != nil {
		form.Error = api.Message(err, "Failed to update notification preferences")
		return
	}

	st.CloseModals()
	st.Notifier.Show(state.NotifySuccess, "Notification preferences updated")
}

// RefreshUserData re-reads the auth payload to pick up a phone number the
// server did not return earlier. Silent on failure.
func (u *UserService) RefreshUserData(ctx context.Context) {
	st := u.s.store

	status, err := u.s.client.CheckAuth(ctx)
	if err != nil {
		u.s.logger.Debug(ctx, "failed to refresh user data", "error", err)
		return
	}

	if status.PhoneNumber != "" {
		st.Session.Phone = status.PhoneNumber
		st.Session.HasPhone = true
		st.PhoneForm.Phone = status.PhoneNumber
		u.s.cachePhone(ctx, st.Session.UserID, status.PhoneNumber)
	}
}
