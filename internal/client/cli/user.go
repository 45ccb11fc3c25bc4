package cli

import (
	"context"
	"fmt"

	"blogcli/internal/client/state"
)

// Email adds or changes the account email. The server mails an OTP to the
// new address; run 'verify-email' afterwards.
func (a *App) Email(ctx context.Context) error {
	st := a.store

	prompt := "Enter email address"
	if st.Session.Email != "" {
		prompt = fmt.Sprintf("Enter new email address (current: %s)", st.Session.Email)
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	st.EmailForm.Email = email

	a.services.Users.UpdateEmail(ctx)

	if e := st.EmailForm.Error; e != "" {
		fmt.Fprintf(a.out, "[error] %s\n", e)
	}
	a.render()
	return nil
}

// Phone adds or changes the account phone number. When the number is on the
// SMS whitelist an OTP is texted; run 'verify-phone' afterwards.
func (a *App) Phone(ctx context.Context) error {
	st := a.store

	a.services.Users.OpenPhoneModal(ctx)
	prompt := "Enter phone number (e.g., +1234567890)"
	if st.PhoneForm.Phone != "" {
		prompt = fmt.Sprintf("Enter phone number (current: %s)", st.PhoneForm.Phone)
	}
	phone, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	st.PhoneForm.Phone = phone

	a.services.Users.UpdatePhone(ctx)

	if e := st.PhoneForm.Error; e != "" {
		fmt.Fprintf(a.out, "[error] %s\n", e)
	}
	a.render()
	return nil
}

// Prefs shows and updates the email notification preferences.
func (a *App) Prefs(ctx context.Context) error {
	st := a.store

	a.services.Users.OpenNotificationPrefsModal(ctx)
	if !st.IsOpen(state.ModalNotificationPrefs) {
		a.render()
		return nil
	}

	form := &st.NotificationPrefsForm
	fmt.Fprintf(a.out, "Notify on new blogs: %v, notify on comments: %v\n",
		form.NotifyOnBlog, form.NotifyOnComment)

	onBlog, err := GetConfirmation(a.reader, "Email me about new blogs?", a.out)
	if err != nil {
		return err
	}
	onComment, err := GetConfirmation(a.reader, "Email me about comments on my blogs?", a.out)
	if err != nil {
		return err
	}
	form.NotifyOnBlog = onBlog
	form.NotifyOnComment = onComment

	a.services.Users.UpdateNotificationPreferences(ctx)

	if e := form.Error; e != "" {
		fmt.Fprintf(a.out, "[error] %s\n", e)
	}
	a.render()
	return nil
}
