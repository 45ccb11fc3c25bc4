package cli

import (
	"context"
	"fmt"
	"strings"

	"blogcli/internal/client/state"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. Accounts default to the
// directory (LDAP) type; answering "local" switches to a platform account.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	accountType, err := getSimpleText(a.reader, "Account type: ldap or local (default ldap)", a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(accountType) != string(state.UserTypeLocal) {
		accountType = string(state.UserTypeLDAP)
	} else {
		accountType = string(state.UserTypeLocal)
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	form := &a.store.LoginForm
	form.Username = username
	form.Password = password
	form.Type = accountType

	a.services.Auth.Login(ctx)

	if form.Error != "" {
		fmt.Fprintf(a.out, "[error] %s\n", form.Error)
	}
	a.render()
	return nil
}

// Register prompts for the new account's details and creates it. On success
// the server mails a verification OTP; the REPL points at 'verify-email'.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	passwordConfirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	form := &a.store.RegisterForm
	form.Username = username
	form.Email = email
	form.Password = password
	form.PasswordConfirm = passwordConfirm

	a.services.Auth.Register(ctx)

	if form.Error != "" {
		fmt.Fprintf(a.out, "[error] %s\n", form.Error)
	}
	a.render()
	return nil
}

// Logout ends the session. Local state is cleared even when the server call
// fails.
func (a *App) Logout(ctx context.Context) error {
	a.services.Auth.Logout(ctx)
	a.render()
	return nil
}

// VerifyEmail requests an email OTP when none is pending and then prompts
// for the code. Used both for first-time verification and after an email
// change.
func (a *App) VerifyEmail(ctx context.Context) error {
	st := a.store

	if st.EmailOTPState != state.OTPRequested {
		a.services.Auth.RequestEmailVerification(ctx)
		if st.EmailOTPState != state.OTPRequested {
			if e := st.EmailOTPForm.Error; e != "" {
				fmt.Fprintf(a.out, "[error] %s\n", e)
			}
			a.render()
			return nil
		}
		a.renderNotification()
	}

	otp, err := getSimpleText(a.reader, "Enter the OTP sent to your email", a.out)
	if err != nil {
		return err
	}
	st.EmailOTPForm.OTP = otp

	a.services.Auth.VerifyEmailOTP(ctx)

	if e := st.EmailOTPForm.Error; e != "" {
		fmt.Fprintf(a.out, "[error] %s\n", e)
	}
	a.render()
	return nil
}

// VerifyPhone requests an SMS OTP when none is pending and then prompts for
// the code.
func (a *App) VerifyPhone(ctx context.Context) error {
	st := a.store

	if st.MobileOTPState != state.OTPRequested {
		a.services.Auth.RequestMobileVerification(ctx)
		if st.MobileOTPState != state.OTPRequested {
			if e := st.MobileOTPForm.Error; e != "" {
				fmt.Fprintf(a.out, "[error] %s\n", e)
			}
			a.render()
			return nil
		}
		a.renderNotification()
	}

	otp, err := getSimpleText(a.reader, "Enter the OTP sent to your phone", a.out)
	if err != nil {
		return err
	}
	st.MobileOTPForm.OTP = otp

	a.services.Auth.VerifyMobileOTP(ctx)

	if e := st.MobileOTPForm.Error; e != "" {
		fmt.Fprintf(a.out, "[error] %s\n", e)
	}
	a.render()
	return nil
}

// Forgot walks the three-step password recovery: request an OTP for an email
// address, verify the OTP, then set the new password. The flow keeps its
// place between invocations, so a failed step can be retried with 'forgot'.
func (a *App) Forgot(ctx context.Context) error {
	st := a.store
	form := &st.ForgotPasswordForm
	st.OpenModal(state.ModalForgotPassword)

	if !form.OTPSent {
		email, err := getSimpleText(a.reader, "Enter your account email", a.out)
		if err != nil {
			return err
		}
		form.Email = email

		a.services.Auth.RequestPasswordReset(ctx)
		if form.Error != "" {
			fmt.Fprintf(a.out, "[error] %s\n", form.Error)
			a.render()
			return nil
		}
		if form.Success != "" {
			fmt.Fprintln(a.out, form.Success)
		}
	}

	if !form.OTPVerified {
		otp, err := getSimpleText(a.reader, "Enter the reset OTP", a.out)
		if err != nil {
			return err
		}
		form.OTP = otp

		a.services.Auth.VerifyResetOTP(ctx)
		if form.Error != "" {
			fmt.Fprintf(a.out, "[error] %s\n", form.Error)
			a.render()
			return nil
		}
	}

	password, err := getPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	passwordConfirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	form.Password = password
	form.PasswordConfirm = passwordConfirm

	a.services.Auth.ResetPassword(ctx)
	if form.Error != "" {
		fmt.Fprintf(a.out, "[error] %s\n", form.Error)
		a.render()
		return nil
	}

	if form.Success != "" {
		fmt.Fprintln(a.out, form.Success)
	}
	form.Reset()
	st.ResetPasswordForm.Reset()
	st.CloseModals()
	a.render()
	return nil
}
