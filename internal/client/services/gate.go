package services

import (
	"context"

	"blogcli/internal/client/state"
)

// Decision is the outcome of evaluating the verification gate for a gated
// action (create/edit/delete blog, comment, reply).
type Decision int

const (
	// PromptLogin blocks the action and asks the user to sign in.
	PromptLogin Decision = iota
	// Proceed allows the gated action.
	Proceed
	// PromptAddEmail opens the add-email dialog. Email is the fallback
	// channel whenever no usable contact method exists.
	PromptAddEmail
	// RequestEmailOTP fires an email verification OTP for the account's
	// existing address.
	RequestEmailOTP
	// RequestMobileOTP fires an SMS verification OTP for the account's
	// existing phone number.
	RequestMobileOTP
)

var decisionNames = map[Decision]string{
	PromptLogin:      "prompt-login",
	Proceed:          "proceed",
	PromptAddEmail:   "prompt-add-email",
	RequestEmailOTP:  "request-email-otp",
	RequestMobileOTP: "request-mobile-otp",
}

func (d Decision) String() string {
	if n, ok := decisionNames[d]; ok {
		return n
	}
	return "unknown"
}

// EvaluateGate decides, for the given session, whether a gated action may
// proceed or which remediation to run first. Pure over session state; it
// never mutates anything. The branch order is policy: email remediation
// takes precedence over phone remediation, and a user with no contact
// method at all is sent to add an email regardless of whether SMS is
// enabled.
func EvaluateGate(sess *state.Session) Decision {
	if !sess.Authenticated {
		return PromptLogin
	}
	if sess.IsVerified() {
		return Proceed
	}
	if !sess.HasEmail && !sess.HasPhone {
		return PromptAddEmail
	}
	if sess.HasEmail && !sess.EmailVerified {
		return RequestEmailOTP
	}
	if sess.HasPhone && !sess.MobileVerified && sess.SMSEnabled {
		return RequestMobileOTP
	}
	return PromptAddEmail
}

// ensureVerified evaluates the gate and executes the remediation for a
// blocked decision. It reports whether the caller may proceed.
//
// warn is the warning shown when the session is unverified ("" suppresses
// it); emailPrompt is preset as the add-email form error when that dialog
// opens ("" for none).
func (s *Services) ensureVerified(ctx context.Context, warn, emailPrompt string) bool {
	sess := &s.store.Session

	switch EvaluateGate(sess) {
	case Proceed:
		return true

	case PromptLogin:
		s.store.Notifier.Show(state.NotifyError, "Please login first")

	case RequestEmailOTP:
		if warn != "" {
			s.store.Notifier.Show(state.NotifyWarning, warn)
		}
		s.Auth.RequestEmailVerification(ctx)

	case RequestMobileOTP:
		if warn != "" {
			s.store.Notifier.Show(state.NotifyWarning, warn)
		}
		s.Auth.RequestMobileVerification(ctx)

	case PromptAddEmail:
		if warn != "" {
			s.store.Notifier.Show(state.NotifyWarning, warn)
		}
		if sess.SMSEnabled {
			s.store.Notifier.Show(state.NotifyInfo, "Add an email or phone number for verification")
		}
		s.Users.OpenEmailModal(emailPrompt)
	}
	return false
}
