// Package validate contains pure input validators used by the gateway
// services before any network call is made. The checks are deliberately
// permissive: the server remains the validator of record.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// RFC-lite: single '@', at least one '.' after it, no whitespace.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// E.164-shaped, not E.164-validated.
	phoneRe = regexp.MustCompile(`^\+\d+$`)

	letterRe = regexp.MustCompile(`[A-Za-z]`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// IsValidEmail reports whether email looks like an address we can send to.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhone reports whether phone is a '+' followed only by digits.
func IsValidPhone(phone string) bool {
	return strings.HasPrefix(phone, "+") && phoneRe.MatchString(phone)
}

// PasswordResult is the outcome of a password strength check. Score ranges
// 0–6; Feedback is a user-facing message (the failure reason when invalid,
// a strength band when valid).
type PasswordResult struct {
	IsValid  bool
	Score    int
	Feedback string
}

// ValidatePassword applies the platform's password policy. Rules, in order:
// length < 4 is too short; length < 8 is too weak; a password must contain
// both letters and numbers. Valid passwords score 1 baseline, +1 for
// length >= 10, and +1 each for uppercase, lowercase, digit, and symbol.
func ValidatePassword(password string) PasswordResult {
	var result PasswordResult

	if len(password) < 4 {
		result.Feedback = "Password is too short"
		return result
	}

	if len(password) < 8 {
		result.Feedback = "Password must be at least 8 characters"
		return result
	}

	if !letterRe.MatchString(password) || !digitRe.MatchString(password) {
		result.Feedback = "Password must contain both letters and numbers"
		return result
	}

	result.Score++
	if len(password) >= 10 {
		result.Score++
	}
	if upperRe.MatchString(password) {
		result.Score++
	}
	if lowerRe.MatchString(password) {
		result.Score++
	}
	if digitRe.MatchString(password) {
		result.Score++
	}
	if symbolRe.MatchString(password) {
		result.Score++
	}

	switch {
	case result.Score < 3:
		result.Feedback = "Weak - Consider using a stronger password"
	case result.Score < 5:
		result.Feedback = "Medium - Decent password strength"
	default:
		result.Feedback = "Strong - Excellent password strength"
	}

	result.IsValid = true
	return result
}

// FieldRule describes the constraints for one form field. Rules are
// evaluated in declaration order and, per field, in the order: required,
// minLength, email, phone, password, match.
type FieldRule struct {
	Field      string
	Label      string
	Required   bool
	MinLength  int
	Email      bool
	Phone      bool
	Password   bool
	Match      string // name of another field whose value must be equal
	MatchLabel string
}

// FormResult reports per-field violations. First holds the first violated
// rule's message in declaration order, for forms that surface one error.
type FormResult struct {
	IsValid bool
	Errors  map[string]string
	First   string
}

// ValidateForm evaluates rules against form values. Only the first violated
// rule per field is reported.
func ValidateForm(form map[string]string, rules []FieldRule) FormResult {
	errors := make(map[string]string)
	first := ""

	record := func(field, msg string) {
		errors[field] = msg
		if first == "" {
			first = msg
		}
	}

	for _, r := range rules {
		value := form[r.Field]
		label := r.Label
		if label == "" {
			label = r.Field
		}

		if r.Required && strings.TrimSpace(value) == "" {
			record(r.Field, fmt.Sprintf("%s is required", label))
			continue
		}

		if value == "" {
			continue
		}

		if r.MinLength > 0 && len(value) < r.MinLength {
			record(r.Field, fmt.Sprintf("%s must be at least %d characters", label, r.MinLength))
			continue
		}

		if r.Email && !IsValidEmail(value) {
			record(r.Field, "Please enter a valid email address")
			continue
		}

		if r.Phone && !IsValidPhone(value) {
			record(r.Field, "Phone number must be in E.164 format (e.g., +1234567890)")
			continue
		}

		if r.Password {
			if pr := ValidatePassword(value); !pr.IsValid {
				record(r.Field, pr.Feedback)
				continue
			}
		}

		if r.Match != "" && form[r.Match] != value {
			matchLabel := r.MatchLabel
			if matchLabel == "" {
				matchLabel = r.Match
			}
			record(r.Field, fmt.Sprintf("%s does not match %s", label, matchLabel))
		}
	}

	return FormResult{IsValid: len(errors) == 0, Errors: errors, First: first}
}
