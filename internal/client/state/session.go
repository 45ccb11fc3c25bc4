package state

// UserType distinguishes directory-backed accounts from local ones; some
// verification flows differ between the two.
type UserType string

const (
	UserTypeLocal UserType = "local"
	UserTypeLDAP  UserType = "ldap"
)

// Session is the client's cached view of the authenticated user's identity
// and verification status. It is created on successful login or auth-check
// and reset on logout or auth-check failure. Only the gateway services
// mutate it; presentation code reads it.
type Session struct {
	UserID         int64
	Username       string
	UserType       UserType
	Authenticated  bool
	EmailVerified  bool
	MobileVerified bool
	HasEmail       bool
	HasPhone       bool
	SMSEnabled     bool
	Email          string
	Phone          string
}

// IsVerified reports whether at least one contact channel is verified.
// Gated actions require Authenticated && IsVerified().
func (s *Session) IsVerified() bool {
	return s.EmailVerified || s.MobileVerified
}

// Reset returns the session to the unauthenticated default.
func (s *Session) Reset() {
	*s = Session{}
}
