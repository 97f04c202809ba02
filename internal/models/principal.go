package models

// Principal is the authentication state of the current session's user.
// It resets to the zero value on logout; the session's tickets do not.
type Principal struct {
	MobileNumber     string `json:"mobile_number"`
	VerificationCode int    `json:"-"`
	CodeSent         bool   `json:"code_sent"`
	Verified         bool   `json:"verified"`
}

// IsAdmin reports whether the principal holds the administrator role:
// verified and bound to the configured administrator number.
func (p Principal) IsAdmin(adminMobile string) bool {
	return p.Verified && p.MobileNumber == adminMobile
}
