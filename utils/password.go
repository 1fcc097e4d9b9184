package utils

import "regexp"

var (
	hasUpperRe   = regexp.MustCompile(`[A-Z]`)
	hasSpecialRe = regexp.MustCompile(`[\W_]`)
	hasDigitRe   = regexp.MustCompile(`\d`)
)

// IsValidPassword enforces the account password policy: at least 8
// characters with at least one uppercase letter, one special character and
// one digit.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return hasUpperRe.MatchString(password) &&
		hasSpecialRe.MatchString(password) &&
		hasDigitRe.MatchString(password)
}

// PasswordPolicyMessage is the user-facing explanation shown when
// IsValidPassword fails.
const PasswordPolicyMessage = "Password must contain at least one uppercase letter, one special character, one number, and be at least 8 characters long."
