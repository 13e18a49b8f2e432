package tools

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// CheckPasswordLength returns "password" when the password is too short.
func CheckPasswordLength(password string) string {
	if len(password) < 8 {
		return "password"
	}
	return ""
}
