package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckCredentials reports whether email and password match the configured admin.
// An empty hash never matches.
func CheckCredentials(adminEmail, passwordHash, email, password string) bool {
	if adminEmail == "" || passwordHash == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(email))),
		[]byte(strings.ToLower(adminEmail)),
	) == 1
	// Always run bcrypt so a wrong email costs the same as a wrong password.
	passOK := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
	return emailOK && passOK
}
