// Package validation provides input validation for user-supplied fields.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// ValidatePassword checks a plaintext password before hashing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("Password must be at least %d characters long", MinPasswordLength)
	}
	return nil
}

// ValidateUsername checks a username against the account rules. Each rule
// violation surfaces as its own message.
func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 20 {
		return fmt.Errorf("Username must be between 3 and 20 characters long")
	}
	if strings.Contains(username, " ") {
		return fmt.Errorf("Username cannot contain spaces")
	}
	if username != strings.ToLower(username) {
		return fmt.Errorf("Username must be lowercase")
	}
	if !alphanumeric.MatchString(username) {
		return fmt.Errorf("Username must only contain letters and numbers")
	}
	return nil
}

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("Invalid email address")
	}
	return nil
}
