package validator

import (
	"errors"
	"net/mail"
	"strings"
)

// IsEmail performs a syntactic check only. No DNS lookups are made.
func IsEmail(email string) error {
	if email == "" {
		return errors.New("email is empty")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return errors.New("invalid email format")
	}

	domain := strings.ToLower(parts[1])
	if !strings.Contains(domain, ".") {
		return errors.New("email domain has no dot")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("invalid email format")
	}

	return nil
}
