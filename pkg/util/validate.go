package util

import (
	"errors"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsEmail validates the syntactic shape of an email address.
func IsEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("invalid email")
	}
	return nil
}
