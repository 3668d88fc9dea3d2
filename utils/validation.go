package utils

import (
	"regexp"
	"strings"
)

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phoneRegex = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

// IsValidName checks 2-50 characters, letters and spaces only.
func IsValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return nameRegex.MatchString(name)
}

// IsValidEmail checks the basic email shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone checks the XXX-XXX-XXXX format.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
