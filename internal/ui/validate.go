package ui

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is the first rule a draft breaks. Message is shown to
// the operator as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks a draft before it is sent and stops at the first failure.
func Validate(f Form) *ValidationError {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return &ValidationError{Field: "name", Message: "Name is required."}
	case strings.TrimSpace(f.Email) == "":
		return &ValidationError{Field: "email", Message: "Email is required."}
	case !emailPattern.MatchString(strings.TrimSpace(f.Email)):
		return &ValidationError{Field: "email", Message: "Please enter a valid email address."}
	case strings.TrimSpace(f.MembershipType) == "":
		return &ValidationError{Field: "membership_type", Message: "Membership type is required."}
	case strings.TrimSpace(f.Country) == "":
		return &ValidationError{Field: "country", Message: "Country is required."}
	case !validAge(f.Age):
		return &ValidationError{Field: "age", Message: "Age must be a positive number."}
	case !validPhone(f.EmergencyPhone):
		return &ValidationError{Field: "emergency_phone", Message: "Emergency phone must contain 10 to 15 digits."}
	case !validPhone(f.MedicalContactPhone):
		return &ValidationError{Field: "medical_contact_phone", Message: "Medical contact phone must contain 10 to 15 digits."}
	}
	return nil
}

// validAge accepts an empty value; otherwise it must be a finite number > 0.
func validAge(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return n > 0
}

// validPhone accepts an empty value; otherwise it counts only the digits.
func validPhone(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}
