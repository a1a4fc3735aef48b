package valueobjects

import (
	"fmt"
	"net/mail"
	"strings"
)

const maxEmailLength = 255

// Email is a normalized (trimmed, lower-cased) address. Uniqueness checks
// compare normalized values.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return Email{}, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > maxEmailLength {
		return Email{}, fmt.Errorf("email cannot exceed %d characters", maxEmailLength)
	}
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return Email{}, fmt.Errorf("invalid email format: %s", value)
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
