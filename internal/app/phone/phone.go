// Package phone turns free-form phone input into the canonical +7XXXXXXXXXX key
// that identifies a customer everywhere in the service.
package phone

import (
	"net/http"
	"regexp"
	"strings"

	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
)

var canonicalRegex = regexp.MustCompile(`^\+7\d{10}$`)

// Normalize never fails, but its result may still be rejected by Validate.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) >= 11:
		return "+7" + digits[len(digits)-10:]
	case len(digits) == 10:
		return "+7" + digits
	default:
		return "+" + digits
	}
}

func Validate(phone string) error {
	if !canonicalRegex.MatchString(phone) {
		return appErrors.NewWithCode(appErrors.ErrInvalidPhone, "Invalid phone number", http.StatusBadRequest)
	}
	return nil
}

// Resolve normalizes raw input and validates the result.
func Resolve(raw string) (string, error) {
	p := Normalize(raw)
	if err := Validate(p); err != nil {
		return "", err
	}
	return p, nil
}

// Digits returns the phone without the leading plus, the form external APIs expect.
func Digits(phone string) string {
	return strings.TrimPrefix(phone, "+")
}
