// Package validation holds the input rules shared by forms and services:
// email syntax, password strength, phone numbers, zip codes and clock times.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest accepted password, counted in characters
const MinPasswordLength = 8

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	phoneStrip   = strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "")
)

// New returns a validator with the portal's custom tags registered:
// email_syntax, strong_password, phone, zipcode, clock and weekday.
func New() *validator.Validate {
	v := validator.New()
	register := func(tag string, fn func(string) bool) {
		// RegisterValidation only fails on an empty tag or nil func
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
	}
	register("email_syntax", ValidEmail)
	register("strong_password", ValidPassword)
	register("phone", ValidPhone)
	register("zipcode", ValidZipCode)
	register("clock", func(s string) bool {
		_, err := NormalizeClock(s)
		return err == nil
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		d := fl.Field().Int()
		return d >= 1 && d <= 7
	})
	return v
}

// ValidEmail checks the syntax of an email address
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword checks password strength: at least eight characters with a
// lowercase letter, an uppercase letter, a digit and a special character,
// and no whitespace.
func ValidPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return false
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case r == '_' || !(unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)):
			special = true
		}
	}
	return lower && upper && digit && special
}

// NormalizePhone strips separators and a leading US country code, returning
// the ten remaining digits.
func NormalizePhone(phone string) (string, bool) {
	digits := phoneStrip.Replace(strings.TrimSpace(phone))
	digits = strings.TrimPrefix(digits, "+")
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return digits, true
}

// ValidPhone checks for a ten digit US phone number
func ValidPhone(phone string) bool {
	_, ok := NormalizePhone(phone)
	return ok
}

// ValidZipCode checks for a five digit or ZIP+4 code
func ValidZipCode(zip string) bool {
	return zipPattern.MatchString(zip)
}

// NormalizeClock parses a 24h time such as "9:05" or "09:05" and returns it
// zero padded as "HH:MM", so string order matches chronological order.
func NormalizeClock(s string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Format("15:04"), nil
}
