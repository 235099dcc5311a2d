// Package phone renders directory phone numbers for speech synthesis and for
// text, and normalizes caller numbers to E.164.
package phone

import (
	"regexp"
	"strings"

	dErrors "hotline/pkg/domain-errors"
)

const emergencyNumber = "911"

// Digits strips everything but digits and drops the country code of an
// 11-digit number that starts with 1.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	return digits
}

// ForSpeech renders a number for text-to-speech: each digit separated by a
// space and the 3-3-4 groups separated by commas, so the voice pauses
// between them. "911" becomes "nine one one". Anything that is not ten
// digits after normalization is returned unchanged with ok=false.
//
//	ForSpeech("+15093350711") // "5 0 9, 3 3 5, 0 7 1 1", true
func ForSpeech(raw string) (string, bool) {
	digits := Digits(raw)
	if digits == emergencyNumber {
		return "nine one one", true
	}
	if len(digits) != 10 {
		return raw, false
	}
	return spaced(digits[:3]) + ", " + spaced(digits[3:6]) + ", " + spaced(digits[6:]), true
}

// ForText renders a number as XXX-XXX-XXXX. "911" passes through; anything
// else that is not ten digits is returned unchanged with ok=false.
func ForText(raw string) (string, bool) {
	digits := Digits(raw)
	if digits == emergencyNumber {
		return emergencyNumber, true
	}
	if len(digits) != 10 {
		return raw, false
	}
	return digits[:3] + "-" + digits[3:6] + "-" + digits[6:], true
}

func spaced(digits string) string {
	return strings.Join(strings.Split(digits, ""), " ")
}

var e164US = regexp.MustCompile(`^\+1[2-9]\d{9}$`)

// IsValidE164 accepts North American numbers in +1NXXNXXXXXX form.
func IsValidE164(number string) bool {
	return e164US.MatchString(number)
}

// NormalizeE164 converts a caller-supplied number to +1XXXXXXXXXX.
func NormalizeE164(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", dErrors.Field("phone", "is required")
	}
	digits := Digits(trimmed)
	if len(digits) != 10 {
		return "", dErrors.Field("phone", "must be a 10-digit North American number")
	}
	number := "+1" + digits
	if !IsValidE164(number) {
		return "", dErrors.Field("phone", "is not a valid North American number")
	}
	return number, nil
}
