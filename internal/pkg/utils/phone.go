package utils

import "strings"

// StripPhoneDigits removes everything but digits from a phone input so
// "090-1234-5678" and "090 1234 5678" validate the same way.
func StripPhoneDigits(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
