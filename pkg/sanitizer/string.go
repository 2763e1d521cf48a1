package sanitizer

import "strings"

// NormalizeMessage lowers the message body, trims it, and collapses runs
// of whitespace so keyword matching and trigger phrases behave the same
// regardless of how the guest typed them.
func NormalizeMessage(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
