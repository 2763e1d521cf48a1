package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// WhatsApp webhooks prefix the phone with the channel name,
// e.g. "whatsapp:+4915112345678".
const whatsappPrefix = "whatsapp:"

var fallbackRegions = []string{
	"DE",
	"AL",
	"US",
}

// NormalizePhone strips the channel prefix and normalizes the number to
// E.164. Returns "" when the number cannot be parsed in any supported
// region.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, whatsappPrefix)

	if phone == "" {
		return ""
	}

	for _, region := range fallbackRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return ""
}
