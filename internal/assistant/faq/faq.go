// Package faq holds the canned guest-question answers. Matching is a
// substring scan over the normalized message, first hit wins, so entry
// order is part of the behavior.
package faq

import "strings"

type Entry struct {
	Keyword string
	Answer  string
}

var entries = []Entry{
	{"check-in", "Check-in is 2 PM, check-out is 11 AM. Need a late check-out? Reply ‘late’ for options."},
	{"beach", "We’re 200 meters from the beach—a quick 3-minute walk!"},
	{"wifi", "Yes, free Wi-Fi is available in all rooms and common areas."},
	{"price", "Rates start at €40/night. Tell me your dates (e.g., 20-22 June) to check availability!"},
	{"parking", "Yes, free parking is on-site. Limited spots—book early!"},
	{"pets", "Sorry, no pets allowed. Need pet-friendly options? Reply ‘pets’ for suggestions."},
	{"ac", "Yes, all rooms have AC—perfect for those hot summer days!"},
	{"breakfast", "Breakfast is €5 extra per person. Want to add it? Reply ‘yes’."},
	{"airport", "From Tirana Airport, it’s a 1-hour drive. Taxis cost ~€30, or reply ‘shuttle’ for our €15 pickup option."},
	{"cancel", "Cancellations are free up to 48 hours before arrival. Booked already? Reply ‘cancel’ to check."},
}

// Lookup returns the answer for the first keyword contained in the
// normalized message, or "" when nothing matches.
func Lookup(normalizedMessage string) string {
	for _, entry := range entries {
		if strings.Contains(normalizedMessage, entry.Keyword) {
			return entry.Answer
		}
	}
	return ""
}
