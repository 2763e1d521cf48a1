package faq

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "keyword inside sentence",
			message: "do you have wifi in the rooms?",
			want:    "Yes, free Wi-Fi is available in all rooms and common areas.",
		},
		{
			name:    "hyphenated keyword",
			message: "when is check-in?",
			want:    "Check-in is 2 PM, check-out is 11 AM. Need a late check-out? Reply ‘late’ for options.",
		},
		{
			name:    "first entry wins on multiple matches",
			message: "is parking near the beach?",
			want:    "We’re 200 meters from the beach—a quick 3-minute walk!",
		},
		{
			name:    "no match",
			message: "hello there",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.message); got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestLookupSubstringQuirk(t *testing.T) {
	// "ac" matches inside larger words; callers live with this.
	got := Lookup("is the terrace accessible")
	if !strings.Contains(got, "AC") {
		t.Errorf("expected the ac entry via substring match, got %q", got)
	}
}
