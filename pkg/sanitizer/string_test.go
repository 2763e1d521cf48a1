package sanitizer

import "testing"

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase and trim",
			input: "  Book 20-22 June  ",
			want:  "book 20-22 june",
		},
		{
			name:  "collapse internal whitespace",
			input: "book   20-22\t June",
			want:  "book 20-22 june",
		},
		{
			name:  "single word",
			input: "YES",
			want:  "yes",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: " \t\n ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMessage(tt.input); got != tt.want {
				t.Errorf("NormalizeMessage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
