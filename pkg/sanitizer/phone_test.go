package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "whatsapp prefix stripped",
			input: "whatsapp:+4915112345678",
			want:  "+4915112345678",
		},
		{
			name:  "already e164",
			input: "+4915112345678",
			want:  "+4915112345678",
		},
		{
			name:  "surrounding whitespace",
			input: "  whatsapp:+4915112345678 ",
			want:  "+4915112345678",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "prefix only",
			input: "whatsapp:",
			want:  "",
		},
		{
			name:  "garbage",
			input: "not-a-number",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
