package sanitizer

import "testing"

func TestSanitizeGuestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  Rahim Uddin  ", want: "Rahim Uddin"},
		{name: "multiple spaces between words", input: "Rahim    Uddin", want: "Rahim Uddin"},
		{name: "tabs and newlines", input: "Rahim\t\nUddin", want: "Rahim Uddin"},
		{name: "empty string", input: "", want: ""},
		{name: "only whitespace", input: "   \t\n  ", want: ""},
		{name: "preserve special characters", input: " O'Neil & Co™ ", want: "O'Neil & Co™"},
		{name: "zero width joiner", input: "Rahim\u200d Uddin", want: "Rahim Uddin"},
		{name: "bengali characters", input: " রহিম  উদ্দিন ", want: "রহিম উদ্দিন"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeGuestName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeGuestName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := SanitizeGuestName(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestSanitizeQuery(t *testing.T) {
	if got := SanitizeQuery("  RAHIM   Uddin "); got != "rahim uddin" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "local bangladeshi mobile", input: "01712345678", want: "+8801712345678"},
		{name: "already E.164", input: "+8801712345678", want: "+8801712345678"},
		{name: "with spaces and dashes", input: " 017-1234 5678 ", want: "+8801712345678"},
		{name: "foreign number with plus", input: "+972541234567", want: "+972541234567"},
		{name: "empty string", input: "", want: ""},
		{name: "only whitespace", input: "   ", want: ""},
		{name: "not a phone number is kept", input: " guest@example.com ", want: "guest@example.com"},
		{name: "too short is kept", input: "12", want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhoneNormalizer_Regions(t *testing.T) {
	il := NewPhoneNormalizer([]string{"IL"})
	if got := il.Normalize("054-123-4567"); got != "+972541234567" {
		t.Errorf("expected israeli E.164, got %q", got)
	}

	defaults := NewPhoneNormalizer(nil)
	if got := defaults.Normalize("01712345678"); got != "+8801712345678" {
		t.Errorf("expected default region BD, got %q", got)
	}
}
