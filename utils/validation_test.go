package utils

import "testing"

func TestIsValidName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "John Smith", true},
		{"single letter too short", "J", false},
		{"two letters", "Jo", true},
		{"digits rejected", "John3", false},
		{"punctuation rejected", "O'Brien", false},
		{"empty", "", false},
		{"over fifty characters", "Abcdefghij Abcdefghij Abcdefghij Abcdefghij Abcdefg", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidName(tc.input); got != tc.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain address", "john@club.org", true},
		{"plus tag", "john+golf@club.org", true},
		{"missing at sign", "john.club.org", false},
		{"missing local part", "@club.org", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidEmail(tc.input); got != tc.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"dashed format", "555-123-4567", true},
		{"no dashes", "5551234567", false},
		{"too few digits", "555-123-456", false},
		{"letters", "555-abc-4567", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidPhone(tc.input); got != tc.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank("   ") || !IsBlank("\t\n") {
		t.Error("whitespace-only strings should be blank")
	}
	if IsBlank("x") || IsBlank(" x ") {
		t.Error("strings with content should not be blank")
	}
}
