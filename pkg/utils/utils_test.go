package utils

import "testing"

func TestIsEmpty(t *testing.T) {
	cases := map[string]bool{
		"":        true,
		"   ":     true,
		"\t\n":    true,
		"a":       false,
		"  a  ":   false,
		"guest 1": false,
	}
	for input, want := range cases {
		if got := IsEmpty(input); got != want {
			t.Errorf("IsEmpty(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"ivan@example.com", "Ivan.Petrov+tag@mail.ru", "a_b-c@sub.domain.org"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	invalid := []string{"not-an-email", "@example.com", "ivan@", "ivan@example", "ivan example@mail.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestStrToInt64(t *testing.T) {
	if got, err := StrToInt64("42"); err != nil || got != 42 {
		t.Errorf("StrToInt64(\"42\") = %d, %v; want 42, nil", got, err)
	}
	if _, err := StrToInt64("abc"); err == nil {
		t.Error("StrToInt64(\"abc\") expected an error")
	}
	if _, err := StrToInt64(""); err == nil {
		t.Error("StrToInt64(\"\") expected an error")
	}
}
