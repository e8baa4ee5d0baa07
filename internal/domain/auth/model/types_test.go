package model

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestParseEmailAccepts(t *testing.T) {
	rawEmails := []string{
		"guillem@letsgetrusty.com",
		"other@letsgetrusty.com",
		"person@gmail.com",
	}

	for _, raw := range rawEmails {
		email, err := ParseEmail(raw)
		if err != nil {
			t.Errorf("ParseEmail(%q) returned error: %v", raw, err)
			continue
		}
		if email.Raw() != raw {
			t.Errorf("Raw() = %q, want round-trip of %q", email.Raw(), raw)
		}
	}
}

func TestParseEmailRejects(t *testing.T) {
	rawEmails := []string{
		"space_in_user_name @domain",
		"@only_domain",
		"only_user_name@",
		"person@ space_in_domain",
		"no_separation",
		"",
	}

	for _, raw := range rawEmails {
		if _, err := ParseEmail(raw); err == nil {
			t.Errorf("ParseEmail(%q) should have failed", raw)
		}
	}
}

func TestEmailRedactsOnFormat(t *testing.T) {
	email, err := ParseEmail("secret@example.com")
	if err != nil {
		t.Fatalf("ParseEmail error: %v", err)
	}
	formatted := fmt.Sprintf("%v %s", email, email)
	if strings.Contains(formatted, "secret@example.com") {
		t.Errorf("default formatting leaked the address: %q", formatted)
	}
}

func TestParsePasswordAccepts(t *testing.T) {
	rawPasswords := []string{
		"gotSomeUpperAndLower",
		"GotSpecial!Char",
		"Exactly8",
	}

	for _, raw := range rawPasswords {
		if _, err := ParsePassword(raw); err != nil {
			t.Errorf("ParsePassword(%q) returned error: %v", raw, err)
		}
	}
}

func TestParsePasswordRejects(t *testing.T) {
	rawPasswords := []string{
		"short",
		"LOWERCASE",
		"UPPERCASE",
		"****",
		"123",
		"alllowercasebutlong",
		"ALLUPPERCASEBUTLONG",
	}

	for _, raw := range rawPasswords {
		if _, err := ParsePassword(raw); err == nil {
			t.Errorf("ParsePassword(%q) should have failed", raw)
		}
	}
}

// Randomized candidates partitioned by rule satisfaction: the parse outcome
// must agree with an independent check of the rule.
func TestParsePasswordRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcdefABCDEF012345!?")

	satisfies := func(s string) bool {
		if len(s) < 8 {
			return false
		}
		var upper, lower bool
		for _, c := range s {
			if c >= 'A' && c <= 'Z' {
				upper = true
			}
			if c >= 'a' && c <= 'z' {
				lower = true
			}
		}
		return upper && lower
	}

	for i := 0; i < 500; i++ {
		length := rng.Intn(14)
		var b strings.Builder
		for j := 0; j < length; j++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		candidate := b.String()

		_, err := ParsePassword(candidate)
		if satisfies(candidate) && err != nil {
			t.Errorf("ParsePassword(%q) = %v, want success", candidate, err)
		}
		if !satisfies(candidate) && err == nil {
			t.Errorf("ParsePassword(%q) succeeded, want failure", candidate)
		}
	}
}

func TestNewLoginAttemptIDParsesBack(t *testing.T) {
	id := NewLoginAttemptID()
	parsed, err := ParseLoginAttemptID(id.Raw())
	if err != nil {
		t.Fatalf("generated attempt id failed to parse: %v", err)
	}
	if parsed.Raw() != id.Raw() {
		t.Errorf("round-trip mismatch: %q vs %q", parsed.Raw(), id.Raw())
	}
}

func TestParseLoginAttemptIDRejects(t *testing.T) {
	rawIDs := []string{"", "not-a-uuid", "123456", strings.Repeat("a", 36)}
	for _, raw := range rawIDs {
		if _, err := ParseLoginAttemptID(raw); err == nil {
			t.Errorf("ParseLoginAttemptID(%q) should have failed", raw)
		}
	}
}

func TestNewTwoFACodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := NewTwoFACode()
		if err != nil {
			t.Fatalf("NewTwoFACode error: %v", err)
		}
		if _, err := ParseTwoFACode(code.Raw()); err != nil {
			t.Errorf("generated code %q failed to parse: %v", code.Raw(), err)
		}
	}
}

func TestParseTwoFACodeRejects(t *testing.T) {
	rawCodes := []string{"", "12345", "1234567", "12345a", "abcdef", " 12345"}
	for _, raw := range rawCodes {
		if _, err := ParseTwoFACode(raw); err == nil {
			t.Errorf("ParseTwoFACode(%q) should have failed", raw)
		}
	}
}

func TestParseTwoFACodeKeepsLeadingZeros(t *testing.T) {
	code, err := ParseTwoFACode("000042")
	if err != nil {
		t.Fatalf("ParseTwoFACode error: %v", err)
	}
	if code.Raw() != "000042" {
		t.Errorf("leading zeros lost: %q", code.Raw())
	}
}
