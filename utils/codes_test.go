package utils

import (
	"strings"
	"testing"
)

func TestGenerateConfirmationID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateConfirmationID()
		if err != nil {
			t.Fatalf("GenerateConfirmationID: %v", err)
		}
		if !strings.HasPrefix(code, "BK") {
			t.Fatalf("code %q missing BK prefix", code)
		}
		if len(code) != 10 {
			t.Fatalf("code %q has length %d, want 10", code, len(code))
		}
		for _, c := range code[2:8] {
			if c < '0' || c > '9' {
				t.Fatalf("code %q: time block must be digits", code)
			}
		}
		for _, c := range code[8:] {
			if !strings.ContainsRune(confirmationCharset, c) {
				t.Fatalf("code %q: suffix outside charset", code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("codes never vary")
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CODES_TEST_KEY", "set")
	if got := EnvOrDefault("CODES_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("got %q, want set", got)
	}
	t.Setenv("CODES_TEST_KEY", "   ")
	if got := EnvOrDefault("CODES_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("blank env should fall back, got %q", got)
	}
	if got := EnvOrDefault("CODES_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("missing env should fall back, got %q", got)
	}
}
