package logger

import (
	"strings"
	"testing"
)

// TestSanitizeUnixHomePaths tests masking of home-directory usernames
func TestSanitizeUnixHomePaths(t *testing.T) {
	s := NewSanitizer()

	cases := map[string]string{
		"/home/alice/Dropbox/Datasets":  "/home/***/Dropbox/Datasets",
		"/Users/bob/Library/CloudStorage": "/Users/***/Library/CloudStorage",
		"no paths here":                 "no paths here",
	}

	for input, want := range cases {
		if got := s.Sanitize(input); got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestSanitizeWindowsPaths tests drive-letter and UNC masking
func TestSanitizeWindowsPaths(t *testing.T) {
	s := NewSanitizer()

	got := s.Sanitize(`C:\Users\carol\Dropbox`)
	if strings.Contains(got, "carol") {
		t.Errorf("username leaked: %q", got)
	}

	got = s.Sanitize(`\\server\share\Users\dave\file`)
	if strings.Contains(got, "dave") {
		t.Errorf("UNC username leaked: %q", got)
	}
}

// TestSanitizeArgs tests that only string values are rewritten
func TestSanitizeArgs(t *testing.T) {
	s := NewSanitizer()

	args := s.SanitizeArgs([]any{"path", "/home/alice/data", "count", 7})

	if args[1] != "/home/***/data" {
		t.Errorf("args[1] = %v", args[1])
	}
	if args[3] != 7 {
		t.Errorf("args[3] = %v, want untouched int", args[3])
	}
}
