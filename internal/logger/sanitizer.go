package logger

import (
	"fmt"
	"regexp"
)

// Sanitizer masks personally identifying path segments in log output.
// This tool logs filesystem paths constantly, and those paths embed the
// user's account name; masking keeps shared logs shareable.
//
// Only string messages and string values are rewritten. Sensitive data
// hidden inside non-string values is not caught.
type Sanitizer struct {
	rules []sanitizeRule
}

type sanitizeRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// NewSanitizer builds a sanitizer with the default rules
func NewSanitizer() *Sanitizer {
	return &Sanitizer{rules: defaultSanitizeRules()}
}

func defaultSanitizeRules() []sanitizeRule {
	return []sanitizeRule{
		// Windows user paths, any drive letter or UNC share
		{regexp.MustCompile(`(?i)[A-Z]:\\Users\\[^\\]+`), `***:\Users\***`},
		{regexp.MustCompile(`(?i)\\\\[^\\]+\\[^\\]+\\Users\\[^\\]+`), `\\***\***\Users\***`},

		// Unix home directories
		{regexp.MustCompile(`/home/[^/]+`), "/home/***"},
		{regexp.MustCompile(`/Users/[^/]+`), "/Users/***"},
	}
}

// Sanitize applies all rules to a string
func (s *Sanitizer) Sanitize(input string) string {
	for _, rule := range s.rules {
		input = rule.pattern.ReplaceAllString(input, rule.replacement)
	}
	return input
}

// SanitizeArgs applies rules to string values in a key-value argument list
func (s *Sanitizer) SanitizeArgs(args []any) []any {
	sanitized := make([]any, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			sanitized[i] = s.Sanitize(v)
		case fmt.Stringer:
			sanitized[i] = s.Sanitize(v.String())
		default:
			sanitized[i] = arg
		}
	}
	return sanitized
}
