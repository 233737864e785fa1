// Package identifier converts human-readable folder names into canonical
// lookup keys: lowercase letters, digits, and underscores, never starting
// with a digit and never empty.
package identifier

import (
	"fmt"
	"strings"
	"unicode"
)

// Placeholder is substituted when normalization would yield an empty
// identifier (e.g. a name made entirely of punctuation).
const Placeholder = "folder"

// Normalize converts a folder name to a canonical identifier.
//
// Rules:
//   - letters are lowercased
//   - every run of characters that are not a letter, digit, or underscore
//     becomes a single underscore
//   - leading and trailing underscores are stripped
//   - a leading run of digits is moved to the end ("2023_Results" ->
//     "results_2023"); an all-digit name is prefixed with the placeholder
//   - an empty result becomes the placeholder
//
// Normalize is total and has no side effects. It does not deduplicate;
// uniqueness within a discovery batch is the caller's concern (see Uniquer).
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	lastUnderscore := false
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	name := strings.Trim(b.String(), "_")
	if name == "" {
		return Placeholder
	}

	// Identifiers must not start with a digit. Leading digit runs are
	// transposed to the end, not merely prefixed over; this repeats until
	// a letter or underscore-free digit sequence remains
	// ("2023_06_results" -> "results_2023_06").
	var moved []string
	for name != "" && isDigit(rune(name[0])) {
		i := 0
		for i < len(name) && isDigit(rune(name[i])) {
			i++
		}
		moved = append(moved, name[:i])
		name = strings.TrimLeft(name[i:], "_")
	}
	if name == "" {
		// All-digit names keep their digits behind the placeholder.
		name = Placeholder
	}
	if len(moved) > 0 {
		name = name + "_" + strings.Join(moved, "_")
	}

	return name
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Uniquer allocates collision-free identifiers within a single discovery
// batch. The first claimant of an identifier keeps it bare; later
// claimants receive a numeric suffix (_2, _3, ...).
type Uniquer struct {
	seen map[string]int
}

// NewUniquer creates an empty Uniquer
func NewUniquer() *Uniquer {
	return &Uniquer{seen: make(map[string]int)}
}

// Claim normalizes raw and returns an identifier unused so far in this batch
func (u *Uniquer) Claim(raw string) string {
	id := Normalize(raw)

	n := u.seen[id]
	u.seen[id] = n + 1
	if n == 0 {
		return id
	}

	// Suffixed forms can themselves collide with real folder names
	// (e.g. "data" and "data_2" both on disk), so they are claimed too.
	for {
		candidate := fmt.Sprintf("%s_%d", id, n+1)
		if u.seen[candidate] == 0 {
			u.seen[candidate] = 1
			return candidate
		}
		n++
	}
}
