package pdfdoc

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var boldTokens = []string{"bold", "black", "heavy", "semibold", "demibold"}

var italicTokens = []string{"italic", "oblique"}

// IsBoldFont reports whether a font name carries a bold weight token.
// Subset prefixes ("ABCDEF+Helvetica-Bold") and separator styles vary by
// producer, so matching is a lowercase substring check.
func IsBoldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, token := range boldTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// IsItalicFont reports whether a font name carries an italic token
func IsItalicFont(name string) bool {
	lower := strings.ToLower(name)
	for _, token := range italicTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// CleanText normalizes decoder text: NFKC folding (ligatures, fullwidth
// forms), control characters stripped, surrounding whitespace trimmed.
func CleanText(s string) string {
	s = norm.NFKC.String(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}
