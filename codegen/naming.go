package codegen

import "strings"

// SanitizeToken converts an arbitrary string into a filesystem-safe token,
// used to derive output file fragments from user input such as output base
// names.
//
// The returned token:
//   - contains only [a-z0-9_]
//   - never starts/ends with '_' and never contains repeated "__"
//
// When the sanitized result is empty, SanitizeToken returns fallback.
func SanitizeToken(name, fallback string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, name)
	s = strings.Trim(s, "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	if s == "" {
		return fallback
	}
	return s
}
