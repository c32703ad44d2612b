package parsing

import "strings"

// Tokens splits a processed line into its tokens: the text after the first
// '#' is dropped, commas count as whitespace, and the opcode token is
// upper-cased. Blank lines yield nil.
func Tokens(line string) []string {
	uncommented, _, _ := strings.Cut(line, "#")
	tokens := strings.FieldsFunc(uncommented, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == ','
	})
	if len(tokens) == 0 {
		return nil
	}
	tokens[0] = strings.ToUpper(tokens[0])
	return tokens
}
