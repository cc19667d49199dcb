package console

import "strings"

// tokenDelims is the delimiter set for splitting a command line: space, tab,
// carriage return, line feed and bell.
const tokenDelims = " \t\r\n\a"

func isDelim(r rune) bool {
	return strings.ContainsRune(tokenDelims, r)
}

// splitLine splits line into its whitespace-delimited tokens. At most max
// tokens are returned, but every token in the line is counted so the caller
// can report an accurate argument count even when the vector is full.
func splitLine(line string, max int) (tokens []string, total int) {
	for _, tok := range strings.FieldsFunc(line, isDelim) {
		total++
		if len(tokens) < max {
			tokens = append(tokens, tok)
		}
	}
	return tokens, total
}
