package console

import (
	"strings"

	"github.com/samber/lo"
)

// handleTab attempts completion of the in-progress first word against the
// command table. Only the command name is completable: once the line
// contains a space the request is rejected with a bell. A unique match is
// completed inline with a trailing space; multiple matches are extended to
// their longest common prefix, or listed when no further extension is
// possible.
func (c *Console) handleTab() {
	word := c.buf.String()
	if strings.Contains(word, " ") {
		c.bell()
		return
	}
	if word == "" {
		return
	}

	matches := lo.FilterMap(c.commands, func(cmd Command, _ int) (string, bool) {
		return cmd.Name, strings.HasPrefix(cmd.Name, word)
	})

	switch len(matches) {
	case 0:
		c.bell()

	case 1:
		// Unique match: complete the name and a trailing separator in one go.
		suffix := matches[0][len(word):] + " "
		if !c.buf.Append(suffix) {
			c.bell()
			return
		}
		c.writeString(suffix)

	default:
		lcp := longestCommonPrefix(matches)
		if len(lcp) > len(word) {
			// Still ambiguous, so no trailing space.
			suffix := lcp[len(word):]
			if !c.buf.Append(suffix) {
				c.bell()
				return
			}
			c.writeString(suffix)
			return
		}

		// Nothing left to extend: list the candidates and redraw the line.
		c.newline()
		c.writeString(strings.Join(matches, "  "))
		c.printPrompt()
		c.writeString(c.buf.String())
	}
}

// longestCommonPrefix returns the longest string that is a leading
// substring of every name. The slice must hold at least one name.
func longestCommonPrefix(names []string) string {
	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
