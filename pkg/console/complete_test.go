package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected string
	}{
		{"single", []string{"read"}, "read"},
		{"shared prefix", []string{"read", "reset"}, "re"},
		{"identical", []string{"run", "run"}, "run"},
		{"no common", []string{"read", "stop"}, ""},
		{"one is prefix of other", []string{"reboot", "reb"}, "reb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, longestCommonPrefix(tt.names))
		})
	}
}

func TestTabUniqueMatchCompletesInline(t *testing.T) {
	rec := &recorder{}
	c, s := newTestConsole(t, []Command{
		rec.command("read", 1),
		rec.command("reset", 0),
		rec.command("run", 0),
	}, Options{})

	s.feed(c, "rea\t")
	// Echoed input plus the completed suffix and trailing separator.
	assert.Equal(t, "read ", c.buf.String())
	assert.Equal(t, "read ", s.out.String())

	// The completed line dispatches normally.
	s.feed(c, "\r")
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []string{"read"}, rec.calls[0])
}

func TestTabExtendsToLongestCommonPrefix(t *testing.T) {
	c, s := newTestConsole(t, testTable("rebuild", "reboot"), Options{})

	s.feed(c, "r\t")
	// Extended to "reb" with no trailing space, still ambiguous.
	assert.Equal(t, "reb", c.buf.String())
	assert.Equal(t, "reb", s.out.String())
}

func TestTabListsOptionsWhenNoExtensionPossible(t *testing.T) {
	c, s := newTestConsole(t, testTable("read", "reset", "run"), Options{})

	s.feed(c, "re\t")
	// "run" does not match the prefix, so only read/reset are candidates and
	// their LCP is already "re": list them and redraw the line.
	assert.Equal(t, "re", c.buf.String())
	assert.True(t, strings.HasSuffix(s.out.String(), "\r\nread  reset\r\n> re"),
		"got %q", s.out.String())
}

func TestTabNoMatchRingsBell(t *testing.T) {
	c, s := newTestConsole(t, testTable("read"), Options{})

	s.feed(c, "x\t")
	assert.Equal(t, "x", c.buf.String())
	assert.Contains(t, s.out.String(), "\a")
}

func TestTabRefusedAfterFirstWord(t *testing.T) {
	c, s := newTestConsole(t, testTable("read"), Options{})

	s.feed(c, "read f\t")
	assert.Equal(t, "read f", c.buf.String())
	assert.Contains(t, s.out.String(), "\a")
}

func TestTabOnEmptyBufferIsNoOp(t *testing.T) {
	c, s := newTestConsole(t, testTable("read"), Options{})

	s.feed(c, "\t")
	assert.Empty(t, s.out.String())
	assert.Equal(t, 0, c.buf.Len())
}

func TestTabWithoutRoomRingsBell(t *testing.T) {
	// Capacity 5 holds 4 bytes; "rea" plus suffix "d " needs 5.
	c, s := newTestConsole(t, testTable("read"), Options{MaxLineLen: 5})

	s.feed(c, "rea")
	s.out.Reset()
	s.feed(c, "\t")
	assert.Equal(t, "rea", c.buf.String())
	assert.Equal(t, "\a", s.out.String())
}

func TestTabLCPWithoutRoomRingsBell(t *testing.T) {
	// Capacity 3 holds 2 bytes; extending "r" to "reb" needs 3.
	c, s := newTestConsole(t, testTable("rebuild", "reboot"), Options{MaxLineLen: 3})

	s.feed(c, "r")
	s.out.Reset()
	s.feed(c, "\t")
	assert.Equal(t, "r", c.buf.String())
	assert.Equal(t, "\a", s.out.String())
}
