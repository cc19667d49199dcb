package console

import (
	"strings"
	"testing"
)

func TestLineBufferAppendByte(t *testing.T) {
	b := newLineBuffer(4)

	if !b.AppendByte('a') || !b.AppendByte('b') || !b.AppendByte('c') {
		t.Fatalf("expected room for 3 bytes, got %q", b.String())
	}
	if b.AppendByte('d') {
		t.Errorf("expected append to fail at capacity, got %q", b.String())
	}
	if b.String() != "abc" {
		t.Errorf("expected %q, got %q", "abc", b.String())
	}
	if b.Len() != 3 {
		t.Errorf("expected len 3, got %d", b.Len())
	}
}

func TestLineBufferAppend(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		initial  string
		append   string
		ok       bool
		expected string
	}{
		{"fits exactly", 8, "abc", "defg", true, "abcdefg"},
		{"one over", 8, "abc", "defgh", false, "abc"},
		{"empty append", 8, "abc", "", true, "abc"},
		{"into empty", 4, "", "abc", true, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newLineBuffer(tt.max)
			for i := 0; i < len(tt.initial); i++ {
				b.AppendByte(tt.initial[i])
			}
			if got := b.Append(tt.append); got != tt.ok {
				t.Errorf("Append(%q) = %v, want %v", tt.append, got, tt.ok)
			}
			if b.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, b.String())
			}
		})
	}
}

func TestLineBufferTrimLast(t *testing.T) {
	b := newLineBuffer(8)
	if b.TrimLast() {
		t.Error("expected TrimLast on empty buffer to return false")
	}

	b.AppendByte('h')
	b.AppendByte('i')
	if !b.TrimLast() {
		t.Error("expected TrimLast to succeed")
	}
	if b.String() != "h" {
		t.Errorf("expected %q, got %q", "h", b.String())
	}
}

func TestLineBufferReset(t *testing.T) {
	b := newLineBuffer(8)
	b.Append("hello")
	b.Reset()
	if b.Len() != 0 || b.String() != "" {
		t.Errorf("expected empty buffer after Reset, got %q", b.String())
	}
	// Capacity survives a reset.
	if !b.Append(strings.Repeat("x", 7)) {
		t.Error("expected full capacity after Reset")
	}
}
