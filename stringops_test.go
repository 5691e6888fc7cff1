package warctext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webarchivetools/warctext"
)

func TestStripString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no whitespace", "hello", "hello"},
		{"leading and trailing spaces", "  hello  ", "hello"},
		{"tabs and newlines", "\t\nhello\r\n", "hello"},
		{"all whitespace", "   \t\n  ", ""},
		{"empty", "", ""},
		{"internal whitespace preserved", "  a  b  ", "a  b"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, warctext.StripString(c.in))
		})
	}
}

func TestStripIdempotent(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"  a b  ", "", "\t\tx\n", "clean"} {
		once := warctext.StripString(s)
		twice := warctext.StripString(once)
		assert.Equal(t, once, twice)
	}
}

func TestCollapseWSString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single spaces unchanged", "a b c", "a b c"},
		{"multiple spaces collapse", "a    b", "a b"},
		{"mixed whitespace collapses", "a\t\n  b", "a b"},
		{"leading/trailing runs become single space", "  a  ", " a "},
		{"empty input", "", ""},
		{"all whitespace", "   ", " "},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, warctext.CollapseWSString(c.in))
		})
	}
}

func TestCollapseWSIdempotent(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"a   b\tc", "", "x", "   "} {
		once := warctext.CollapseWSString(s)
		twice := warctext.CollapseWSString(once)
		assert.Equal(t, once, twice)
	}
}

func TestToLowerASCIIString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hello world", warctext.ToLowerASCIIString("HELLO World"))
	assert.Equal(t, "École", warctext.ToLowerASCIIString("École"), "non-ASCII bytes must pass through unchanged")
}

func TestIndentNewlines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    string
		depth int
		want  string
	}{
		{"zero depth is no-op", "a\nb", 0, "a\nb"},
		{"depth one inserts two spaces", "a\nb", 1, "a\n  b"},
		{"depth two inserts four spaces", "a\nb\nc", 2, "a\n    b\n    c"},
		{"no newlines unaffected", "abc", 3, "abc"},
		{"empty string", "", 2, ""},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, warctext.IndentNewlines(c.in, c.depth))
		})
	}
}
