package warctext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webarchivetools/warctext"
)

func TestHeaderGetCaseInsensitive(t *testing.T) {
	t.Parallel()

	var h warctext.Header
	h.Add("Content-Type", "text/html")

	v, ok := h.Get("content-type")
	assert.True(t, ok)
	assert.Equal(t, "text/html", v)

	v, ok = h.Get("CONTENT-TYPE")
	assert.True(t, ok)
	assert.Equal(t, "text/html", v)

	_, ok = h.Get("missing")
	assert.False(t, ok)
}

func TestHeaderPreservesDuplicatesAndOrder(t *testing.T) {
	t.Parallel()

	var h warctext.Header
	h.Add("Warc-Concurrent-To", "a")
	h.Add("Warc-Type", "response")
	h.Add("warc-concurrent-to", "b")

	assert.Equal(t, []string{"a", "b"}, h.Values("WARC-Concurrent-To"))

	first, ok := h.Get("warc-concurrent-to")
	assert.True(t, ok)
	assert.Equal(t, "a", first, "Get must return the first match, preserving order")
}
