package warc

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRecord(recType, targetURI string, httpHeaderBlock, body string) string {
	payload := httpHeaderBlock + body
	return fmt.Sprintf(
		"WARC/1.0\r\n"+
			"WARC-Type: %s\r\n"+
			"WARC-Target-URI: %s\r\n"+
			"WARC-Date: 2020-01-01T00:00:00Z\r\n"+
			"Content-Type: application/http; msgtype=response\r\n"+
			"Content-Length: %d\r\n"+
			"\r\n%s\r\n\r\n",
		recType, targetURI, len(payload), payload)
}

func TestIteratorEmptyStreamYieldsEOF(t *testing.T) {
	it := NewIterator(strings.NewReader(""))
	_, err := it.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestIteratorZeroLengthPayload(t *testing.T) {
	raw := "WARC/1.0\r\nWARC-Type: warcinfo\r\nContent-Length: 0\r\n\r\n\r\n\r\n"
	it := NewIterator(strings.NewReader(raw))
	rec, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, RecordTypeWarcinfo, rec.Type)
	assert.EqualValues(t, 0, rec.ContentLength)

	n, err := io.ReadAll(rec.Reader)
	require.NoError(t, err)
	assert.Empty(t, n)

	_, err = it.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestIteratorHTTPEnvelope(t *testing.T) {
	httpBlock := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nX-Foo: bar\r\n\r\n"
	body := "<html></html>"
	raw := buildRecord("response", "http://example.com/", httpBlock, body)

	it := NewIterator(strings.NewReader(raw))
	rec, err := it.Next()
	require.NoError(t, err)

	assert.True(t, rec.IsHTTP)
	assert.Equal(t, "HTTP/1.1 200 OK", rec.HTTPStatusLine)
	v, ok := rec.HTTPHeaders.Get("X-Foo")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
	assert.EqualValues(t, len(body), rec.HTTPContentLength)

	got, err := io.ReadAll(rec.Reader)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestIteratorRecordTypeEndToEnd(t *testing.T) {
	raw := buildRecord("resource", "http://example.com/img.png", "", "binarydata")
	it := NewIterator(strings.NewReader(raw), WithParseHTTP(false))
	rec, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, RecordTypeResource, rec.Type)
	assert.False(t, rec.IsHTTP)

	got, err := io.ReadAll(rec.Reader)
	require.NoError(t, err)
	assert.Equal(t, "binarydata", string(got))
}

func TestIteratorFiltersByRecordType(t *testing.T) {
	httpBlock := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n"
	raw := buildRecord("request", "http://example.com/", httpBlock, "req-body") +
		buildRecord("response", "http://example.com/", httpBlock, "resp-body")

	it := NewIterator(strings.NewReader(raw), WithRecordTypes(RecordTypeResponse))
	rec, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, RecordTypeResponse, rec.Type)

	got, err := io.ReadAll(rec.Reader)
	require.NoError(t, err)
	assert.Equal(t, "resp-body", string(got))

	_, err = it.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestIteratorMultipleRecordsStaySynchronized(t *testing.T) {
	httpBlock := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n"
	raw := buildRecord("response", "http://a.example/", httpBlock, "AAAA") +
		buildRecord("response", "http://b.example/", httpBlock, "BBBB")

	it := NewIterator(strings.NewReader(raw))
	rec1, err := it.Next()
	require.NoError(t, err)
	uri1, _ := rec1.Headers.Get("WARC-Target-URI")
	assert.Equal(t, "http://a.example/", uri1)
	// Deliberately don't drain rec1.Reader; Next must do it.

	rec2, err := it.Next()
	require.NoError(t, err)
	uri2, _ := rec2.Headers.Get("WARC-Target-URI")
	assert.Equal(t, "http://b.example/", uri2)

	got, err := io.ReadAll(rec2.Reader)
	require.NoError(t, err)
	assert.Equal(t, "BBBB", string(got))

	_, err = it.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestIteratorMissingContentLengthIsError(t *testing.T) {
	raw := "WARC/1.0\r\nWARC-Type: warcinfo\r\n\r\n"
	it := NewIterator(strings.NewReader(raw))
	_, err := it.Next()
	assert.Error(t, err)
}

func TestIteratorMalformedVersionLineIsError(t *testing.T) {
	raw := "NOT-A-WARC-LINE\r\n"
	it := NewIterator(strings.NewReader(raw))
	_, err := it.Next()
	assert.Error(t, err)
}
