package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWarcResponse(targetURI, httpHeaderBlock, body string) string {
	payload := httpHeaderBlock + body
	warcHeaders := fmt.Sprintf(
		"WARC/1.0\r\n"+
			"WARC-Type: response\r\n"+
			"WARC-Target-URI: %s\r\n"+
			"WARC-Date: 2020-01-01T00:00:00Z\r\n"+
			"Content-Type: application/http; msgtype=response\r\n"+
			"Content-Length: %d\r\n"+
			"\r\n",
		targetURI, len(payload))
	return warcHeaders + payload + "\r\n\r\n"
}

func TestRunExtractsHTMLResponse(t *testing.T) {
	body := "<html><body><p>Hello world.</p></body></html>"
	httpBlock := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n"
	stream := buildWarcResponse("http://example.com/", httpBlock, body)

	results, err := Run(strings.NewReader(stream), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "http://example.com/", results[0].TargetURI)
	assert.Equal(t, "Hello world.", results[0].Text)
}

func TestRunSkipsNonHTMLButKeepsStreamInSync(t *testing.T) {
	pdfBlock := "HTTP/1.1 200 OK\r\nContent-Type: application/pdf\r\n\r\n"
	pdfBody := "%PDF-1.4 fake binary payload"
	htmlBlock := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n"
	htmlBody := "<html><body><p>Second record.</p></body></html>"

	stream := buildWarcResponse("http://example.com/a.pdf", pdfBlock, pdfBody) +
		buildWarcResponse("http://example.com/b.html", htmlBlock, htmlBody)

	results, err := Run(strings.NewReader(stream), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "", results[0].Text)
	assert.Equal(t, "Second record.", results[1].Text)
}

func TestRunEmptyStreamYieldsNoResults(t *testing.T) {
	results, err := Run(strings.NewReader(""), DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunConcurrentAcrossSources(t *testing.T) {
	body1 := "<html><body><p>File one.</p></body></html>"
	body2 := "<html><body><p>File two.</p></body></html>"
	httpBlock := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n"
	stream1 := buildWarcResponse("http://a.example/", httpBlock, body1)
	stream2 := buildWarcResponse("http://b.example/", httpBlock, body2)

	sources := []Source{
		{Name: "one", Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(stream1)), nil
		}},
		{Name: "two", Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(stream2)), nil
		}},
	}

	out, err := RunConcurrent(context.Background(), sources, DefaultConfig(), 2)
	require.NoError(t, err)
	require.Len(t, out, 2)

	byName := map[string]FileResult{}
	for _, fr := range out {
		byName[fr.Name] = fr
	}
	require.NoError(t, byName["one"].Err)
	require.NoError(t, byName["two"].Err)
	require.Len(t, byName["one"].Results, 1)
	require.Len(t, byName["two"].Results, 1)
	assert.Equal(t, "File one.", byName["one"].Results[0].Text)
	assert.Equal(t, "File two.", byName["two"].Results[0].Text)
}

func TestRunConcurrentSourceOpenError(t *testing.T) {
	sources := []Source{
		{Name: "broken", Open: func() (io.ReadCloser, error) {
			return nil, assertErr
		}},
	}
	out, err := RunConcurrent(context.Background(), sources, DefaultConfig(), 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.ErrorIs(t, out[0].Err, assertErr)
}

var assertErr = fmt.Errorf("open failed")
