// Package pipeline couples warc.Iterator with htmlextract.ExtractPlainText:
// it drives a WARC stream record by record, parses each HTTP response
// payload into a DOM, and returns the extracted plain text alongside the
// record it came from.
package pipeline

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/webarchivetools/warctext"
	"github.com/webarchivetools/warctext/htmlextract"
	"github.com/webarchivetools/warctext/warc"
)

// Result pairs one WARC record's metadata with its extracted text. Text is
// empty (not an error) for records that aren't HTML responses.
type Result struct {
	RecordType    warc.RecordType
	TargetURI     string
	HTTPStatus    string
	Text          string
	ContentLength uint64
}

// Config selects which WARC records get parsed and how their HTML is
// reduced to plain text.
type Config struct {
	WarcOpts    []warc.Option
	ExtractOpts htmlextract.ExtractOpts
	Logger      *slog.Logger
}

// DefaultConfig returns a Config that walks response records with the
// default extraction options.
func DefaultConfig() Config {
	return Config{
		WarcOpts:    []warc.Option{warc.WithRecordTypes(warc.RecordTypeResponse)},
		ExtractOpts: htmlextract.DefaultExtractOpts(),
	}
}

// Run drains the WARC stream via warc.NewIterator, extracting plain text
// from every HTML response record it yields. Non-HTML records still
// produce a Result (with an empty Text), so callers can account for
// everything the iterator returned. A record whose payload fails to parse
// or extract is logged and skipped. Run stops and returns the first
// iterator error other than io.EOF.
func Run(r io.Reader, cfg Config) ([]Result, error) {
	it := warc.NewIterator(r, cfg.WarcOpts...)
	var results []Result

	for {
		record, err := it.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return results, nil
			}
			return results, err
		}

		res, err := extractRecord(record, cfg.ExtractOpts)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("skipping record", "uri", res.TargetURI, "error", err)
			}
			if err := record.Skip(); err != nil {
				return results, err
			}
			continue
		}
		results = append(results, res)
	}
}

func extractRecord(record *warc.Record, opts htmlextract.ExtractOpts) (Result, error) {
	uri, _ := record.Headers.Get("WARC-Target-URI")
	res := Result{
		RecordType:    record.Type,
		TargetURI:     uri,
		HTTPStatus:    record.HTTPStatusLine,
		ContentLength: record.ContentLength,
	}

	if !record.IsHTTP || !isHTMLResponse(record) {
		return res, record.Skip()
	}

	doc, err := html.Parse(record.Reader)
	if err != nil {
		return res, warctext.Errorf(warctext.EINVALID, "parsing HTML payload: %v", err)
	}

	text, err := htmlextract.ExtractPlainText(doc, opts)
	if err != nil {
		return res, err
	}
	res.Text = text
	return res, nil
}

// isHTMLResponse reports whether a record's declared Content-Type is HTML
// (or absent, in which case html.Parse is left to decide).
func isHTMLResponse(record *warc.Record) bool {
	ct, ok := record.HTTPHeaders.Get("Content-Type")
	if !ok || ct == "" {
		return true
	}
	lower := strings.ToLower(ct)
	return strings.Contains(lower, "text/html") || strings.Contains(lower, "application/xhtml+xml")
}
