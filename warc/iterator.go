// Package warc implements a streaming parser over WARC/1.0 and WARC/1.1
// archive files. Iterator.Next yields one Record at a time: typed WARC
// headers, optional inner HTTP headers, and a reader bounded to exactly
// the record's remaining payload bytes.
//
// The parser is single-threaded and cooperative: Next blocks on the
// underlying stream's I/O and performs no internal concurrency. A
// Record's Reader is only valid until the next call to Next, which drains
// any unread payload automatically before parsing the following record.
package warc

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/webarchivetools/warctext"
)

const (
	versionLine10 = "WARC/1.0"
	versionLine11 = "WARC/1.1"
)

// Iterator parses WARC records out of a byte stream lazily: no record's
// payload is read until the caller consumes Record.Reader (or the next
// call to Next drains it on the caller's behalf).
type Iterator struct {
	br     *bufio.Reader
	logger *slog.Logger

	typeFilter map[RecordType]bool
	parseHTTP  bool
	dedup      *revisitDedup

	pending io.Reader // unread payload of the last record returned
}

// NewIterator wraps r in an Iterator. Defaults: no record-type filtering,
// HTTP header parsing enabled, dedup disabled, logging disabled.
func NewIterator(r io.Reader, opts ...Option) *Iterator {
	it := &Iterator{
		br:        bufio.NewReader(r),
		parseHTTP: true,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Next returns the next record in the stream. It returns (nil, io.EOF) when
// the stream is cleanly exhausted, and a non-nil
// *warctext.Error for any other termination: a malformed version line, a
// missing or non-decimal Content-Length, or a stream that ends mid-header.
// The iterator never repairs malformed input and never resumes after an
// error; construct a new Iterator over a repositioned stream if needed.
func (it *Iterator) Next() (*Record, error) {
	if it.pending != nil {
		if _, err := io.Copy(io.Discard, it.pending); err != nil {
			return nil, warctext.Errorf(warctext.EIO, "draining previous record: %v", err)
		}
		it.pending = nil
	}

	for {
		ok, err := it.seekVersion()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, io.EOF
		}

		headers, _, err := parseHeaderBlock(it.br, false)
		if err != nil {
			it.logf(slog.LevelWarn, "malformed WARC header block", "error", err)
			return nil, warctext.Errorf(warctext.EINVALID, "malformed WARC header block: %v", err)
		}

		contentLength, recType, isHTTPCandidate, err := summarizeHeaders(headers)
		if err != nil {
			it.logf(slog.LevelWarn, "malformed WARC headers", "error", err)
			return nil, err
		}

		if it.typeFilter != nil && !it.typeFilter[recType] {
			it.logf(slog.LevelDebug, "skipping filtered record", "type", recType.String())
			if err := discardN(it.br, contentLength); err != nil {
				return nil, warctext.Errorf(warctext.EIO, "skipping filtered record: %v", err)
			}
			continue
		}

		if it.dedup != nil && recType == RecordTypeRevisit && it.dedup.seen(headers) {
			it.logf(slog.LevelDebug, "skipping duplicate revisit record")
			if err := discardN(it.br, contentLength); err != nil {
				return nil, warctext.Errorf(warctext.EIO, "skipping duplicate revisit record: %v", err)
			}
			continue
		}

		record := &Record{
			Type:          recType,
			Headers:       headers,
			ContentLength: contentLength,
		}

		if isHTTPCandidate && it.parseHTTP {
			httpHeaders, httpBytes, err := parseHeaderBlock(it.br, true)
			if err != nil {
				it.logf(slog.LevelWarn, "malformed HTTP header block", "error", err)
				return nil, warctext.Errorf(warctext.EINVALID, "malformed HTTP header block: %v", err)
			}
			record.IsHTTP = true
			if len(httpHeaders) > 0 {
				record.HTTPStatusLine = httpHeaders[0].Value
				record.HTTPHeaders = httpHeaders[1:]
			}
			if uint64(httpBytes) > contentLength {
				return nil, warctext.Errorf(warctext.EINVALID, "HTTP header block (%d bytes) exceeds Content-Length (%d)", httpBytes, contentLength)
			}
			record.HTTPContentLength = contentLength - uint64(httpBytes)
		} else {
			record.HTTPContentLength = contentLength
		}

		record.Reader = &io.LimitedReader{R: it.br, N: int64(record.HTTPContentLength)}
		it.pending = record.Reader

		it.logf(slog.LevelDebug, "record", "type", record.Type.String(), "content_length", record.ContentLength, "is_http", record.IsHTTP)
		return record, nil
	}
}

// seekVersion advances past any blank lines and reads the version line.
// It returns (true, nil) once positioned just after a recognized version
// line, (false, nil) on clean end of stream, and a non-nil error if a
// non-blank, non-version line is encountered.
func (it *Iterator) seekVersion() (bool, error) {
	for {
		raw, err := it.br.ReadBytes('\n')
		if len(raw) == 0 && err == io.EOF {
			return false, nil
		}
		line := bytes.TrimSuffix(bytes.TrimSuffix(raw, []byte("\n")), []byte("\r"))
		stripped := string(warctext.Strip(line))
		if stripped == "" {
			if err == io.EOF {
				return false, nil
			}
			continue
		}
		if stripped == versionLine10 || stripped == versionLine11 {
			return true, nil
		}
		return false, warctext.Errorf(warctext.EINVALID, "expected WARC version line, got %q", stripped)
	}
}

// summarizeHeaders scans the parsed WARC headers once for Content-Length,
// WARC-Type, and Content-Type.
func summarizeHeaders(headers warctext.Header) (contentLength uint64, recType RecordType, isHTTP bool, err error) {
	haveLength := false
	for _, f := range headers {
		switch strings.ToLower(f.Name) {
		case "content-length":
			n, perr := strconv.ParseUint(strings.TrimSpace(f.Value), 10, 64)
			if perr != nil {
				return 0, RecordTypeUnknown, false, warctext.Errorf(warctext.EINVALID, "malformed Content-Length %q", f.Value)
			}
			contentLength = n
			haveLength = true
		case "warc-type":
			recType = parseRecordType(f.Value)
		case "content-type":
			if strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.Value)), "application/http") {
				isHTTP = true
			}
		}
	}
	if !haveLength {
		return 0, RecordTypeUnknown, false, warctext.Errorf(warctext.EINVALID, "missing Content-Length header")
	}
	return contentLength, recType, isHTTP, nil
}

func discardN(br *bufio.Reader, n uint64) error {
	_, err := io.CopyN(io.Discard, br, int64(n))
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (it *Iterator) logf(level slog.Level, msg string, args ...any) {
	if it.logger == nil {
		return
	}
	it.logger.Log(context.Background(), level, msg, args...)
}
