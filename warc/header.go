package warc

import (
	"bufio"
	"bytes"
	"io"

	"github.com/webarchivetools/warctext"
)

// errUnexpectedEOF signals that the underlying stream ended before a
// CRLF-terminated header block could be completed.
var errUnexpectedEOF = warctext.Errorf(warctext.EIO, "unexpected EOF while reading header block")

// readCRLFLine reads one line terminated by '\n' from br, strips a trailing
// "\r\n" or bare "\n", and reports the number of bytes consumed from br
// including the terminator. It never returns io.EOF for a line that ends
// without a terminator: that case is reported as errUnexpectedEOF, since a
// header block is never allowed to run off the end of the stream.
func readCRLFLine(br *bufio.Reader) (line []byte, consumed int, err error) {
	raw, err := br.ReadBytes('\n')
	consumed = len(raw)
	if err != nil {
		if err == io.EOF {
			if len(raw) == 0 {
				return nil, consumed, io.EOF
			}
			return nil, consumed, errUnexpectedEOF
		}
		return nil, consumed, err
	}
	raw = bytes.TrimSuffix(raw, []byte("\n"))
	raw = bytes.TrimSuffix(raw, []byte("\r"))
	return raw, consumed, nil
}

// parseHeaderBlock reads CRLF-terminated header lines from br until a bare
// CRLF line terminates the block. When hasStatusLine is true, the first
// line is stored verbatim (stripped) as a field with an empty name before
// normal "Name: Value" parsing resumes.
//
// It returns the parsed fields in document order, the number of bytes
// consumed from br (including the terminating CRLF), and an error if the
// stream ended before the terminator was seen.
func parseHeaderBlock(br *bufio.Reader, hasStatusLine bool) (warctext.Header, int64, error) {
	var header warctext.Header
	var consumed int64

	first := true
	for {
		line, n, err := readCRLFLine(br)
		consumed += int64(n)
		if err != nil {
			if err == io.EOF {
				return header, consumed, errUnexpectedEOF
			}
			return header, consumed, err
		}
		if len(line) == 0 {
			break
		}

		if first && hasStatusLine {
			header.Add("", string(warctext.Strip(line)))
			first = false
			continue
		}
		first = false

		if isSpaceByte(line[0]) {
			if len(header) > 0 {
				last := &header[len(header)-1]
				last.Value = last.Value + "\n" + string(warctext.Strip(line))
			}
			continue
		}

		idx := bytes.IndexByte(line, ':')
		var key, value []byte
		if idx < 0 {
			key = warctext.Strip(line)
			value = nil
		} else {
			key = warctext.Strip(line[:idx])
			value = warctext.Strip(line[idx+1:])
		}
		header.Add(string(key), string(value))
	}

	return header, consumed, nil
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
