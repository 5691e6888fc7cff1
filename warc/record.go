package warc

import (
	"io"

	"github.com/webarchivetools/warctext"
)

// Record is one parsed WARC record: its typed headers, optional inner HTTP
// headers, and a reader bounded to exactly its remaining payload bytes.
//
// Invariants: HTTPContentLength <= ContentLength; IsHTTP is true iff
// HTTPHeaders was parsed; Type defaults to RecordTypeUnknown when WARC-Type
// is missing or unrecognized.
type Record struct {
	Type    RecordType
	Headers warctext.Header

	IsHTTP         bool
	HTTPStatusLine string
	HTTPHeaders    warctext.Header

	ContentLength     uint64
	HTTPContentLength uint64

	// Reader yields at most HTTPContentLength (when IsHTTP) or
	// ContentLength bytes. Bytes left unread are discarded by the
	// iterator's next call to Next; Record.Skip discards them immediately.
	Reader io.Reader
}

// Skip discards any unread payload bytes so the iterator's underlying
// stream is repositioned at the start of the next record.
func (r *Record) Skip() error {
	_, err := io.Copy(io.Discard, r.Reader)
	return err
}
