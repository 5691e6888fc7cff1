package warc

import (
	"strconv"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"

	"github.com/webarchivetools/warctext"
)

// revisitDedup tracks which revisit records have already been observed, so
// a streaming iterator that cannot look back can still skip duplicates
// within a single pass.
type revisitDedup struct {
	filter *bloom.BloomFilter
}

func newRevisitDedup(capacity uint, falsePositiveRate float64) *revisitDedup {
	if capacity == 0 {
		capacity = 100_000
	}
	if falsePositiveRate <= 0 {
		falsePositiveRate = 0.001
	}
	return &revisitDedup{filter: bloom.NewWithEstimates(capacity, falsePositiveRate)}
}

// seen reports whether the record identified by headers has already been
// observed, recording it as seen for future calls if not.
func (d *revisitDedup) seen(headers warctext.Header) bool {
	key := revisitKey(headers)
	if key == "" {
		return false
	}
	hashed := strconv.FormatUint(xxhash.Sum64String(key), 16)
	if d.filter.TestString(hashed) {
		return true
	}
	d.filter.AddString(hashed)
	return false
}

func revisitKey(headers warctext.Header) string {
	if id, ok := headers.Get("WARC-Record-ID"); ok && id != "" {
		return id
	}
	uri, hasURI := headers.Get("WARC-Target-URI")
	date, hasDate := headers.Get("WARC-Date")
	if hasURI && hasDate {
		return uri + "\x00" + date
	}
	return ""
}
