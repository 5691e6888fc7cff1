package warc

import "log/slog"

// Option configures an Iterator using the functional-options pattern.
// Every Option has a conservative default, so NewIterator(r) alone behaves
// the way callers expect without touching any of them.
type Option func(*Iterator)

// WithRecordTypes restricts the iterator to the given record types. Records
// of other types are skipped: their WARC headers are parsed, the rest of
// the record (any HTTP header block included) is discarded unparsed so the
// stream stays in sync, and Next moves on to the following record without
// returning them. An empty or nil list
// disables filtering (the default).
func WithRecordTypes(types ...RecordType) Option {
	return func(it *Iterator) {
		if len(types) == 0 {
			it.typeFilter = nil
			return
		}
		set := make(map[RecordType]bool, len(types))
		for _, t := range types {
			set[t] = true
		}
		it.typeFilter = set
	}
}

// WithParseHTTP controls whether the iterator parses the inner HTTP header
// block for application/http records. Defaults to true. When false, the
// full WARC payload (including the HTTP status line and headers) is
// exposed unparsed through Record.Reader, and Record.IsHTTP is left false.
func WithParseHTTP(enabled bool) Option {
	return func(it *Iterator) { it.parseHTTP = enabled }
}

// WithDedupRevisits enables an approximate, streaming, one-pass filter that
// skips "revisit" records whose content identity (WARC-Record-ID, or
// WARC-Target-URI+WARC-Date when absent) has already been seen. It is
// implemented with a Bloom filter, so it is allowed to produce rare false
// positives (an unseen revisit incorrectly skipped) but never a false
// negative on WARC-Record-ID collisions within the configured capacity.
// Disabled by default; never affects non-revisit records.
func WithDedupRevisits(capacity uint, falsePositiveRate float64) Option {
	return func(it *Iterator) {
		it.dedup = newRevisitDedup(capacity, falsePositiveRate)
	}
}

// WithLogger attaches a structured logger. One line is logged per record
// at Debug level, and malformed records are logged at Warn level before
// iteration aborts. A nil logger (the default) disables logging entirely;
// the iterator never depends on whether a logger is attached.
func WithLogger(logger *slog.Logger) Option {
	return func(it *Iterator) { it.logger = logger }
}
