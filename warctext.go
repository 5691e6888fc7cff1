// Package warctext provides the shared domain types for a web-archive text
// extraction toolkit: a streaming WARC/1.0 and WARC/1.1 record iterator and
// an HTML-to-plain-text extractor.
//
// The actual implementations live in subpackages named after their primary
// dependency: warc (the WARC parser), htmlextract (the HTML serializer,
// built on cascadia), and pipeline (which couples the two).
package warctext
