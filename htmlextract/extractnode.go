package htmlextract

// ExtractNode accumulates text for one "block" of the walked DOM. The
// walker appends nodes in DFS order; the serializer folds them, read-only,
// into the final string.
type ExtractNode struct {
	ReferenceTag TagID
	Depth        int

	// CollapseMargins is true by default; <br>/<hr> set it false on the
	// current top node to force an explicit break.
	CollapseMargins bool

	// IsBigBlock marks paragraph-like elements (<p>, <h1>-<h4>): the
	// serializer inserts a blank line before them rather than a single
	// newline.
	IsBigBlock bool

	// IsPre is true while inside a <pre>/<textarea> subtree when
	// PreserveFormatting is set: whitespace is copied verbatim.
	IsPre bool

	// IsEndTag records whether this node was pushed on the closing visit
	// of its originating tag (relevant for <textarea>, which is pushed
	// fresh on open and also marks its close).
	IsEndTag bool

	// TextContents is nil until first written to; a nil TextContents is
	// how the serializer recognizes "nothing was ever appended here".
	TextContents *string
}

// ensureText initializes TextContents to an empty string if it hasn't been
// written to yet, without disturbing any text already accumulated.
func (n *ExtractNode) ensureText() {
	if n.TextContents == nil {
		empty := ""
		n.TextContents = &empty
	}
}

// appendText appends s to the node's accumulator, initializing it first if
// necessary.
func (n *ExtractNode) appendText(s string) {
	n.ensureText()
	*n.TextContents = *n.TextContents + s
}

func (n *ExtractNode) text() string {
	if n.TextContents == nil {
		return ""
	}
	return *n.TextContents
}
