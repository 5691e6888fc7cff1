package htmlextract

// ExtractOpts configures ExtractPlainText. The zero value of ExtractOpts is
// NOT the default configuration (PreserveFormatting, ListBullets, AltTexts,
// and Comments default true), so callers should start from
// DefaultExtractOpts rather than a bare struct literal.
type ExtractOpts struct {
	// PreserveFormatting emits newlines for block elements, indents lists,
	// and keeps <pre>/<textarea> whitespace verbatim.
	PreserveFormatting bool

	// ListBullets prepends "•" or "N." to <li> items.
	ListBullets bool

	// Links appends " (href)" after a closed <a>.
	Links bool

	// AltTexts emits the alt attribute for <img>/<area>.
	AltTexts bool

	// FormFields emits "[ value ]" for inputs and "[ ... ]" brackets for
	// <textarea>/<button>.
	FormFields bool

	// Noscript includes <noscript> contents.
	Noscript bool

	// MainContent applies the heuristic content classifier.
	MainContent bool

	// Comments, when MainContent is set, treats comment sections as main
	// content rather than chrome to be suppressed.
	Comments bool

	// SkipElements lists additional CSS selectors to prune from the walk,
	// on top of the built-in defaults (see buildSkipSet).
	SkipElements []string
}

// DefaultExtractOpts returns the default configuration.
func DefaultExtractOpts() ExtractOpts {
	return ExtractOpts{
		PreserveFormatting: true,
		ListBullets:        true,
		Links:              false,
		AltTexts:           true,
		FormFields:         false,
		Noscript:           false,
		MainContent:        false,
		Comments:           true,
		SkipElements:       nil,
	}
}
