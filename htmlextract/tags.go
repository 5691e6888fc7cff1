package htmlextract

import "golang.org/x/net/html/atom"

// TagID identifies an element's tag as a cheap, comparable value rather
// than a string comparison on every visit. golang.org/x/net/html/atom
// already assigns one atom.Atom per well-known HTML tag name, so it stands
// in directly for that role.
type TagID = atom.Atom

// undefTag is used for text nodes and anything without an originating tag.
const undefTag TagID = 0

var blockTags = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true,
	atom.Blockquote: true, atom.Br: true, atom.Details: true,
	atom.Dialog: true, atom.Dd: true, atom.Div: true, atom.Dl: true,
	atom.Dt: true, atom.Fieldset: true, atom.Figcaption: true,
	atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Header: true, atom.Hgroup: true,
	atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true,
	atom.Table: true, atom.Tbody: true, atom.Thead: true, atom.Tfoot: true,
	atom.Tr: true, atom.Td: true, atom.Th: true, atom.Ul: true,
	atom.Video: true, atom.Audio: true, atom.Textarea: true,
}

// isBlockElement reports whether a tag is treated as a block for margin purposes.
func isBlockElement(tag TagID) bool {
	return blockTags[tag]
}

var bigBlockTags = map[atom.Atom]bool{
	atom.P: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
}

func isBigBlock(tag TagID) bool {
	return bigBlockTags[tag]
}

func isPreLike(tag TagID) bool {
	return tag == atom.Pre || tag == atom.Textarea
}

// defaultInputSkipTypes lists <input type="..."> values that never get a
// form-field value placeholder.
var defaultInputSkipTypes = map[string]bool{
	"checkbox": true, "color": true, "file": true, "hidden": true,
	"radio": true, "reset": true,
}
