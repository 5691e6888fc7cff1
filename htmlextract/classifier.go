package htmlextract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Regex catalogue. All patterns are case-insensitive and
// anchored on the same [\s_-] delimiter class used for CSS class/id tokens
// rather than full-line anchors, so "site-nav-bar" matches as readily as
// "nav". Compiled once at package init; read-only afterwards.
var (
	articleRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:article|entry|post|story|single[_-]?post|main)(?:content|body|text|page)?(?:$|[\s_-])`)
	navRe     = regexp.MustCompile(`(?i)(?:^|\s)(?:[a-z]-)?(?:(?:main|site|page|sub|article)[_-]*)?(?:nav(?:bar|igation|box)?|menu(?:[_-]item)?|dropdown|bread[_-]?crumbs?)|(?:link[_-]?(?:list|container))(?:$|[\s_-])`)
	recommendedRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:trends|trending|recommended|popular|editorial|editors?[_-]picks|(?:related|more)[_-]?(?:links|articles|posts|guides|stories))(?:$|[\s_-])`)

	headerRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:(?:site|page|global|masthead|top)[_-]?)?header(?:$|[\s_-])`)
	footerRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:(?:site|page|global|bottom)[_-]?)?footer(?:$|[\s_-])`)
	searchRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:search(?:[_-]?box|[_-]?bar|[_-]?form)?)(?:$|[\s_-])`)
	sidebarRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:side[_-]?bar|aside)(?:$|[\s_-])`)
	modalRe  = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:modal|popup|lightbox|overlay)(?:$|[\s_-])`)
	signinRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:sign[_-]?in|log[_-]?in|login|sign[_-]?up|signup|register)(?:$|[\s_-])`)
	postMetaRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:post-meta|entry-meta|byline|meta-data|article-meta)(?:$|[\s_-])`)
	socialRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:social(?:[_-](?:share|media|links))?|share[_-](?:bar|buttons)|feedback|reactions|upvote|downvote)(?:$|[\s_-])`)
	logoRe   = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:brand-)?logo(?:$|[\s_-])`)
	adsRe    = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:ad|advert|sponsored|promoted|banner|donate)(?:$|[\s_-])`)
	commentsRe = regexp.MustCompile(`(?i)(?:^|[\s_-])comment(?:s|-list|-section|-area)?(?:$|[\s_-])`)

	displayHiddenClassRe = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:display-none|hidden|invisible|collapsed|h-0|nocontent|expandable)(?:$|[\s_-])`)
	displayHiddenStyleRe = regexp.MustCompile(`(?i)display\s*:\s*none|visibility\s*:\s*hidden`)
	skipLinkRe           = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:skip-to|skip-link|scroll-up|scroll-down|next|prev|permalink|pagination)(?:$|[\s_-])`)
)

var relReject = map[string]bool{
	"bookmark": true, "author": true, "icon": true,
	"search": true, "prev": true, "next": true,
}

var itempropReject = map[string]bool{
	"datepublished": true, "author": true, "url": true,
}

var roleReject = map[string]bool{
	"contentinfo": true, "img": true, "menu": true, "menubar": true,
	"navigation": true, "menuitem": true, "alert": true, "dialog": true,
	"checkbox": true, "radio": true, "complementary": true,
}

// classify is the content classifier: a short-circuit cascade
// deciding whether node may be included in extracted text. Non-element
// nodes and <body> are always included.
func classify(node *html.Node, allowComments bool) bool {
	if node.Type != html.ElementNode {
		return true
	}
	tag := node.DataAtom
	if tag == atom.Body {
		return true
	}

	if sectionAReject(node, tag) {
		return false
	}

	block := isBlockElement(tag)
	if block {
		if decided, accept := blockIntrinsicDecision(node, tag); decided {
			return accept
		}
	}

	classID := classAndID(node)
	if sectionBReject(node, tag, classID) {
		return false
	}

	if block {
		if decided, accept := sectionCDecision(classID, allowComments); decided {
			return accept
		}
	}

	return true
}

// sectionAReject implements the intrinsic, non-class/id rules of
// Section A, including the lone-glyph check for non-block elements; the
// block-specific rules are handled by blockIntrinsicDecision.
func sectionAReject(node *html.Node, tag atom.Atom) bool {
	if !isBlockElement(tag) && isLoneGlyphChild(node) {
		return true
	}
	if _, ok := attr(node, "hidden"); ok {
		return true
	}
	if anyTokenIn(attrValue(node, "rel"), relReject) {
		return true
	}
	if anyTokenIn(attrValue(node, "itemprop"), itempropReject) {
		return true
	}
	if strings.EqualFold(attrValue(node, "aria-hidden"), "true") {
		return true
	}
	if strings.EqualFold(attrValue(node, "aria-expanded"), "false") {
		return true
	}
	if anyTokenIn(attrValue(node, "role"), roleReject) {
		return true
	}
	return false
}

// blockIntrinsicDecision implements the "for block elements" continuation
// of Section A. decided is false when none of these rules apply, meaning
// evaluation should continue into Section B.
func blockIntrinsicDecision(node *html.Node, tag atom.Atom) (decided bool, accept bool) {
	if tag == atom.Main {
		return true, true
	}
	ltb := lengthToBody(node)
	if tag == atom.Footer && ltb >= 3 && isGlobalFooterChain(node) {
		return true, false
	}
	if (tag == atom.Ul || tag == atom.Nav) && ltb < 8 {
		return true, false
	}
	if tag == atom.Aside && ltb < 8 {
		return true, false
	}
	if tag == atom.Iframe {
		return true, false
	}
	return false, false
}

// sectionBReject implements the generic class/id regex rules.
func sectionBReject(node *html.Node, tag atom.Atom, classID string) bool {
	if displayHiddenClassRe.MatchString(classID) {
		return true
	}
	if style := attrValue(node, "style"); style != "" && displayHiddenStyleRe.MatchString(style) {
		return true
	}
	if (tag == atom.A || tag == atom.Div || tag == atom.Li) && skipLinkRe.MatchString(classID) {
		return true
	}
	ltb := lengthToBody(node)
	if signinRe.MatchString(classID) {
		return true
	}
	if ltb > 2 && (postMetaRe.MatchString(classID) || socialRe.MatchString(classID)) {
		return true
	}
	if logoRe.MatchString(classID) {
		return true
	}
	if adsRe.MatchString(classID) {
		return true
	}
	if hasAnyAttr(node, "data-ad", "data-advertisement", "data-text-ad") {
		return true
	}
	return false
}

// sectionCDecision implements the block-only class/id rules.
// The article-body whitelist is a short-circuit accept; everything else
// is a reject.
func sectionCDecision(classID string, allowComments bool) (decided bool, accept bool) {
	if articleRe.MatchString(classID) {
		return true, true
	}
	if headerRe.MatchString(classID) {
		return true, false
	}
	if footerRe.MatchString(classID) {
		return true, false
	}
	if navRe.MatchString(classID) {
		return true, false
	}
	if recommendedRe.MatchString(classID) {
		return true, false
	}
	if !allowComments && commentsRe.MatchString(classID) {
		return true, false
	}
	if searchRe.MatchString(classID) {
		return true, false
	}
	if sidebarRe.MatchString(classID) {
		return true, false
	}
	if modalRe.MatchString(classID) {
		return true, false
	}
	return false, false
}

// isLoneGlyphChild reports whether node's only child is a text node whose
// entire content is one pilcrow (U+00B6) or one Private Use Area code
// point (U+E000-U+F8FF).
func isLoneGlyphChild(node *html.Node) bool {
	if node.FirstChild == nil || node.FirstChild != node.LastChild {
		return false
	}
	child := node.FirstChild
	if child.Type != html.TextNode {
		return false
	}
	return isLoneGlyph(child.Data)
}

func isLoneGlyph(s string) bool {
	if s == "¶" {
		return true
	}
	r := []rune(s)
	if len(r) != 1 {
		return false
	}
	return r[0] >= 0xE000 && r[0] <= 0xF8FF
}

// lengthToBody counts the ancestor hops from node up to (but not
// including) the nearest <body> ancestor; a direct child of <body> has
// length 0. Returns a large sentinel when no <body> ancestor exists, so
// depth-gated rules never misfire on body-less fragments.
func lengthToBody(node *html.Node) int {
	d := 0
	for p := node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == atom.Body {
			return d
		}
		d++
	}
	return 1 << 30
}

// isGlobalFooterChain walks from node up to <body>, checking at every
// level whether an element sibling follows. Any following sibling at any
// level before reaching body means this is not the page's single,
// trailing, global footer.
func isGlobalFooterChain(node *html.Node) bool {
	cur := node
	for cur != nil {
		parent := cur.Parent
		if parent == nil {
			return false
		}
		if parent.Type == html.ElementNode && parent.DataAtom == atom.Body {
			return !hasNextElementSibling(cur)
		}
		if hasNextElementSibling(cur) {
			return false
		}
		cur = parent
	}
	return false
}

func hasNextElementSibling(n *html.Node) bool {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return true
		}
	}
	return false
}

// classAndID returns the lowercased concatenation of the class and id
// attributes, space-joined, for regex matching.
func classAndID(node *html.Node) string {
	return strings.ToLower(strings.TrimSpace(attrValue(node, "class") + " " + attrValue(node, "id")))
}

func attr(node *html.Node, name string) (string, bool) {
	for _, a := range node.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func attrValue(node *html.Node, name string) string {
	v, _ := attr(node, name)
	return v
}

func hasAnyAttr(node *html.Node, names ...string) bool {
	for _, n := range names {
		if _, ok := attr(node, n); ok {
			return true
		}
	}
	return false
}

// anyTokenIn reports whether any whitespace-separated, lowercased token of
// value appears in set.
func anyTokenIn(value string, set map[string]bool) bool {
	if value == "" {
		return false
	}
	for _, tok := range strings.Fields(strings.ToLower(value)) {
		if set[tok] {
			return true
		}
	}
	return false
}
