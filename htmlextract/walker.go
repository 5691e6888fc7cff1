package htmlextract

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/webarchivetools/warctext"
)

// nextNode is the DFS tree-walk primitive: it visits every
// element and text node exactly twice, once on the way down (isEndTag
// false) and once on the way back up (isEndTag true), without recursion.
// cur is nil on the first call; nextNode returns nil once root's closing
// visit has been consumed. depth and isEndTag are updated in place.
func nextNode(root, cur *html.Node, depth *int, isEndTag *bool) *html.Node {
	if cur == nil {
		*isEndTag = false
		return root
	}
	if *isEndTag && cur == root {
		return nil
	}
	if !*isEndTag && cur.FirstChild != nil {
		*depth++
		*isEndTag = false
		return cur.FirstChild
	}
	if !*isEndTag {
		*isEndTag = true
		return cur
	}
	if cur.NextSibling != nil {
		*isEndTag = false
		return cur.NextSibling
	}
	*depth--
	*isEndTag = true
	return cur.Parent
}

// Walker runs the DFS over a DOM subtree and accumulates ExtractNodes,
// driving the classifier and text accumulation as it goes.
type Walker struct {
	opts          ExtractOpts
	skip          map[*html.Node]bool
	useClassifier bool
}

// NewWalker builds a Walker. skip lists nodes (and, implicitly, their
// subtrees) that must never be visited; useClassifier enables the
// content heuristic on top of skip.
func NewWalker(opts ExtractOpts, skip map[*html.Node]bool, useClassifier bool) *Walker {
	return &Walker{opts: opts, skip: skip, useClassifier: useClassifier}
}

// Walk runs the DFS from root and returns the accumulated nodes in order.
func (w *Walker) Walk(root *html.Node) []*ExtractNode {
	var nodes []*ExtractNode
	depth := 0
	isEndTag := false
	var cur *html.Node

	for {
		next := nextNode(root, cur, &depth, &isEndTag)
		if next == nil {
			break
		}
		cur = next

		if !isEndTag && cur.Type == html.ElementNode && w.shouldSkip(cur) {
			isEndTag = true
			continue
		}

		w.visit(&nodes, cur, depth, isEndTag)
	}
	return nodes
}

func (w *Walker) shouldSkip(cur *html.Node) bool {
	if cur.DataAtom == atom.Head {
		return true
	}
	if w.skip[cur] {
		return true
	}
	if w.useClassifier && !classify(cur, w.opts.Comments) {
		return true
	}
	return false
}

// visit decides whether to push a new
// ExtractNode, then fold the current visit's text/link/alt-text/form-field
// contribution into the (possibly just-pushed) top node.
func (w *Walker) visit(nodes *[]*ExtractNode, cur *html.Node, depth int, isEndTag bool) {
	tag := tagOf(cur)

	var top *ExtractNode
	if n := len(*nodes); n > 0 {
		top = (*nodes)[n-1]
	}

	push := top == nil ||
		(cur.Type == html.ElementNode && isBlockElement(tag)) ||
		depth < top.Depth ||
		tag == atom.Textarea

	if push {
		n := &ExtractNode{
			ReferenceTag:    tag,
			Depth:           depth,
			CollapseMargins: true,
			IsBigBlock:      isBigBlock(tag),
			IsEndTag:        isEndTag,
		}
		if w.opts.PreserveFormatting && isPreLike(tag) {
			n.IsPre = true
		}
		*nodes = append(*nodes, n)
		top = n
	}

	// A text node is visited twice like any other node; its content is
	// taken on the opening visit only.
	if cur.Type == html.TextNode && !isEndTag {
		w.appendTextNode(top, cur.Data)
	}

	if cur.Type == html.ElementNode && (tag == atom.Br || tag == atom.Hr) {
		top.ensureText()
		top.CollapseMargins = false
	}

	if cur.Type != html.ElementNode {
		return
	}

	if w.opts.Links && tag == atom.A && isEndTag {
		if href := attrValue(cur, "href"); href != "" {
			top.appendText(" (" + href + ")")
		}
	}

	if w.opts.AltTexts && isEndTag && (tag == atom.Img || tag == atom.Area) {
		if alt := attrValue(cur, "alt"); alt != "" {
			top.appendText(alt)
		}
	}

	if w.opts.FormFields {
		w.visitFormField(top, cur, tag, isEndTag)
	}
}

func (w *Walker) visitFormField(top *ExtractNode, cur *html.Node, tag atom.Atom, isEndTag bool) {
	switch tag {
	case atom.Textarea, atom.Button:
		if isEndTag {
			top.appendText(" ]")
		} else {
			top.appendText("[ ")
		}
	case atom.Input:
		if isEndTag {
			return
		}
		typ := strings.ToLower(attrValue(cur, "type"))
		if defaultInputSkipTypes[typ] {
			return
		}
		val := attrValue(cur, "value")
		if val == "" {
			val = attrValue(cur, "placeholder")
		}
		top.appendText("[ " + val + " ]")
	}
}

// appendTextNode does a verbatim copy inside a
// preserved <pre>/<textarea>, otherwise whitespace-collapsed with leading
// space trimmed when the accumulator is empty or already ends in a space.
func (w *Walker) appendTextNode(top *ExtractNode, raw string) {
	if top.IsPre && w.opts.PreserveFormatting {
		top.appendText(raw)
		return
	}
	collapsed := warctext.CollapseWSString(raw)
	if collapsed == "" {
		return
	}
	cur := top.text()
	if cur == "" || strings.HasSuffix(cur, " ") {
		collapsed = strings.TrimLeft(collapsed, " ")
	}
	if collapsed == "" {
		return
	}
	top.appendText(collapsed)
}

func tagOf(n *html.Node) TagID {
	if n.Type == html.ElementNode {
		return n.DataAtom
	}
	return undefTag
}
